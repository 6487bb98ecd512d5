package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ifancyabroad/the-nightingames/internal/report"
	"github.com/ifancyabroad/the-nightingames/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show group-wide insights",
	Long:  "Most played games, streak leaders, rivalries, the longest drought, game competitiveness, and points per game.",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	snap, err := db.LoadSnapshot()
	if err != nil {
		return fmt.Errorf("load data: %w", err)
	}
	if len(snap.Results) == 0 {
		fmt.Fprintln(os.Stdout, "No results yet. Record some with 'nightingames add-result'.")
		return nil
	}

	fmt.Fprintln(os.Stdout, "\nMost played games:")
	report.PrintMostPlayed(os.Stdout, stats.MostPlayedGames(snap.Results, snap.GameByID, stats.TopGamesLimit))

	report.PrintStreakLeaders(os.Stdout, "Longest win streaks", stats.WinStreakLeaders(snap, stats.TopStreaksLimit))
	report.PrintStreakLeaders(os.Stdout, "Longest loss streaks", stats.LossStreakLeaders(snap, stats.TopStreaksLimit))

	if rivalries := stats.TopRivalries(snap.Results, snap.PlayerByID, stats.TopRivalriesLimit); len(rivalries) > 0 {
		fmt.Fprintln(os.Stdout, "\nBiggest rivalries:")
		report.PrintRivalries(os.Stdout, rivalries)
	}
	if lopsided := stats.LopsidedRivalries(snap.Results, snap.PlayerByID, stats.TopRivalriesLimit); len(lopsided) > 0 {
		fmt.Fprintln(os.Stdout, "\nMost lopsided rivalries:")
		report.PrintRivalries(os.Stdout, lopsided)
	}

	report.PrintDrought(os.Stdout, stats.LongestDrought(snap))

	fmt.Fprintln(os.Stdout, "\nMost contested games:")
	report.PrintGameDifficulties(os.Stdout, stats.GameDifficulties(snap.Results, snap.GameByID, stats.TopGamesLimit))

	fmt.Fprintln(os.Stdout, "\nPoints awarded per game:")
	report.PrintGamePoints(os.Stdout, stats.GamePoints(snap.Results, snap.GameByID, stats.TopGamesLimit))
	return nil
}
