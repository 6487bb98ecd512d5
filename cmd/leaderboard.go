package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ifancyabroad/the-nightingames/internal/model"
	"github.com/ifancyabroad/the-nightingames/internal/report"
	"github.com/ifancyabroad/the-nightingames/internal/stats"
)

var leaderboardOptions bool

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard [selection]",
	Short: "Show a leaderboard",
	Long: `Show the leaderboard for a selection such as "board-2025" or "video-all".
Without an argument, shows the current-year board games leaderboard.
Use --options to list every selectable leaderboard.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLeaderboard,
}

func init() {
	leaderboardCmd.Flags().BoolVar(&leaderboardOptions, "options", false, "list selectable leaderboards")
}

func runLeaderboard(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	snap, err := db.LoadSnapshot()
	if err != nil {
		return fmt.Errorf("load data: %w", err)
	}

	now := time.Now()
	if leaderboardOptions {
		report.PrintLeaderboardOptions(os.Stdout, stats.LeaderboardOptions(snap, now))
		return nil
	}

	year := now.Year()
	sel := stats.Selection{GameType: model.GameTypeBoard, Year: &year}
	if len(args) == 1 {
		sel, err = stats.ParseSelection(args[0])
		if err != nil {
			return err
		}
	}

	board := stats.LeaderboardByTypeAndYear(snap, sel.GameType, sel.Year)
	if len(board) == 0 {
		fmt.Fprintf(os.Stdout, "No results for %s yet.\n", sel.Value())
		return nil
	}

	fmt.Fprintf(os.Stdout, "\nLeaderboard: %s\n\n", sel.Value())
	report.PrintLeaderboard(os.Stdout, board, stats.PlayerChampionships(snap, sel.GameType, now))
	fmt.Fprintln(os.Stdout)
	report.PrintFeaturedStats(os.Stdout, stats.LeaderboardFeaturedStats(board))
	return nil
}
