package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ifancyabroad/the-nightingames/internal/report"
	"github.com/ifancyabroad/the-nightingames/internal/stats"
)

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List all players",
	Args:  cobra.NoArgs,
	RunE:  runPlayers,
}

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "List all games",
	Args:  cobra.NoArgs,
	RunE:  runGames,
}

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List all events, newest first",
	Args:  cobra.NoArgs,
	RunE:  runEvents,
}

func runPlayers(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	players, err := db.ListPlayers()
	if err != nil {
		return fmt.Errorf("list players: %w", err)
	}
	if len(players) == 0 {
		fmt.Fprintln(os.Stdout, "No players yet. Run 'nightingames add-player' to add one.")
		return nil
	}
	report.PrintPlayers(os.Stdout, players)
	return nil
}

func runGames(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	games, err := db.ListGames()
	if err != nil {
		return fmt.Errorf("list games: %w", err)
	}
	if len(games) == 0 {
		fmt.Fprintln(os.Stdout, "No games yet. Run 'nightingames add-game' to add one.")
		return nil
	}
	report.PrintGames(os.Stdout, games)
	return nil
}

func runEvents(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	events, err := db.ListEvents()
	if err != nil {
		return fmt.Errorf("list events: %w", err)
	}
	if len(events) == 0 {
		fmt.Fprintln(os.Stdout, "No events yet. Run 'nightingames add-event' to add one.")
		return nil
	}
	report.PrintEvents(os.Stdout, stats.SortEventsByDate(events, true))
	return nil
}
