package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ifancyabroad/the-nightingames/internal/storage"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "nightingames",
	Short: "Game night tracking tool",
	Long:  "Track game night players, games, events, and results, and compute leaderboards and statistics.",
}

// Execute runs the root command. SIGINT and SIGTERM cancel the command
// context so long-running commands like serve shut down cleanly.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	defaultDB := filepath.Join(mustUserHome(), ".nightingames", "nightingames.db")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaultDB, "path to SQLite database")

	rootCmd.AddCommand(addPlayerCmd)
	rootCmd.AddCommand(editPlayerCmd)
	rootCmd.AddCommand(addGameCmd)
	rootCmd.AddCommand(addEventCmd)
	rootCmd.AddCommand(editEventCmd)
	rootCmd.AddCommand(addResultCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(gamesCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(playerCmd)
	rootCmd.AddCommand(eventCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(dropCmd)
}

func mustUserHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

// openDB ensures the parent directory exists before opening the store.
func openDB() (*storage.DB, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	return db, nil
}
