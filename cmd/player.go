package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ifancyabroad/the-nightingames/internal/model"
	"github.com/ifancyabroad/the-nightingames/internal/report"
	"github.com/ifancyabroad/the-nightingames/internal/stats"
)

var playerCmd = &cobra.Command{
	Use:   "player <id>",
	Short: "Show a player's profile and statistics",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlayer,
}

func runPlayer(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid player id %q", args[0])
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	snap, err := db.LoadSnapshot()
	if err != nil {
		return fmt.Errorf("load data: %w", err)
	}
	player, ok := snap.PlayerByID[id]
	if !ok {
		return fmt.Errorf("player #%d not found", id)
	}

	sorted := stats.SortResultsChronologically(snap.Results, snap.EventByID)
	entries := stats.PlayerEntries(sorted, id)
	withData := stats.ComputePlayerData([]model.Player{player}, snap.Results, snap.GameByID, snap.Events)

	report.PrintPlayerProfile(os.Stdout,
		withData[0],
		stats.AggregatePlayerStats(id, entries, snap.GameByID, snap.Events, snap.Results),
		stats.ComputeStreaks(entries),
		stats.PlayerRivalries(snap.Results, snap.PlayerByID, id, stats.TopRivalriesLimit),
	)
	return nil
}
