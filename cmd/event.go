package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ifancyabroad/the-nightingames/internal/report"
	"github.com/ifancyabroad/the-nightingames/internal/stats"
)

var eventCmd = &cobra.Command{
	Use:   "event <id>",
	Short: "Show one event with per-player and per-game breakdowns",
	Args:  cobra.ExactArgs(1),
	RunE:  runEvent,
}

func runEvent(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid event id %q", args[0])
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
	event, ok := snap.EventByID[id]
	if !ok {
		return fmt.Errorf("event #%d not found", id)
	}

	report.PrintEventDetail(os.Stdout,
		event,
		stats.EventPlayerStats(snap, id),
		stats.EventGameStats(snap, id),
		stats.EventTopScorers(snap, id),
	)
	return nil
}
