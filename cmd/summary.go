package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show store contents at a glance",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	ov, err := db.GetOverview()
	if err != nil {
		return fmt.Errorf("read overview: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Players: %d  |  Games: %d  |  Events: %d  |  Results: %d\n",
		ov.Players, ov.Games, ov.Events, ov.Results)
	if len(ov.Years) > 0 {
		fmt.Fprintf(os.Stdout, "Years covered: %d-%d\n", ov.Years[0], ov.Years[len(ov.Years)-1])
	}
	return nil
}
