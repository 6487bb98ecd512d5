package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ifancyabroad/the-nightingames/internal/report"
	"github.com/ifancyabroad/the-nightingames/internal/stats"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the home-page summary",
	Args:  cobra.NoArgs,
	RunE:  runDashboard,
}

func runDashboard(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	snap, err := db.LoadSnapshot()
	if err != nil {
		return fmt.Errorf("load data: %w", err)
	}

	report.PrintDashboard(os.Stdout, stats.Dashboard(snap, time.Now()))
	return nil
}
