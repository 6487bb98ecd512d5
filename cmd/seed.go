package cmd

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ifancyabroad/the-nightingames/internal/importer"
)

//go:embed seed.json
var seedData []byte

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load a sample dataset",
	Long:  "Load a small sample dataset of players, games, events, and results to explore the tool with.",
	Args:  cobra.NoArgs,
	RunE:  runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	sum, err := importer.Import(db, bytes.NewReader(seedData))
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Seeded %d players, %d games, %d events, %d results\n",
		sum.Players, sum.Games, sum.Events, sum.Results)
	return nil
}
