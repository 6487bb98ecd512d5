package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ifancyabroad/the-nightingames/internal/importer"
)

var importReplace bool

var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Import a dataset from a JSON export",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	importCmd.Flags().BoolVar(&importReplace, "replace", false, "wipe existing data before importing")
}

func runImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open %s: %w", args[0], err)
	}
	defer f.Close()

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if importReplace {
		if err := db.DropAll(); err != nil {
			return fmt.Errorf("wipe existing data: %w", err)
		}
	}

	sum, err := importer.Import(db, f)
	if err != nil {
		return fmt.Errorf("import %s: %w", args[0], err)
	}
	fmt.Fprintf(os.Stdout, "Imported %d players, %d games, %d events, %d results\n",
		sum.Players, sum.Games, sum.Events, sum.Results)
	return nil
}
