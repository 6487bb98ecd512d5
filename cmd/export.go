package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ifancyabroad/the-nightingames/internal/importer"
	"github.com/ifancyabroad/the-nightingames/internal/stats"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the full dataset as JSON",
	Long: `Export every player, game, event, and result as a JSON document.
The document references records by name and can be loaded back with
'nightingames import', including into a fresh database.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file path (default: stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	snap, err := db.LoadSnapshot()
	if err != nil {
		return fmt.Errorf("load data: %w", err)
	}

	ds := importer.Dataset{}

	for _, p := range snap.Players {
		p := p
		show := p.ShowOnLeaderboard
		ds.Players = append(ds.Players, importer.PlayerRecord{
			FirstName:         p.FirstName,
			LastName:          p.LastName,
			PreferredName:     p.PreferredName,
			PictureURL:        p.PictureURL,
			Color:             p.Color,
			ShowOnLeaderboard: &show,
			LinkedUserID:      p.LinkedUserID,
		})
	}

	for _, g := range snap.Games {
		ds.Games = append(ds.Games, importer.GameRecord{
			Name:   g.Name,
			Points: g.Points,
			Type:   string(g.Type),
			Color:  g.Color,
		})
	}

	playerName := func(id int64) string { return snap.PlayerByID[id].Name() }
	gameName := func(id int64) string { return snap.GameByID[id].Name }

	for _, event := range stats.SortEventsByDate(snap.Events, false) {
		rec := importer.EventRecord{
			Date:     event.Date.Format("2006-01-02"),
			Location: event.Location,
			Notes:    event.Notes,
		}
		for _, id := range event.PlayerIDs {
			rec.Players = append(rec.Players, playerName(id))
		}
		for _, id := range event.GameIDs {
			rec.Games = append(rec.Games, gameName(id))
		}
		for _, result := range snap.Results {
			if result.EventID != event.ID {
				continue
			}
			rr := importer.ResultRecord{
				Game:  gameName(result.GameID),
				Notes: result.Notes,
			}
			for _, pr := range result.PlayerResults {
				rr.Entries = append(rr.Entries, importer.EntryRecord{
					Player:   playerName(pr.PlayerID),
					Rank:     pr.Rank,
					IsWinner: pr.IsWinner,
					IsLoser:  pr.IsLoser,
				})
			}
			rec.Results = append(rec.Results, rr)
		}
		ds.Events = append(ds.Events, rec)
	}

	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}

	if exportOut == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(exportOut, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write %s: %w", exportOut, err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", exportOut)
	return nil
}
