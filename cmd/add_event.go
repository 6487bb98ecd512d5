package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ifancyabroad/the-nightingames/internal/model"
)

var (
	eventDate     string
	eventLocation string
	eventPlayers  string
	eventGames    string
	eventNotes    string
)

var addEventCmd = &cobra.Command{
	Use:   "add-event",
	Short: "Add a game night event",
	Args:  cobra.NoArgs,
	RunE:  runAddEvent,
}

func init() {
	addEventCmd.Flags().StringVar(&eventDate, "date", "", "event date YYYY-MM-DD (required)")
	addEventCmd.Flags().StringVar(&eventLocation, "location", "", "event location")
	addEventCmd.Flags().StringVar(&eventPlayers, "players", "", "comma-separated player IDs (required)")
	addEventCmd.Flags().StringVar(&eventGames, "games", "", "comma-separated game IDs")
	addEventCmd.Flags().StringVar(&eventNotes, "notes", "", "free-form notes")
	addEventCmd.MarkFlagRequired("date")
	addEventCmd.MarkFlagRequired("players")
}

// parseIDList parses a comma-separated ID list, ignoring empty segments.
func parseIDList(raw string) ([]int64, error) {
	if raw == "" {
		return nil, nil
	}
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func runAddEvent(cmd *cobra.Command, args []string) error {
	date, err := time.Parse("2006-01-02", eventDate)
	if err != nil {
		return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", eventDate)
	}
	playerIDs, err := parseIDList(eventPlayers)
	if err != nil {
		return fmt.Errorf("parse players: %w", err)
	}
	if len(playerIDs) == 0 {
		return fmt.Errorf("an event needs at least one player")
	}
	gameIDs, err := parseIDList(eventGames)
	if err != nil {
		return fmt.Errorf("parse games: %w", err)
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := db.InsertEvent(model.Event{
		Date:      date,
		Location:  eventLocation,
		PlayerIDs: playerIDs,
		GameIDs:   gameIDs,
		Notes:     eventNotes,
	})
	if err != nil {
		return fmt.Errorf("add event: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Added event #%d\n", id)
	return nil
}
