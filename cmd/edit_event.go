package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var editEventCmd = &cobra.Command{
	Use:   "edit-event <id>",
	Short: "Edit an event's date, roster, or game list",
	Args:  cobra.ExactArgs(1),
	RunE:  runEditEvent,
}

func init() {
	editEventCmd.Flags().StringVar(&eventDate, "date", "", "event date YYYY-MM-DD")
	editEventCmd.Flags().StringVar(&eventLocation, "location", "", "event location")
	editEventCmd.Flags().StringVar(&eventPlayers, "players", "", "comma-separated player IDs")
	editEventCmd.Flags().StringVar(&eventGames, "games", "", "comma-separated game IDs")
	editEventCmd.Flags().StringVar(&eventNotes, "notes", "", "free-form notes")
}

func runEditEvent(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid event id %q", args[0])
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	events, err := db.ListEvents()
	if err != nil {
		return fmt.Errorf("load events: %w", err)
	}
	idx := -1
	for i := range events {
		if events[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("event #%d not found", id)
	}
	event := events[idx]

	if cmd.Flags().Changed("date") {
		date, err := time.Parse("2006-01-02", eventDate)
		if err != nil {
			return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", eventDate)
		}
		event.Date = date
	}
	if cmd.Flags().Changed("location") {
		event.Location = eventLocation
	}
	if cmd.Flags().Changed("notes") {
		event.Notes = eventNotes
	}
	if cmd.Flags().Changed("players") {
		ids, err := parseIDList(eventPlayers)
		if err != nil {
			return fmt.Errorf("parse players: %w", err)
		}
		if len(ids) == 0 {
			return fmt.Errorf("an event needs at least one player")
		}
		event.PlayerIDs = ids
	}
	if cmd.Flags().Changed("games") {
		ids, err := parseIDList(eventGames)
		if err != nil {
			return fmt.Errorf("parse games: %w", err)
		}
		event.GameIDs = ids
	}

	if err := db.UpdateEvent(event); err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Updated event #%d\n", id)
	return nil
}
