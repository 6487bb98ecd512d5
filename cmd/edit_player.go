package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var editPlayerCmd = &cobra.Command{
	Use:   "edit-player <id>",
	Short: "Edit a player's details",
	Args:  cobra.ExactArgs(1),
	RunE:  runEditPlayer,
}

func init() {
	editPlayerCmd.Flags().StringVar(&playerFirst, "first", "", "first name")
	editPlayerCmd.Flags().StringVar(&playerLast, "last", "", "last name")
	editPlayerCmd.Flags().StringVar(&playerPreferred, "preferred", "", "preferred display name")
	editPlayerCmd.Flags().StringVar(&playerPicture, "picture", "", "picture URL")
	editPlayerCmd.Flags().StringVar(&playerColor, "color", "", "display color")
	editPlayerCmd.Flags().BoolVar(&playerHidden, "hidden", false, "hide from leaderboards")
}

func runEditPlayer(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid player id %q", args[0])
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	player, err := db.GetPlayer(id)
	if err != nil {
		return fmt.Errorf("load player: %w", err)
	}
	if player == nil {
		return fmt.Errorf("player %d not found", id)
	}

	// Only flags the user set override stored values.
	if cmd.Flags().Changed("first") {
		player.FirstName = playerFirst
	}
	if cmd.Flags().Changed("last") {
		player.LastName = playerLast
	}
	if cmd.Flags().Changed("preferred") {
		player.PreferredName = playerPreferred
	}
	if cmd.Flags().Changed("picture") {
		player.PictureURL = playerPicture
	}
	if cmd.Flags().Changed("color") {
		player.Color = playerColor
	}
	if cmd.Flags().Changed("hidden") {
		player.ShowOnLeaderboard = !playerHidden
	}

	if err := db.UpdatePlayer(*player); err != nil {
		return fmt.Errorf("update player: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Updated player #%d\n", id)
	return nil
}
