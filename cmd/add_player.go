package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ifancyabroad/the-nightingames/internal/model"
)

var (
	playerFirst     string
	playerLast      string
	playerPreferred string
	playerPicture   string
	playerColor     string
	playerHidden    bool
)

var addPlayerCmd = &cobra.Command{
	Use:   "add-player",
	Short: "Add a player",
	Args:  cobra.NoArgs,
	RunE:  runAddPlayer,
}

func init() {
	addPlayerCmd.Flags().StringVar(&playerFirst, "first", "", "first name (required)")
	addPlayerCmd.Flags().StringVar(&playerLast, "last", "", "last name (required)")
	addPlayerCmd.Flags().StringVar(&playerPreferred, "preferred", "", "preferred display name")
	addPlayerCmd.Flags().StringVar(&playerPicture, "picture", "", "picture URL")
	addPlayerCmd.Flags().StringVar(&playerColor, "color", "", "display color")
	addPlayerCmd.Flags().BoolVar(&playerHidden, "hidden", false, "hide from leaderboards")
	addPlayerCmd.MarkFlagRequired("first")
	addPlayerCmd.MarkFlagRequired("last")
}

func runAddPlayer(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := db.InsertPlayer(model.Player{
		FirstName:         playerFirst,
		LastName:          playerLast,
		PreferredName:     playerPreferred,
		PictureURL:        playerPicture,
		Color:             playerColor,
		ShowOnLeaderboard: !playerHidden,
	})
	if err != nil {
		return fmt.Errorf("add player: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Added player #%d\n", id)
	return nil
}
