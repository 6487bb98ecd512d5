package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ifancyabroad/the-nightingames/internal/model"
)

var (
	gamePoints int
	gameType   string
	gameColor  string
)

var addGameCmd = &cobra.Command{
	Use:   "add-game <name>",
	Short: "Add a game",
	Args:  cobra.ExactArgs(1),
	RunE:  runAddGame,
}

func init() {
	addGameCmd.Flags().IntVar(&gamePoints, "points", 1, "points awarded for a win (1-3)")
	addGameCmd.Flags().StringVar(&gameType, "type", "board", "game type: board or video")
	addGameCmd.Flags().StringVar(&gameColor, "color", "", "display color")
}

func runAddGame(cmd *cobra.Command, args []string) error {
	if gamePoints < 1 || gamePoints > 3 {
		return fmt.Errorf("points must be between 1 and 3, got %d", gamePoints)
	}
	gt := model.GameType(gameType)
	if !gt.Valid() {
		return fmt.Errorf("invalid game type %q: must be board or video", gameType)
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := db.InsertGame(model.Game{
		Name:   args[0],
		Points: gamePoints,
		Type:   gt,
		Color:  gameColor,
	})
	if err != nil {
		return fmt.Errorf("add game: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Added game #%d\n", id)
	return nil
}
