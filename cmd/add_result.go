package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ifancyabroad/the-nightingames/internal/model"
)

var (
	resultEvent   int64
	resultGame    int64
	resultPlayers string
	resultWinners string
	resultLosers  string
	resultRanks   string
	resultNotes   string
)

var addResultCmd = &cobra.Command{
	Use:   "add-result",
	Short: "Record the outcome of one game within an event",
	Long: `Record the outcome of one game played during an event.

Participants must be on the event's roster and the game must be on the
event's game list. Winners and losers must be participants, and a player
cannot be both. Ranks are optional: --ranks "3=1,5=2" assigns rank 1 to
player 3 and rank 2 to player 5.`,
	Args: cobra.NoArgs,
	RunE: runAddResult,
}

func init() {
	addResultCmd.Flags().Int64Var(&resultEvent, "event", 0, "event ID (required)")
	addResultCmd.Flags().Int64Var(&resultGame, "game", 0, "game ID (required)")
	addResultCmd.Flags().StringVar(&resultPlayers, "players", "", "comma-separated participant player IDs (required)")
	addResultCmd.Flags().StringVar(&resultWinners, "winners", "", "comma-separated winner player IDs")
	addResultCmd.Flags().StringVar(&resultLosers, "losers", "", "comma-separated loser player IDs")
	addResultCmd.Flags().StringVar(&resultRanks, "ranks", "", `rank assignments, e.g. "3=1,5=2"`)
	addResultCmd.Flags().StringVar(&resultNotes, "notes", "", "free-form notes")
	addResultCmd.MarkFlagRequired("event")
	addResultCmd.MarkFlagRequired("game")
	addResultCmd.MarkFlagRequired("players")
}

func parseRanks(raw string) (map[int64]int, error) {
	ranks := make(map[int64]int)
	if raw == "" {
		return ranks, nil
	}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		idStr, rankStr, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("invalid rank assignment %q: expected id=rank", part)
		}
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid player id %q", idStr)
		}
		rank, err := strconv.Atoi(rankStr)
		if err != nil || rank < 1 {
			return nil, fmt.Errorf("invalid rank %q for player %d", rankStr, id)
		}
		ranks[id] = rank
	}
	return ranks, nil
}

func runAddResult(cmd *cobra.Command, args []string) error {
	participants, err := parseIDList(resultPlayers)
	if err != nil {
		return fmt.Errorf("parse players: %w", err)
	}
	if len(participants) == 0 {
		return fmt.Errorf("a result needs at least one participant")
	}
	winners, err := parseIDList(resultWinners)
	if err != nil {
		return fmt.Errorf("parse winners: %w", err)
	}
	losers, err := parseIDList(resultLosers)
	if err != nil {
		return fmt.Errorf("parse losers: %w", err)
	}
	ranks, err := parseRanks(resultRanks)
	if err != nil {
		return err
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
	var event *model.Event
	for i := range events {
		if events[i].ID == resultEvent {
			event = &events[i]
			break
		}
	}
	if event == nil {
		return fmt.Errorf("event #%d not found", resultEvent)
	}

	if !event.HasGame(resultGame) {
		return fmt.Errorf("game #%d is not on event #%d's game list", resultGame, resultEvent)
	}
	inSet := func(ids []int64, id int64) bool {
		for _, v := range ids {
			if v == id {
				return true
			}
		}
		return false
	}
	for _, id := range participants {
		if !event.HasPlayer(id) {
			return fmt.Errorf("player #%d is not on event #%d's roster", id, resultEvent)
		}
	}
	for _, id := range winners {
		if !inSet(participants, id) {
			return fmt.Errorf("winner #%d is not a participant", id)
		}
		if inSet(losers, id) {
			return fmt.Errorf("player #%d cannot be both winner and loser", id)
		}
	}
	for _, id := range losers {
		if !inSet(participants, id) {
			return fmt.Errorf("loser #%d is not a participant", id)
		}
	}
	for id := range ranks {
		if !inSet(participants, id) {
			return fmt.Errorf("ranked player #%d is not a participant", id)
		}
	}

	result := model.Result{
		EventID: resultEvent,
		GameID:  resultGame,
		Notes:   resultNotes,
	}
	for _, id := range participants {
		pr := model.PlayerResult{
			PlayerID: id,
			IsWinner: inSet(winners, id),
			IsLoser:  inSet(losers, id),
		}
		if rank, ok := ranks[id]; ok {
			rank := rank
			pr.Rank = &rank
		}
		result.PlayerResults = append(result.PlayerResults, pr)
	}

	id, err := db.InsertResult(result)
	if err != nil {
		return fmt.Errorf("add result: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Added result #%d to event #%d\n", id, resultEvent)
	return nil
}
