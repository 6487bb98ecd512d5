package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/ifancyabroad/the-nightingames/internal/model"
)

const dateLayout = "2006-01-02"

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
}

// formString renders a recent-form strip, newest first. "+2 -1 · +3" — the
// dot marks a night the player sat out.
func formString(form []*int) string {
	if len(form) == 0 {
		return "—"
	}
	parts := make([]string, 0, len(form))
	for _, p := range form {
		if p == nil {
			parts = append(parts, "·")
			continue
		}
		parts = append(parts, fmt.Sprintf("%+d", *p))
	}
	return strings.Join(parts, " ")
}

func titlesString(years []int) string {
	if len(years) == 0 {
		return ""
	}
	parts := make([]string, len(years))
	for i, y := range years {
		parts[i] = strconv.Itoa(y)
	}
	return "★ " + strings.Join(parts, ",")
}

// PrintLeaderboard prints the ranked standings. championships maps player ID
// to the past years that player finished first in; pass nil to omit titles.
func PrintLeaderboard(w io.Writer, board []model.PlayerWithData, championships map[int64][]int) {
	table := newTable(w)
	table.Header("#", "PLAYER", "PTS", "W", "GAMES", "WIN%", "FORM", "TITLES")

	for i, row := range board {
		winRate := "—"
		if row.Data.Games > 0 {
			winRate = fmt.Sprintf("%.0f%%", row.Data.WinRatePercent())
		}
		table.Append(
			strconv.Itoa(i+1),
			row.Name(),
			strconv.Itoa(row.Data.Points),
			strconv.Itoa(row.Data.Wins),
			strconv.Itoa(row.Data.Games),
			winRate,
			formString(row.Data.RecentForm),
			titlesString(championships[row.ID]),
		)
	}
	table.Render()
}

// PrintFeaturedStats prints the headline cards above a leaderboard.
func PrintFeaturedStats(w io.Writer, fs model.FeaturedStats) {
	table := newTable(w)
	table.Header("CARD", "PLAYER", "VALUE")

	if fs.MostPoints != nil {
		table.Append("Most points", fs.MostPoints.Name(), strconv.Itoa(fs.MostPoints.Data.Points))
	}
	if fs.MostWins != nil {
		table.Append("Most wins", fs.MostWins.Name(), strconv.Itoa(fs.MostWins.Data.Wins))
	}
	if fs.BestWinRate != nil {
		table.Append("Best win rate", fs.BestWinRate.Name(), fmt.Sprintf("%.0f%%", fs.BestWinRate.Data.WinRatePercent()))
	}
	if fs.MostGames != nil {
		table.Append("Most games", fs.MostGames.Name(), strconv.Itoa(fs.MostGames.Data.Games))
	}
	table.Render()
}

// PrintLeaderboardOptions prints the selectable leaderboard scopes.
func PrintLeaderboardOptions(w io.Writer, opts []model.LeaderboardOption) {
	table := newTable(w)
	table.Header("VALUE", "LABEL", "LEADER", "CHAMPIONSHIP")

	for _, o := range opts {
		leader := "—"
		if o.Leader != nil {
			leader = o.Leader.Name()
		}
		champ := ""
		if o.IsChampionship {
			champ = "yes"
		}
		table.Append(o.Value, o.Label, leader, champ)
	}
	table.Render()
}

// PrintPlayerProfile prints the full profile block for one player.
func PrintPlayerProfile(
	w io.Writer,
	p model.PlayerWithData,
	aggs model.PlayerAggregates,
	streaks model.PlayerStreaks,
	rivalries []model.Rivalry,
) {
	winRate := "—"
	if p.Data.Games > 0 {
		winRate = fmt.Sprintf("%.0f%%", p.Data.WinRatePercent())
	}
	fmt.Fprintf(w, "\n%s (%s)  |  Points: %d  |  Wins: %d  |  Games: %d  |  Win rate: %s\n",
		p.Name(), p.FullName(), p.Data.Points, p.Data.Wins, p.Data.Games, winRate)
	fmt.Fprintf(w, "Form: %s  |  Longest win streak: %d  |  Longest loss streak: %d\n\n",
		formString(p.Data.RecentForm), streaks.LongestWinStreak, streaks.LongestLossStreak)

	if len(aggs.GameWinRates) > 0 {
		table := newTable(w)
		table.Header(" ", "GAME", "GAMES", "W", "WIN%", "PTS")
		for _, row := range aggs.GameWinRates {
			marker := " "
			if aggs.BestGame != nil && row.GameID == aggs.BestGame.GameID {
				marker = "*"
			}
			table.Append(
				marker,
				row.Name,
				strconv.Itoa(row.Games),
				strconv.Itoa(row.Wins),
				fmt.Sprintf("%.0f%%", row.WinRate*100),
				strconv.Itoa(row.Points),
			)
		}
		table.Render()
	}

	if len(aggs.RankCounts) > 0 {
		table := newTable(w)
		table.Header("RANK", "COUNT")
		for _, rc := range aggs.RankCounts {
			table.Append(strconv.Itoa(rc.Rank), strconv.Itoa(rc.Count))
		}
		table.Render()
	}

	if len(rivalries) > 0 {
		fmt.Fprintln(w, "\nRivalries:")
		PrintRivalries(w, rivalries)
	}
}

// PrintRivalries prints head-to-head records. Rows are rendered from
// PlayerA's perspective.
func PrintRivalries(w io.Writer, rivalries []model.Rivalry) {
	table := newTable(w)
	table.Header("PLAYER", "W", "L", "OPPONENT", "SHARED", "DIFF")

	for _, r := range rivalries {
		table.Append(
			r.PlayerA.Name(),
			strconv.Itoa(r.WinsA),
			strconv.Itoa(r.WinsB),
			r.PlayerB.Name(),
			strconv.Itoa(r.Games),
			strconv.Itoa(r.Differential()),
		)
	}
	table.Render()
}

// PrintEventDetail prints one event with its per-player and per-game
// breakdowns.
func PrintEventDetail(
	w io.Writer,
	event model.Event,
	playerStats []model.EventPlayerStats,
	gameStats []model.EventGameStats,
	topScorers []model.TopScorer,
) {
	fmt.Fprintf(w, "\nEvent #%d  |  Date: %s  |  Location: %s  |  Players: %d  |  Games: %d\n\n",
		event.ID, event.Date.Format(dateLayout), event.Location, len(event.PlayerIDs), len(event.GameIDs))

	if len(playerStats) > 0 {
		table := newTable(w)
		table.Header(" ", "PLAYER", "PTS", "W", "GAMES")
		top := make(map[int64]struct{}, len(topScorers))
		for _, ts := range topScorers {
			top[ts.Player.ID] = struct{}{}
		}
		for _, ps := range playerStats {
			marker := " "
			if _, ok := top[ps.Player.ID]; ok {
				marker = "*"
			}
			table.Append(
				marker,
				ps.Player.Name(),
				strconv.Itoa(ps.Points),
				strconv.Itoa(ps.Wins),
				strconv.Itoa(ps.Games),
			)
		}
		table.Render()
	}

	if len(gameStats) > 0 {
		table := newTable(w)
		table.Header("ORD", "GAME", "TYPE", "PTS", "PLAYERS", "WINNERS")
		for _, gs := range gameStats {
			winners := make([]string, len(gs.Winners))
			for i, p := range gs.Winners {
				winners[i] = p.Name()
			}
			winnerStr := "—"
			if len(winners) > 0 {
				winnerStr = strings.Join(winners, ", ")
			}
			table.Append(
				strconv.Itoa(gs.Order),
				gs.Game.Name,
				string(gs.Game.Type),
				strconv.Itoa(gs.Game.Points),
				strconv.Itoa(gs.Participants),
				winnerStr,
			)
		}
		table.Render()
	}
}

// PrintStreakLeaders prints a streak leaderboard under the given title.
func PrintStreakLeaders(w io.Writer, title string, leaders []model.StreakLeader) {
	if len(leaders) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s:\n", title)
	table := newTable(w)
	table.Header("PLAYER", "STREAK")
	for _, l := range leaders {
		table.Append(l.Player.Name(), strconv.Itoa(l.Streak))
	}
	table.Render()
}

// PrintMostPlayed prints the most-played games ranking.
func PrintMostPlayed(w io.Writer, rows []model.GamePlayCount) {
	if len(rows) == 0 {
		return
	}
	table := newTable(w)
	table.Header("GAME", "TYPE", "PLAYS")
	for _, row := range rows {
		table.Append(row.Game.Name, string(row.Game.Type), strconv.Itoa(row.Plays))
	}
	table.Render()
}

// PrintGameDifficulties prints the competitiveness ranking: the share of a
// game's plays won by distinct players.
func PrintGameDifficulties(w io.Writer, rows []model.GameDifficulty) {
	if len(rows) == 0 {
		return
	}
	table := newTable(w)
	table.Header("GAME", "PLAYS", "WINNERS", "COMPETITIVENESS")
	for _, row := range rows {
		table.Append(
			row.Game.Name,
			strconv.Itoa(row.Plays),
			strconv.Itoa(row.DistinctWinners),
			fmt.Sprintf("%.0f%%", row.Competitiveness*100),
		)
	}
	table.Render()
}

// PrintGamePoints prints total points awarded per game.
func PrintGamePoints(w io.Writer, rows []model.GamePointsTotal) {
	if len(rows) == 0 {
		return
	}
	table := newTable(w)
	table.Header("GAME", "TOTAL PTS")
	for _, row := range rows {
		table.Append(row.Game.Name, strconv.Itoa(row.Points))
	}
	table.Render()
}

// PrintDrought prints the longest active dry spell, if any player has one.
func PrintDrought(w io.Writer, d *model.Drought) {
	if d == nil {
		return
	}
	fmt.Fprintf(w, "\nLongest drought: %s — %d games without a win\n", d.Player.Name(), d.Games)
}

// PrintDashboard prints the home-page summary.
func PrintDashboard(w io.Writer, sum model.DashboardSummary) {
	if len(sum.Leaderboard) > 0 {
		fmt.Fprintln(w, "\nCurrent standings:")
		PrintLeaderboard(w, sum.Leaderboard, nil)
	}

	if len(sum.LatestEvents) > 0 {
		fmt.Fprintln(w, "\nLatest events:")
		table := newTable(w)
		table.Header("ID", "DATE", "LOCATION", "PLAYERS", "GAMES")
		for _, e := range sum.LatestEvents {
			table.Append(
				strconv.FormatInt(e.ID, 10),
				e.Date.Format(dateLayout),
				e.Location,
				strconv.Itoa(len(e.PlayerIDs)),
				strconv.Itoa(len(e.GameIDs)),
			)
		}
		table.Render()
	}

	if len(sum.TopScorers) > 0 {
		names := make([]string, len(sum.TopScorers))
		for i, ts := range sum.TopScorers {
			names[i] = ts.Player.Name()
		}
		fmt.Fprintf(w, "\nTop scorer last night: %s (%d pts)\n", strings.Join(names, ", "), sum.TopScorers[0].Points)
	}

	PrintDrought(w, sum.Drought)

	if sum.TopRivalry != nil {
		r := sum.TopRivalry
		fmt.Fprintf(w, "Hottest rivalry: %s %d – %d %s over %d games\n",
			r.PlayerA.Name(), r.WinsA, r.WinsB, r.PlayerB.Name(), r.Games)
	}
}

// PrintPlayers prints the player roster.
func PrintPlayers(w io.Writer, players []model.Player) {
	table := newTable(w)
	table.Header("ID", "NAME", "FULL NAME", "ON BOARD")

	for _, p := range players {
		onBoard := "yes"
		if !p.ShowOnLeaderboard {
			onBoard = "no"
		}
		table.Append(strconv.FormatInt(p.ID, 10), p.Name(), p.FullName(), onBoard)
	}
	table.Render()
}

// PrintGames prints the game catalogue.
func PrintGames(w io.Writer, games []model.Game) {
	table := newTable(w)
	table.Header("ID", "NAME", "TYPE", "PTS")

	for _, g := range games {
		table.Append(strconv.FormatInt(g.ID, 10), g.Name, string(g.Type), strconv.Itoa(g.Points))
	}
	table.Render()
}

// PrintEvents prints the event log.
func PrintEvents(w io.Writer, events []model.Event) {
	table := newTable(w)
	table.Header("ID", "DATE", "LOCATION", "PLAYERS", "GAMES")

	for _, e := range events {
		table.Append(
			strconv.FormatInt(e.ID, 10),
			e.Date.Format(dateLayout),
			e.Location,
			strconv.Itoa(len(e.PlayerIDs)),
			strconv.Itoa(len(e.GameIDs)),
		)
	}
	table.Render()
}
