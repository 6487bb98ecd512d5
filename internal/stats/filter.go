package stats

import (
	"sort"

	"github.com/ifancyabroad/the-nightingames/internal/model"
)

// FilterResultsByYear keeps results whose owning event falls within the given
// calendar year. A nil year means no filtering and returns the input slice
// unchanged. A result whose event cannot be resolved is excluded.
func FilterResultsByYear(results []model.Result, eventByID map[int64]model.Event, year *int) []model.Result {
	if year == nil {
		return results
	}
	out := make([]model.Result, 0, len(results))
	for _, r := range results {
		event, ok := eventByID[r.EventID]
		if !ok {
			continue
		}
		if event.Date.Year() == *year {
			out = append(out, r)
		}
	}
	return out
}

// FilterByGameType keeps results whose referenced game has the matching type.
// Unresolvable game references are excluded.
func FilterByGameType(results []model.Result, gameByID map[int64]model.Game, gameType model.GameType) []model.Result {
	out := make([]model.Result, 0, len(results))
	for _, r := range results {
		game, ok := gameByID[r.GameID]
		if !ok {
			continue
		}
		if game.Type == gameType {
			out = append(out, r)
		}
	}
	return out
}

// SortEventsByDate returns a copy of events stably sorted by date. Ties keep
// the original array order.
func SortEventsByDate(events []model.Event, descending bool) []model.Event {
	out := make([]model.Event, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool {
		if descending {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// SortResultsChronologically returns a copy of results sorted by (event date,
// result order) ascending. This is the canonical "through time" ordering for
// every time-series and streak computation. Results whose event cannot be
// resolved sort before dated ones, keeping their relative order.
func SortResultsChronologically(results []model.Result, eventByID map[int64]model.Event) []model.Result {
	out := make([]model.Result, len(results))
	copy(out, results)
	sort.SliceStable(out, func(i, j int) bool {
		ei, oki := eventByID[out[i].EventID]
		ej, okj := eventByID[out[j].EventID]
		if !oki || !okj {
			return !oki && okj
		}
		if !ei.Date.Equal(ej.Date) {
			return ei.Date.Before(ej.Date)
		}
		if ei.ID != ej.ID {
			return ei.ID < ej.ID
		}
		return out[i].Order < out[j].Order
	})
	return out
}

// AvailableYears returns the distinct calendar years covered by events,
// newest first.
func AvailableYears(events []model.Event) []int {
	seen := make(map[int]struct{})
	var years []int
	for _, e := range events {
		y := e.Date.Year()
		if _, ok := seen[y]; ok {
			continue
		}
		seen[y] = struct{}{}
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}
