package importer

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ifancyabroad/the-nightingames/internal/storage"
)

const validDoc = `{
	"players": [
		{"firstName": "Alice", "lastName": "Able"},
		{"firstName": "Robert", "lastName": "Best", "preferredName": "Bob"},
		{"firstName": "Cara", "lastName": "Cole", "showOnLeaderboard": false}
	],
	"games": [
		{"name": "Catan", "points": 2, "type": "board"},
		{"name": "Mario Kart", "points": 2, "type": "video"}
	],
	"events": [
		{
			"date": "2025-03-01",
			"location": "Alice's place",
			"players": ["Alice", "Bob"],
			"games": ["Catan", "Mario Kart"],
			"results": [
				{
					"game": "Catan",
					"entries": [
						{"player": "Alice", "rank": 1, "isWinner": true},
						{"player": "Bob", "rank": 2, "isLoser": true}
					]
				},
				{
					"game": "Mario Kart",
					"entries": [
						{"player": "Bob", "isWinner": true},
						{"player": "Alice", "isLoser": true}
					]
				}
			]
		}
	]
}`

func TestParseValidDocument(t *testing.T) {
	ds, err := Parse(strings.NewReader(validDoc))
	require.NoError(t, err)
	assert.Len(t, ds.Players, 3)
	assert.Len(t, ds.Games, 2)
	assert.Len(t, ds.Events, 1)
	assert.Equal(t, "Bob", ds.Players[1].Name())
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse(strings.NewReader(`{"players": [{"firstName": "A", "nickname": "x"}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode dataset")
}

func TestValidateFailures(t *testing.T) {
	cases := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			"missing first name",
			`{"players": [{"lastName": "Able"}]}`,
			"missing firstName",
		},
		{
			"duplicate player name",
			`{"players": [{"firstName": "Alice"}, {"firstName": "Alicia", "preferredName": "Alice"}]}`,
			`duplicate player name "Alice"`,
		},
		{
			"points out of range",
			`{"games": [{"name": "Risk", "points": 4, "type": "board"}]}`,
			"out of range",
		},
		{
			"invalid game type",
			`{"games": [{"name": "Risk", "points": 2, "type": "card"}]}`,
			"invalid type",
		},
		{
			"bad event date",
			`{"events": [{"date": "March 1st"}]}`,
			"invalid date",
		},
		{
			"unknown roster player",
			`{"events": [{"date": "2025-03-01", "players": ["Nobody"]}]}`,
			`unknown player "Nobody"`,
		},
		{
			"result game off the event list",
			`{
				"players": [{"firstName": "Alice"}],
				"games": [{"name": "Catan", "points": 2, "type": "board"}],
				"events": [{
					"date": "2025-03-01",
					"players": ["Alice"],
					"games": [],
					"results": [{"game": "Catan", "entries": []}]
				}]
			}`,
			"not on event game list",
		},
		{
			"entry player off the roster",
			`{
				"players": [{"firstName": "Alice"}, {"firstName": "Bob"}],
				"games": [{"name": "Catan", "points": 2, "type": "board"}],
				"events": [{
					"date": "2025-03-01",
					"players": ["Alice"],
					"games": ["Catan"],
					"results": [{"game": "Catan", "entries": [{"player": "Bob", "isWinner": true}]}]
				}]
			}`,
			"not on event roster",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestImport(t *testing.T) {
	db, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sum, err := Import(db, strings.NewReader(validDoc))
	require.NoError(t, err)
	assert.Equal(t, Summary{Players: 3, Games: 2, Events: 1, Results: 2}, sum)

	snap, err := db.LoadSnapshot()
	require.NoError(t, err)
	require.Len(t, snap.Players, 3)
	require.Len(t, snap.Events, 1)
	require.Len(t, snap.Results, 2)

	// Cara opted out of the leaderboard.
	assert.False(t, snap.Players[2].ShowOnLeaderboard)

	// Name references resolved to the store's IDs.
	event := snap.Events[0]
	assert.Len(t, event.PlayerIDs, 2)
	assert.Equal(t, snap.Players[0].ID, event.PlayerIDs[0])

	// Results keep document order and their per-player entries.
	first := snap.Results[0]
	assert.Equal(t, 1, first.Order)
	require.Len(t, first.PlayerResults, 2)
	winner := first.PlayerResults[0]
	assert.True(t, winner.IsWinner)
	require.NotNil(t, winner.Rank)
	assert.Equal(t, 1, *winner.Rank)
}
