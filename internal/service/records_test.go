package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"majsoul-tracker/internal/api"
)

func threePlayerRecord() api.PlayerRecord {
	return api.PlayerRecord{
		ModeID:    22,
		StartTime: 1700000000,
		EndTime:   1700001800,
		Players: []api.RecordPlayer{
			{AccountID: 100, Nickname: "first", Score: 25000, GradingScore: -30},
			{AccountID: 200, Nickname: "second", Score: 45000, GradingScore: 120},
			{AccountID: 300, Nickname: "third", Score: 35000, GradingScore: 45},
		},
	}
}

func TestParseRecordRankAndResults(t *testing.T) {
	matches, err := parseRecords([]api.PlayerRecord{threePlayerRecord()}, 300)
	require.NoError(t, err)
	require.Len(t, matches, 1)

	m := matches[0]
	assert.Equal(t, uint64(2), m.PlayerRank)
	assert.Equal(t, int64(45), m.PtChange)
	assert.Equal(t, "3P Gold", m.GameType.String())
	assert.Equal(t, int64(30), m.DurationMinutes)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), m.StartTime)

	// results come back in ranking order, stripped to name and score
	require.Len(t, m.PlayerResults, 3)
	assert.Equal(t, "second", m.PlayerResults[0].Name)
	assert.Equal(t, int64(45000), m.PlayerResults[0].FinalScore)
	assert.Equal(t, "third", m.PlayerResults[1].Name)
	assert.Equal(t, "first", m.PlayerResults[2].Name)
}

func TestParseRecordRanksArePermutation(t *testing.T) {
	rec := threePlayerRecord()

	seen := make(map[uint64]bool)
	for _, p := range rec.Players {
		matches, err := parseRecords([]api.PlayerRecord{rec}, p.AccountID)
		require.NoError(t, err)

		rank := matches[0].PlayerRank
		assert.GreaterOrEqual(t, rank, uint64(1))
		assert.LessOrEqual(t, rank, uint64(len(rec.Players)))
		assert.False(t, seen[rank], "rank %d assigned twice", rank)
		seen[rank] = true
	}
	assert.Len(t, seen, len(rec.Players))
}

func TestParseRecordTieBreakKeepsUpstreamOrder(t *testing.T) {
	rec := api.PlayerRecord{
		ModeID:    9,
		StartTime: 1700000000,
		EndTime:   1700002400,
		Players: []api.RecordPlayer{
			{AccountID: 1, Nickname: "a", Score: 20000, GradingScore: 50},
			{AccountID: 2, Nickname: "b", Score: 30000, GradingScore: 50},
			{AccountID: 3, Nickname: "c", Score: 10000, GradingScore: -40},
			{AccountID: 4, Nickname: "d", Score: 40000, GradingScore: 90},
		},
	}

	matches, err := parseRecords([]api.PlayerRecord{rec}, 2)
	require.NoError(t, err)

	m := matches[0]
	// a and b tie at 50; the stable sort keeps a ahead of b
	assert.Equal(t, uint64(3), m.PlayerRank)
	assert.Equal(t, []string{"d", "a", "b", "c"}, []string{
		m.PlayerResults[0].Name,
		m.PlayerResults[1].Name,
		m.PlayerResults[2].Name,
		m.PlayerResults[3].Name,
	})
}

func TestParseRecordDuration(t *testing.T) {
	rec := threePlayerRecord()
	rec.StartTime = 1000000
	rec.EndTime = 1002400

	matches, err := parseRecords([]api.PlayerRecord{rec}, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(40), matches[0].DurationMinutes)
}

func TestParseRecordTargetMissing(t *testing.T) {
	_, err := parseRecords([]api.PlayerRecord{threePlayerRecord()}, 999)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing from record")
}

func TestParseRecordUnknownModeID(t *testing.T) {
	rec := threePlayerRecord()
	rec.ModeID = 42

	_, err := parseRecords([]api.PlayerRecord{rec}, 100)
	assert.Error(t, err)
}

func TestParseRecordsPreservesMatchOrder(t *testing.T) {
	first := threePlayerRecord()
	second := threePlayerRecord()
	second.StartTime = first.StartTime - 3600
	second.EndTime = second.StartTime + 1500

	matches, err := parseRecords([]api.PlayerRecord{first, second}, 100)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.True(t, matches[0].StartTime.After(matches[1].StartTime))
}
