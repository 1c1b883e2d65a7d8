package service

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"majsoul-tracker/internal/api"
	"majsoul-tracker/internal/domain"
)

// parseRecords turns one page of raw match records into GameMatch values,
// preserving the upstream match order (newest first within a page). Any
// malformed record fails the whole page: a record that cannot be ranked
// would silently misrepresent the player's history, so the request fails
// instead of skipping it.
func parseRecords(records []api.PlayerRecord, targetID uint64) ([]domain.GameMatch, error) {
	matches := make([]domain.GameMatch, 0, len(records))
	for _, rec := range records {
		match, err := parseRecord(rec, targetID)
		if err != nil {
			return nil, err
		}
		matches = append(matches, match)
	}
	return matches, nil
}

func parseRecord(rec api.PlayerRecord, targetID uint64) (domain.GameMatch, error) {
	gameType, err := domain.GameTypeForMode(rec.ModeID)
	if err != nil {
		return domain.GameMatch{}, err
	}

	// Rank is the 1-based position after sorting by grading score
	// descending. The sort is stable so exact ties keep the upstream
	// participant order.
	players := slices.Clone(rec.Players)
	slices.SortStableFunc(players, func(a, b api.RecordPlayer) int {
		return cmp.Compare(b.GradingScore, a.GradingScore)
	})

	rank := 0
	var ptChange int64
	for i, p := range players {
		if p.AccountID == targetID {
			rank = i + 1
			ptChange = p.GradingScore
			break
		}
	}
	if rank == 0 {
		return domain.GameMatch{}, fmt.Errorf("player %d missing from record starting at %d", targetID, rec.StartTime)
	}

	results := make([]domain.PlayerResult, len(players))
	for i, p := range players {
		results[i] = domain.PlayerResult{Name: p.Nickname, FinalScore: p.Score}
	}

	return domain.GameMatch{
		PlayerRank:      uint64(rank),
		StartTime:       time.Unix(rec.StartTime, 0).UTC(),
		DurationMinutes: (rec.EndTime - rec.StartTime) / 60,
		GameType:        gameType,
		PtChange:        ptChange,
		PlayerResults:   results,
	}, nil
}
