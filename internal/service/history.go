package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"majsoul-tracker/internal/api"
	"majsoul-tracker/internal/config"
	"majsoul-tracker/internal/constants"
	"majsoul-tracker/internal/domain"
)

// HistoryService aggregates a player's complete match history by walking
// the upstream player_records endpoint backwards in time. The upstream
// offers no total count or continuation token, only a bounded time
// window, so termination is inferred from page size and emptiness.
type HistoryService struct {
	amae     *api.Client
	maxPages int
	logger   zerolog.Logger
}

func NewHistoryService(amae *api.Client, cfg *config.Config, logger zerolog.Logger) *HistoryService {
	return &HistoryService{amae: amae, maxPages: cfg.MaxHistoryPages, logger: logger}
}

// FetchHistory returns every match for the player from now back to the
// historical floor, newest first. Each page strictly precedes the one
// before it: the cursor moves to one time unit before the oldest match
// seen, so boundary records are never fetched twice. A transport or
// parse failure on any page aborts the whole aggregation with no
// partial result. Hitting the page cap marks the history as truncated
// rather than failing.
func (s *HistoryService) FetchHistory(ctx context.Context, playerID uint64, rule domain.GameRule) (*domain.MatchHistory, error) {
	cursor := time.Now().Unix()
	history := &domain.MatchHistory{}

	s.logger.Info().
		Uint64("player_id", playerID).
		Stringer("rule", rule).
		Int64("cursor", cursor).
		Msg("fetching match history")

	for page := 0; ; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if page >= s.maxPages {
			s.logger.Warn().
				Uint64("player_id", playerID).
				Int("pages", page).
				Int("matches", len(history.Matches)).
				Msg("page cap reached, truncating history")
			history.Truncated = true
			break
		}

		apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
		records, err := s.amae.GetPlayerRecords(apiCtx, rule, playerID, cursor)
		cancel()
		if err != nil {
			s.logger.Error().Err(err).Uint64("player_id", playerID).Int64("cursor", cursor).Msg("failed to fetch records page")
			return nil, fmt.Errorf("failed to fetch records page: %w", err)
		}

		matches, err := parseRecords(records, playerID)
		if err != nil {
			s.logger.Error().Err(err).Uint64("player_id", playerID).Int64("cursor", cursor).Msg("failed to parse records page")
			return nil, fmt.Errorf("failed to parse records page: %w", err)
		}

		if len(matches) == 0 {
			break
		}

		cursor = matches[len(matches)-1].StartTime.Unix() - 1
		history.Matches = append(history.Matches, matches...)

		s.logger.Debug().
			Uint64("player_id", playerID).
			Int("page", page).
			Int("page_size", len(records)).
			Int64("next_cursor", cursor).
			Msg("records page fetched")

		if len(records) < constants.HistoryPageLimit {
			break
		}
	}

	s.logger.Info().
		Uint64("player_id", playerID).
		Int("matches", len(history.Matches)).
		Bool("truncated", history.Truncated).
		Msg("match history fetched")

	return history, nil
}
