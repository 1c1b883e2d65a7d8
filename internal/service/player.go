package service

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
	"majsoul-tracker/internal/api"
	"majsoul-tracker/internal/constants"
	"majsoul-tracker/internal/domain"
)

// PlayerService resolves display names to upstream account ids.
type PlayerService struct {
	amae   *api.Client
	group  singleflight.Group
	logger zerolog.Logger
}

func NewPlayerService(amae *api.Client, logger zerolog.Logger) *PlayerService {
	return &PlayerService{amae: amae, logger: logger}
}

// ResolvePlayer looks up the account id for a display name under the
// given rule. Concurrent lookups for the same name and rule are
// collapsed into a single upstream call; nothing is cached once the
// call completes.
func (s *PlayerService) ResolvePlayer(ctx context.Context, name string, rule domain.GameRule) (uint64, error) {
	name, err := url.QueryUnescape(name)
	if err != nil {
		return 0, fmt.Errorf("failed to unescape name: %w", err)
	}

	s.logger.Info().Str("name", name).Stringer("rule", rule).Msg("resolving player")

	key := fmt.Sprintf("%s/%s", rule, name)
	id, err, shared := s.group.Do(key, func() (any, error) {
		apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
		defer cancel()

		results, err := s.amae.SearchPlayer(apiCtx, rule, name)
		if err != nil {
			return nil, fmt.Errorf("failed to search player: %w", err)
		}
		if len(results) == 0 {
			return nil, domain.ErrPlayerNotFound
		}
		return results[0].ID, nil
	})
	if err != nil {
		s.logger.Warn().Err(err).Str("name", name).Msg("player resolution failed")
		return 0, err
	}

	s.logger.Debug().
		Uint64("player_id", id.(uint64)).
		Bool("shared", shared).
		Str("name", name).
		Msg("player resolved")

	return id.(uint64), nil
}
