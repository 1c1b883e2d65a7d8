package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrPlayerNotFound is returned when a display name resolves to no
// upstream account.
var ErrPlayerNotFound = errors.New("player not found")

// GameRule selects which amae-koromo dataset a request runs against.
type GameRule int

const (
	ThreePlayer GameRule = iota
	FourPlayer
)

func (r GameRule) String() string {
	switch r {
	case ThreePlayer:
		return "3P"
	case FourPlayer:
		return "4P"
	default:
		return fmt.Sprintf("GameRule(%d)", int(r))
	}
}

// ModeIDs returns the comma-separated mode id list the upstream API
// accepts for this rule, passed verbatim in the records query.
func (r GameRule) ModeIDs() string {
	switch r {
	case ThreePlayer:
		return "21,22,23,24,25,26"
	case FourPlayer:
		return "8,9,11,12,15,16"
	default:
		return ""
	}
}

// GameCategory is the skill-tier/match-length room a match was played in.
type GameCategory int

const (
	Gold GameCategory = iota
	GoldEast
	Jade
	JadeEast
	Throne
	ThroneEast
)

func (c GameCategory) String() string {
	switch c {
	case Gold:
		return "Gold"
	case GoldEast:
		return "Gold East"
	case Jade:
		return "Jade"
	case JadeEast:
		return "Jade East"
	case Throne:
		return "Throne"
	case ThroneEast:
		return "Throne East"
	default:
		return fmt.Sprintf("GameCategory(%d)", int(c))
	}
}

// GameType is the displayable classification of a match, derived from
// the upstream mode id.
type GameType struct {
	Rule     GameRule
	Category GameCategory
}

func (t GameType) String() string {
	return fmt.Sprintf("%s %s", t.Rule, t.Category)
}

// GameTypeForMode maps an upstream mode id to its GameType. The mode id
// space is owned by the upstream service and is closed: only the twelve
// enumerated ids exist, so anything else is a contract violation and
// yields an error rather than a default.
func GameTypeForMode(modeID uint64) (GameType, error) {
	switch modeID {
	case 21:
		return GameType{Rule: ThreePlayer, Category: GoldEast}, nil
	case 22:
		return GameType{Rule: ThreePlayer, Category: Gold}, nil
	case 23:
		return GameType{Rule: ThreePlayer, Category: JadeEast}, nil
	case 24:
		return GameType{Rule: ThreePlayer, Category: Jade}, nil
	case 25:
		return GameType{Rule: ThreePlayer, Category: ThroneEast}, nil
	case 26:
		return GameType{Rule: ThreePlayer, Category: Throne}, nil
	case 8:
		return GameType{Rule: FourPlayer, Category: GoldEast}, nil
	case 9:
		return GameType{Rule: FourPlayer, Category: Gold}, nil
	case 11:
		return GameType{Rule: FourPlayer, Category: JadeEast}, nil
	case 12:
		return GameType{Rule: FourPlayer, Category: Jade}, nil
	case 15:
		return GameType{Rule: FourPlayer, Category: ThroneEast}, nil
	case 16:
		return GameType{Rule: FourPlayer, Category: Throne}, nil
	default:
		return GameType{}, fmt.Errorf("unknown mode id: %d", modeID)
	}
}

// PlayerResult is one participant's final standing in a match, in
// ranking order on GameMatch.PlayerResults.
type PlayerResult struct {
	Name       string
	FinalScore int64
}

// GameMatch is one completed match from the target player's history.
type GameMatch struct {
	PlayerRank      uint64
	StartTime       time.Time
	DurationMinutes int64
	GameType        GameType
	PtChange        int64
	PlayerResults   []PlayerResult
}

// MatchHistory is the full aggregation result for one player. Truncated
// is set when the pagination loop hit its page cap before the upstream
// signaled end-of-data.
type MatchHistory struct {
	Matches   []GameMatch
	Truncated bool
}
