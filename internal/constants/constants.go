package constants

import "time"

const (
	ExternalAPITimeout = 10 * time.Second
	RequestTimeout     = 60 * time.Second
	ShutdownTimeout    = 5 * time.Second
)

const (
	// HistoryPageLimit is the record count requested per page; a shorter
	// page is the upstream's end-of-data signal.
	HistoryPageLimit = 500

	// HistoryFloorTimestamp is 2010-01-01T00:00:00Z in the upstream's
	// unit, the fixed lower bound of every records query.
	HistoryFloorTimestamp = 1262304000000

	// DefaultMaxHistoryPages bounds the pagination loop for prolific
	// players; hitting it marks the history as truncated.
	DefaultMaxHistoryPages = 40
)
