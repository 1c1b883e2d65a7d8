package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameTypeForModeKnownIDs(t *testing.T) {
	known := []uint64{8, 9, 11, 12, 15, 16, 21, 22, 23, 24, 25, 26}

	seen := make(map[GameType]uint64)
	for _, id := range known {
		gt, err := GameTypeForMode(id)
		require.NoError(t, err, "mode id %d", id)

		prev, dup := seen[gt]
		assert.False(t, dup, "mode ids %d and %d map to the same game type %v", prev, id, gt)
		seen[gt] = id

		if id >= 21 {
			assert.Equal(t, ThreePlayer, gt.Rule, "mode id %d", id)
		} else {
			assert.Equal(t, FourPlayer, gt.Rule, "mode id %d", id)
		}
	}

	assert.Len(t, seen, len(known))
}

func TestGameTypeForModeUnknownIDs(t *testing.T) {
	for _, id := range []uint64{0, 1, 7, 10, 13, 14, 17, 20, 27, 100} {
		_, err := GameTypeForMode(id)
		assert.Error(t, err, "mode id %d", id)
	}
}

func TestGameTypeDisplay(t *testing.T) {
	gt, err := GameTypeForMode(21)
	require.NoError(t, err)
	assert.Equal(t, "3P Gold East", gt.String())

	gt, err = GameTypeForMode(16)
	require.NoError(t, err)
	assert.Equal(t, "4P Throne", gt.String())

	gt, err = GameTypeForMode(24)
	require.NoError(t, err)
	assert.Equal(t, "3P Jade", gt.String())
}

func TestGameRuleModeIDs(t *testing.T) {
	assert.Equal(t, "21,22,23,24,25,26", ThreePlayer.ModeIDs())
	assert.Equal(t, "8,9,11,12,15,16", FourPlayer.ModeIDs())
}
