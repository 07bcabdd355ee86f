package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevel_Order(t *testing.T) {
	levels := AllLevels()
	assert.Equal(t, []Level{LevelHat, LevelNayMam, LevelCayCon, LevelCayTo}, levels)

	for i, l := range levels {
		assert.Equal(t, i, l.Index())
		assert.True(t, l.Valid())
	}
	assert.Equal(t, -1, Level("tree").Index())
	assert.False(t, Level("tree").Valid())
}

func TestLevel_NextPrevious(t *testing.T) {
	tests := []struct {
		level    Level
		next     Level
		hasNext  bool
		prev     Level
		hasPrev  bool
		isMax    bool
	}{
		{LevelHat, LevelNayMam, true, "", false, false},
		{LevelNayMam, LevelCayCon, true, LevelHat, true, false},
		{LevelCayCon, LevelCayTo, true, LevelNayMam, true, false},
		{LevelCayTo, "", false, LevelCayCon, true, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			next, ok := tt.level.Next()
			assert.Equal(t, tt.hasNext, ok)
			assert.Equal(t, tt.next, next)

			prev, ok := tt.level.Previous()
			assert.Equal(t, tt.hasPrev, ok)
			assert.Equal(t, tt.prev, prev)

			assert.Equal(t, tt.isMax, tt.level.IsMax())
		})
	}
}

func TestLevel_Above(t *testing.T) {
	assert.True(t, LevelCayTo.Above(LevelHat))
	assert.True(t, LevelNayMam.Above(LevelHat))
	assert.False(t, LevelHat.Above(LevelHat))
	assert.False(t, LevelCayCon.Above(LevelCayTo))
}

func TestLevel_DisplayMetadata(t *testing.T) {
	assert.Equal(t, "Hạt", LevelHat.DisplayName())
	assert.Equal(t, "Nảy mầm", LevelNayMam.DisplayName())
	assert.Equal(t, "Cây con", LevelCayCon.DisplayName())
	assert.Equal(t, "Cây to", LevelCayTo.DisplayName())
	assert.Equal(t, "unknown", Level("unknown").DisplayName())

	for _, l := range AllLevels() {
		assert.NotEmpty(t, l.Icon(), "level %s should have an icon", l)
	}
}

func TestLevelThresholds_For(t *testing.T) {
	th := LevelThresholds{Hat: 0, NayMam: 10, CayCon: 20, CayTo: 30}

	assert.Equal(t, 0, th.For(LevelHat))
	assert.Equal(t, 10, th.For(LevelNayMam))
	assert.Equal(t, 20, th.For(LevelCayCon))
	assert.Equal(t, 30, th.For(LevelCayTo))
	assert.Equal(t, 0, th.For(Level("bogus")))
}
