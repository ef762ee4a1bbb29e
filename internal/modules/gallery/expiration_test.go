package gallery

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExpiration_PartialDayRoundsUp(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	info := Expiration(now.Add(1*time.Hour), now)
	assert.Equal(t, 1, info.DaysRemaining)
	assert.True(t, info.ExpiringSoon)
	assert.False(t, info.Expired)

	info = Expiration(now.Add(25*time.Hour), now)
	assert.Equal(t, 2, info.DaysRemaining)
}

func TestExpiration_WarningOnlyInsideFinalWeek(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, Expiration(now.Add(7*24*time.Hour), now).ExpiringSoon)
	assert.False(t, Expiration(now.Add(8*24*time.Hour), now).ExpiringSoon)
	assert.False(t, Expiration(now.Add(30*24*time.Hour), now).ExpiringSoon)
}

func TestExpiration_Expired(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	info := Expiration(now.Add(-time.Minute), now)
	assert.True(t, info.Expired)
	assert.False(t, info.ExpiringSoon)
	assert.Equal(t, 0, info.DaysRemaining)
}

func TestExpiration_ZeroMeansNever(t *testing.T) {
	info := Expiration(time.Time{}, time.Now())
	assert.True(t, info.Never)
	assert.False(t, info.Expired)
	assert.False(t, info.ExpiringSoon)
}
