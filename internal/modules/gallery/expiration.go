package gallery

import (
	"math"
	"time"
)

const expiryWarningDays = 7

// ExpirationInfo is the countdown banner state for one gallery.
type ExpirationInfo struct {
	ExpiresAt     time.Time `json:"expires_at"`
	DaysRemaining int       `json:"days_remaining"`
	ExpiringSoon  bool      `json:"expiring_soon"`
	Expired       bool      `json:"expired"`
	Never         bool      `json:"never,omitempty"`
}

// Expiration computes the countdown for a gallery at the given instant.
// Partial days round up, so a gallery expiring in one hour still shows one
// day remaining. The warning shows only inside the final week, never on an
// already expired gallery.
func Expiration(expiresAt, now time.Time) ExpirationInfo {
	if expiresAt.IsZero() {
		return ExpirationInfo{Never: true}
	}

	info := ExpirationInfo{ExpiresAt: expiresAt}
	if expiresAt.Before(now) {
		info.Expired = true
		return info
	}

	days := int(math.Ceil(expiresAt.Sub(now).Hours() / 24))
	if days < 0 {
		days = 0
	}
	info.DaysRemaining = days
	info.ExpiringSoon = days > 0 && days <= expiryWarningDays
	return info
}
