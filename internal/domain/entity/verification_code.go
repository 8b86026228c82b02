package entity

import "time"

// VerificationCode is a one-time login code emailed to a user. Codes are
// single-use: verification consumes the row. Several unexpired codes may
// exist for the same email; any matching one authenticates.
type VerificationCode struct {
	ID        int64
	Email     string
	Code      string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the code is no longer valid at the given instant.
func (v *VerificationCode) Expired(now time.Time) bool {
	return !now.Before(v.ExpiresAt)
}
