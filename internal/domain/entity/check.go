package entity

import (
	"encoding/json"
	"time"
)

// Check is a single verification job a user ran against the service.
// Result carries the provider payload as raw JSON.
type Check struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	Type      string          `json:"type"`
	Status    string          `json:"status"`
	Result    json.RawMessage `json:"result,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

// CheckStats summarizes a user's check usage against the configured quota.
type CheckStats struct {
	TotalChecks     int        `json:"totalChecks"`
	RemainingChecks int        `json:"remainingChecks"`
	LastCheckDate   *time.Time `json:"lastCheckDate"`
}
