package models

import "time"

// TokenCounter is the per-day token sequence. One row per calendar day,
// keyed by the day string, incremented under a row lock so two approvals
// on the same day can never draw the same number.
type TokenCounter struct {
	Day  string `gorm:"primaryKey;size:10" json:"day"` // "2006-01-02"
	Next int    `gorm:"not null;default:0" json:"next"`

	UpdatedAt time.Time `json:"updated_at"`
}
