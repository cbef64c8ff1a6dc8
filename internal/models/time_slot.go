package models

import "time"

// TimeSlot is a bookable interval published by an approver.
// Availability flips to false while a booked appointment holds the slot
// and back to true when that appointment is cancelled.
type TimeSlot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	StartTime time.Time `gorm:"index;not null" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`

	Available bool `gorm:"default:true" json:"is_available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
