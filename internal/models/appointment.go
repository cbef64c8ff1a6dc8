package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RequesterID uint `gorm:"index" json:"requester_id"`
	Requester   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"requester"`

	TimeSlotID uint     `gorm:"index" json:"time_slot_id"`
	TimeSlot   TimeSlot `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"time_slot"`

	Purpose string `gorm:"size:255" json:"purpose"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	// TokenNumber is assigned exactly once, on approval, and is never
	// cleared or reused within the same day.
	TokenNumber *int `json:"token_number"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
