package models

import "time"

type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RecipientID uint   `gorm:"index" json:"recipient_id"`
	Message     string `gorm:"size:500;not null" json:"message"`
	Link        string `gorm:"size:255" json:"link,omitempty"`
	Read        bool   `gorm:"default:false" json:"is_read"`

	CreatedAt time.Time `json:"created_at"`
}
