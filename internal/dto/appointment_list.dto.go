package dto

import "time"

type AppointmentListDTO struct {
	ID            uint      `json:"id"`
	Purpose       string    `json:"purpose"`
	Status        string    `json:"status"`
	TokenNumber   *int      `json:"token_number"`
	SlotStart     time.Time `json:"slot_start"`
	SlotEnd       time.Time `json:"slot_end"`
	RequesterID   uint      `json:"requester_id"`
	RequesterName string    `json:"requester_name,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
