package dto

import "time"

// QueueEntryDTO is one position in the day's service queue.
type QueueEntryDTO struct {
	AppointmentID uint      `json:"appointment_id"`
	TokenNumber   *int      `json:"token_number"`
	Status        string    `json:"status"`
	SlotStart     time.Time `json:"slot_start"`
	SlotEnd       time.Time `json:"slot_end"`
	RequesterID   uint      `json:"requester_id"`
	RequesterName string    `json:"requester_name"`
	Purpose       string    `json:"purpose"`
}

type SlotDTO struct {
	ID          uint      `json:"id"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Available   bool      `json:"is_available"`
	BookedCount int64     `json:"booked_count"`
}
