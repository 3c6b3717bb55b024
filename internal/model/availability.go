package model

import "time"

type SlotStatus string

const (
	SlotStatusAvailable SlotStatus = "available"
	SlotStatusLeave     SlotStatus = "leave"
)

// AvailabilitySlot is a time window a panel marks as open for booking.
// Dates and times are literal strings ("2025-01-10", "09:00"); the system
// performs no timezone interpretation.
type AvailabilitySlot struct {
	ID        int64      `json:"id" db:"id"`
	PanelID   int64      `json:"panel_id" db:"panel_id"`
	Date      string     `json:"date" db:"date"`
	StartTime string     `json:"start_time" db:"start_time"`
	EndTime   string     `json:"end_time" db:"end_time"`
	Status    SlotStatus `json:"status" db:"status"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

type CreateAvailabilityRequest struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}
