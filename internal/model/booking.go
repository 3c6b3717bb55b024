package model

import "time"

type BookingStatus string

const (
	BookingStatusScheduled BookingStatus = "scheduled"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is a scheduled interview linking a panel, recruiter, and
// candidate. It does not reference a specific availability slot and does not
// consume one; two bookings for the identical panel/date/time can coexist.
type Booking struct {
	ID            int64         `json:"id" db:"id"`
	PanelID       int64         `json:"panel_id" db:"panel_id"`
	RecruiterID   int64         `json:"recruiter_id" db:"recruiter_id"`
	CandidateName string        `json:"candidate_name" db:"candidate_name"`
	Date          string        `json:"date" db:"date"`
	Time          string        `json:"time" db:"time"`
	Status        BookingStatus `json:"status" db:"status"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
}

type CreateBookingRequest struct {
	PanelID       int64  `json:"panel_id" binding:"required"`
	CandidateName string `json:"candidate_name" binding:"required"`
	Date          string `json:"date" binding:"required"`
	Time          string `json:"time" binding:"required"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
