package model

import "time"

// Feedback is a panel's post-interview record for a booking. Nothing
// prevents multiple feedback rows for one booking.
type Feedback struct {
	ID        int64     `json:"id" db:"id"`
	BookingID int64     `json:"booking_id" db:"booking_id"`
	Rating    int       `json:"rating" db:"rating"`
	Comments  string    `json:"comments" db:"comments"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type CreateFeedbackRequest struct {
	BookingID int64  `json:"booking_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comments  string `json:"comments"`
}
