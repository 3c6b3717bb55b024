package postgres

import (
	"context"
	"fmt"

	"github.com/hireloop/scheduler-api/internal/model"
)

func (r *feedbackRepository) Create(ctx context.Context, feedback *model.Feedback) error {
	query := `
		INSERT INTO feedback (booking_id, rating, comments)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		feedback.BookingID,
		feedback.Rating,
		feedback.Comments,
	).Scan(&feedback.ID, &feedback.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create feedback: %w", translate(err))
	}
	return nil
}
