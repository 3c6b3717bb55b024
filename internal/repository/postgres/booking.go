package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hireloop/scheduler-api/internal/model"
	"github.com/hireloop/scheduler-api/internal/repository"
)

func (r *bookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	// No uniqueness on (panel_id, date, time): concurrent bookings for the
	// same slot both insert. First write wins is the documented behavior.
	query := `
		INSERT INTO bookings (panel_id, recruiter_id, candidate_name, date, time, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	if booking.Status == "" {
		booking.Status = model.BookingStatusScheduled
	}

	err := r.db.QueryRowxContext(ctx, query,
		booking.PanelID,
		booking.RecruiterID,
		booking.CandidateName,
		booking.Date,
		booking.Time,
		booking.Status,
	).Scan(&booking.ID, &booking.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", translate(err))
	}
	return nil
}

func (r *bookingRepository) Get(ctx context.Context, id int64) (*model.Booking, error) {
	query := `
		SELECT id, panel_id, recruiter_id, candidate_name, date, time, status, created_at
		FROM bookings
		WHERE id = $1
	`

	var booking model.Booking
	if err := r.db.GetContext(ctx, &booking, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return &booking, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id int64, status model.BookingStatus) error {
	query := `
		UPDATE bookings
		SET status = $1
		WHERE id = $2
	`

	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *bookingRepository) ListByPanel(ctx context.Context, panelID int64) ([]*model.Booking, error) {
	return r.list(ctx, "panel_id", panelID)
}

func (r *bookingRepository) ListByRecruiter(ctx context.Context, recruiterID int64) ([]*model.Booking, error) {
	return r.list(ctx, "recruiter_id", recruiterID)
}

func (r *bookingRepository) list(ctx context.Context, column string, id int64) ([]*model.Booking, error) {
	query := fmt.Sprintf(`
		SELECT id, panel_id, recruiter_id, candidate_name, date, time, status, created_at
		FROM bookings
		WHERE %s = $1
		ORDER BY date ASC, time ASC
	`, column)

	var bookings []*model.Booking
	if err := r.db.SelectContext(ctx, &bookings, query, id); err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}
