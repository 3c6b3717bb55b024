package postgres

import (
	"context"
	"fmt"

	"github.com/hireloop/scheduler-api/internal/model"
)

func (r *availabilityRepository) Create(ctx context.Context, slot *model.AvailabilitySlot) error {
	query := `
		INSERT INTO availability (panel_id, date, start_time, end_time, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	if slot.Status == "" {
		slot.Status = model.SlotStatusAvailable
	}

	err := r.db.QueryRowxContext(ctx, query,
		slot.PanelID,
		slot.Date,
		slot.StartTime,
		slot.EndTime,
		slot.Status,
	).Scan(&slot.ID, &slot.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create availability slot: %w", translate(err))
	}
	return nil
}

func (r *availabilityRepository) ListAvailable(ctx context.Context, panelID int64) ([]*model.AvailabilitySlot, error) {
	query := `
		SELECT id, panel_id, date, start_time, end_time, status, created_at
		FROM availability
		WHERE panel_id = $1 AND status = $2
		ORDER BY date ASC, start_time ASC
	`

	var slots []*model.AvailabilitySlot
	if err := r.db.SelectContext(ctx, &slots, query, panelID, model.SlotStatusAvailable); err != nil {
		return nil, fmt.Errorf("failed to list availability: %w", err)
	}
	return slots, nil
}
