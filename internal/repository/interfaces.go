package repository

import (
	"context"
	"errors"

	"github.com/hireloop/scheduler-api/internal/model"
)

// Storage sentinels. Postgres implementations translate driver errors into
// these so services never inspect driver codes.
var (
	ErrNotFound   = errors.New("not found")
	ErrDuplicate  = errors.New("duplicate key")
	ErrForeignKey = errors.New("referenced row missing")
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Get(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	ListPanels(ctx context.Context) ([]*model.Panel, error)
}

type AvailabilityRepository interface {
	Create(ctx context.Context, slot *model.AvailabilitySlot) error
	ListAvailable(ctx context.Context, panelID int64) ([]*model.AvailabilitySlot, error)
}

type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	Get(ctx context.Context, id int64) (*model.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status model.BookingStatus) error
	ListByPanel(ctx context.Context, panelID int64) ([]*model.Booking, error)
	ListByRecruiter(ctx context.Context, recruiterID int64) ([]*model.Booking, error)
}

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *model.Feedback) error
}
