package scheduling

import (
	"context"
	"errors"

	"github.com/hireloop/scheduler-api/internal/model"
	"github.com/hireloop/scheduler-api/internal/repository"
	apperrors "github.com/hireloop/scheduler-api/pkg/errors"
)

// Service implements the booking/availability/feedback core. Every operation
// takes the caller identity produced by the access-control gate and switches
// on the closed role enum before touching storage.
type Service struct {
	users        repository.UserRepository
	availability repository.AvailabilityRepository
	bookings     repository.BookingRepository
	feedback     repository.FeedbackRepository
}

func NewService(
	users repository.UserRepository,
	availability repository.AvailabilityRepository,
	bookings repository.BookingRepository,
	feedback repository.FeedbackRepository,
) *Service {
	return &Service{
		users:        users,
		availability: availability,
		bookings:     bookings,
		feedback:     feedback,
	}
}

// PublishAvailability appends a slot owned by the caller. Overlapping slots
// are accepted; the caller's calendar is not validated.
func (s *Service) PublishAvailability(ctx context.Context, caller model.Identity, req *model.CreateAvailabilityRequest) (*model.AvailabilitySlot, error) {
	switch caller.Role {
	case model.RolePanel:
	case model.RoleAdmin, model.RoleRecruiter:
		return nil, apperrors.Forbidden("only panels can publish availability")
	default:
		return nil, apperrors.Forbidden("unknown role")
	}

	slot := &model.AvailabilitySlot{
		PanelID:   caller.ID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    model.SlotStatusAvailable,
	}
	if err := s.availability.Create(ctx, slot); err != nil {
		return nil, apperrors.Internal(err)
	}
	return slot, nil
}

// ListAvailability returns available slots ordered by (date, start_time).
// Recruiters must name a panel and may list any; panels may only list their
// own.
func (s *Service) ListAvailability(ctx context.Context, caller model.Identity, panelID *int64) ([]*model.AvailabilitySlot, error) {
	var target int64

	switch caller.Role {
	case model.RoleRecruiter:
		if panelID == nil {
			return nil, apperrors.BadRequest("panelId is required", nil)
		}
		target = *panelID
	case model.RolePanel:
		if panelID != nil && *panelID != caller.ID {
			return nil, apperrors.Forbidden("panels can only view their own availability")
		}
		target = caller.ID
	case model.RoleAdmin:
		return nil, apperrors.Forbidden("admins cannot list availability")
	default:
		return nil, apperrors.Forbidden("unknown role")
	}

	slots, err := s.availability.ListAvailable(ctx, target)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if slots == nil {
		slots = []*model.AvailabilitySlot{}
	}
	return slots, nil
}

// ListPanels returns every panel user, credential excluded.
func (s *Service) ListPanels(ctx context.Context, caller model.Identity) ([]*model.Panel, error) {
	switch caller.Role {
	case model.RoleRecruiter:
	case model.RoleAdmin, model.RolePanel:
		return nil, apperrors.Forbidden("only recruiters can list panels")
	default:
		return nil, apperrors.Forbidden("unknown role")
	}

	panels, err := s.users.ListPanels(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if panels == nil {
		panels = []*model.Panel{}
	}
	return panels, nil
}

// CreateBooking records a booking with status=scheduled against a panel's
// nominal availability. No slot is consumed and no collision with existing
// bookings is checked; concurrent identical bookings both succeed.
func (s *Service) CreateBooking(ctx context.Context, caller model.Identity, req *model.CreateBookingRequest) (*model.Booking, error) {
	switch caller.Role {
	case model.RoleRecruiter:
	case model.RoleAdmin, model.RolePanel:
		return nil, apperrors.Forbidden("only recruiters can create bookings")
	default:
		return nil, apperrors.Forbidden("unknown role")
	}

	panel, err := s.users.Get(ctx, req.PanelID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("panel")
		}
		return nil, apperrors.Internal(err)
	}
	if panel.Role != model.RolePanel {
		return nil, apperrors.BadRequest("panel_id does not reference a panel", nil)
	}

	booking := &model.Booking{
		PanelID:       req.PanelID,
		RecruiterID:   caller.ID,
		CandidateName: req.CandidateName,
		Date:          req.Date,
		Time:          req.Time,
		Status:        model.BookingStatusScheduled,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, apperrors.Internal(err)
	}
	return booking, nil
}

// UpdateBookingStatus mutates a booking's status in place. Only the
// recruiter who created the booking may do so.
func (s *Service) UpdateBookingStatus(ctx context.Context, caller model.Identity, id int64, status string) (*model.Booking, error) {
	booking, err := s.bookings.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("booking")
		}
		return nil, apperrors.Internal(err)
	}

	switch caller.Role {
	case model.RoleRecruiter:
		if booking.RecruiterID != caller.ID {
			return nil, apperrors.Forbidden("booking belongs to another recruiter")
		}
	case model.RoleAdmin, model.RolePanel:
		return nil, apperrors.Forbidden("only the owning recruiter can update a booking")
	default:
		return nil, apperrors.Forbidden("unknown role")
	}

	booking.Status = model.BookingStatus(status)
	if err := s.bookings.UpdateStatus(ctx, id, booking.Status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("booking")
		}
		return nil, apperrors.Internal(err)
	}
	return booking, nil
}

// ListBookings scopes by role: panels see bookings against them, recruiters
// see bookings they created. Ordered by (date, time).
func (s *Service) ListBookings(ctx context.Context, caller model.Identity) ([]*model.Booking, error) {
	var (
		bookings []*model.Booking
		err      error
	)

	switch caller.Role {
	case model.RolePanel:
		bookings, err = s.bookings.ListByPanel(ctx, caller.ID)
	case model.RoleRecruiter:
		bookings, err = s.bookings.ListByRecruiter(ctx, caller.ID)
	case model.RoleAdmin:
		return nil, apperrors.Forbidden("admins cannot list bookings")
	default:
		return nil, apperrors.Forbidden("unknown role")
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if bookings == nil {
		bookings = []*model.Booking{}
	}
	return bookings, nil
}

// SubmitFeedback records post-interview feedback. Booking ownership is not
// verified against the caller; a nonexistent booking surfaces as 404 via the
// foreign key.
func (s *Service) SubmitFeedback(ctx context.Context, caller model.Identity, req *model.CreateFeedbackRequest) (*model.Feedback, error) {
	switch caller.Role {
	case model.RolePanel:
	case model.RoleAdmin, model.RoleRecruiter:
		return nil, apperrors.Forbidden("only panels can submit feedback")
	default:
		return nil, apperrors.Forbidden("unknown role")
	}

	feedback := &model.Feedback{
		BookingID: req.BookingID,
		Rating:    req.Rating,
		Comments:  req.Comments,
	}
	if err := s.feedback.Create(ctx, feedback); err != nil {
		if errors.Is(err, repository.ErrForeignKey) {
			return nil, apperrors.NotFound("booking")
		}
		return nil, apperrors.Internal(err)
	}
	return feedback, nil
}
