package service

import (
	"context"
	"errors"
	"sync"
	"time"

	bookingserrors "staybook/internal/bookings/errors"
	"staybook/internal/bookings/repository"
	"staybook/internal/bookings/validator"
	"staybook/pkg/config"
	apperrors "staybook/pkg/errors"
	"staybook/pkg/model"
	"staybook/pkg/sanitizer"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// ConflictMessage is the exact client-facing message for a lost booking
// race or an already-taken date.
const ConflictMessage = "Selected date already booked. Please choose another date."

// EventSink receives lifecycle notifications after a booking commits.
// Publishing is best-effort; failures are logged, never surfaced.
type EventSink interface {
	BookingCreated(ctx context.Context, booking *model.Booking) error
}

type BookingService interface {
	Create(ctx context.Context, req *model.BookingRequest) (*model.Booking, error)
	List(ctx context.Context, limit int, offset int64) ([]*model.Booking, int64, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	lockRepo  repository.BookingLockRepository
	validator *validator.BookingValidator
	events    EventSink
	cfg       *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	lockRepo repository.BookingLockRepository,
	validator *validator.BookingValidator,
	events EventSink,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		lockRepo:  lockRepo,
		validator: validator,
		events:    events,
		cfg:       cfg,
	}
}

// Create runs the guarded insert: validate, take the pair's advisory
// lock, then check-and-insert inside one transaction. Exactly one of any
// set of concurrent attempts for the same (homestay_id, date) commits;
// the rest observe a conflict.
func (s *bookingService) Create(ctx context.Context, req *model.BookingRequest) (*model.Booking, error) {
	s.applyDefaults(req)
	s.sanitize(req)
	if err := s.validate(req); err != nil {
		return nil, err
	}

	lockID, err := s.acquireDateLock(ctx, req.HomestayID, req.Date)
	if err != nil {
		return nil, err
	}
	defer func() {
		if releaseErr := s.releaseDateLock(ctx, lockID); releaseErr != nil {
			s.cfg.Log.Warn("Failed to release booking lock", "lock_id", lockID, "error", releaseErr)
		}
	}()

	booking := req.ToBooking()

	err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		_, findErr := s.repo.FindByHomestayAndDate(sessCtx, booking.HomestayID, booking.Date)
		if findErr == nil {
			return apperrors.Conflict(ConflictMessage)
		}
		if !errors.Is(findErr, bookingserrors.ErrNotFound) {
			return apperrors.Internal("Failed to check existing bookings", findErr)
		}

		if createErr := s.repo.Create(sessCtx, booking); createErr != nil {
			// The unique index is the second line of defense: a race
			// that slips past the check above still surfaces as the
			// same conflict, never as a raw storage failure.
			if errors.Is(createErr, bookingserrors.ErrDateTaken) {
				return apperrors.Conflict(ConflictMessage)
			}
			return apperrors.Internal("Failed to create booking", createErr)
		}

		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to create booking",
			"homestay_id", req.HomestayID,
			"date", req.Date,
			"error", err,
		)
		return nil, err
	}

	s.cfg.Log.Info("Booking created successfully",
		"id", booking.ID,
		"homestay_id", booking.HomestayID,
		"date", booking.Date,
		"time_slot", booking.TimeSlot,
	)

	s.notifyCreated(ctx, booking)

	return booking, nil
}

func (s *bookingService) List(ctx context.Context, limit int, offset int64) ([]*model.Booking, int64, error) {
	var count int64
	var bookings []*model.Booking
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.Count(ctx)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count bookings", "error", errCount)
			errCount = apperrors.Internal("Failed to count bookings", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		bookings, errFind = s.repo.FindAll(ctx, limit, offset)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list bookings", "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve bookings", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return bookings, count, nil
}

// --- Helpers ---

func (s *bookingService) applyDefaults(req *model.BookingRequest) {
	if req.Guests == nil {
		one := 1
		req.Guests = &one
	}
}

func (s *bookingService) sanitize(req *model.BookingRequest) {
	req.HomestayID = sanitizer.NormalizeIdentifier(req.HomestayID)
	req.Date = sanitizer.NormalizeIdentifier(req.Date)
	req.TimeSlot = sanitizer.NormalizeSlotLabel(req.TimeSlot)
	req.GuestName = sanitizer.NormalizeName(req.GuestName)
	req.Phone = sanitizer.NormalizePhone(req.Phone)
	req.Email = sanitizer.NormalizeIdentifier(req.Email)
	req.Address = sanitizer.NormalizeFreeText(req.Address)
	req.SpecialRequests = sanitizer.NormalizeFreeText(req.SpecialRequests)
}

func (s *bookingService) validate(req *model.BookingRequest) error {
	if err := s.validator.Validate(req); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)

		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return apperrors.Validation(verrs.First().Message, map[string]any{
				"field": verrs.First().Field,
			})
		}
		return apperrors.Validation("Booking validation failed", map[string]any{"error": err.Error()})
	}
	return nil
}

// acquireDateLock serializes concurrent attempts on one pair. Losing the
// acquisition means another request is committing the same pair, which
// the caller reports as the booking conflict.
func (s *bookingService) acquireDateLock(ctx context.Context, homestayID, date string) (string, error) {
	lock := &model.BookingLock{
		ID:        model.LockID(homestayID, date),
		Owner:     newLockOwner(),
		ExpiresAt: time.Now().Add(s.cfg.LockTTL),
	}

	if err := s.lockRepo.Acquire(ctx, lock); err != nil {
		if errors.Is(err, bookingserrors.ErrLockHeld) {
			return "", apperrors.Conflict(ConflictMessage)
		}
		return "", apperrors.Internal("Failed to acquire booking lock", err)
	}

	return lock.ID, nil
}

func newLockOwner() string {
	return uuid.New().String()
}

// releaseDateLock detaches from the request context: a cancelled or
// timed-out request must still free the pair instead of leaving it
// locked until the TTL expires.
func (s *bookingService) releaseDateLock(ctx context.Context, lockID string) error {
	releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	return s.lockRepo.Release(releaseCtx, lockID)
}

func (s *bookingService) notifyCreated(ctx context.Context, booking *model.Booking) {
	if s.events == nil {
		return
	}

	if err := s.events.BookingCreated(ctx, booking); err != nil {
		s.cfg.Log.Warn("Failed to publish booking created event",
			"id", booking.ID,
			"homestay_id", booking.HomestayID,
			"error", err,
		)
	}
}
