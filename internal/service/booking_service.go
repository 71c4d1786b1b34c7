package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/meetcal/scheduling-service/internal/models"
	"github.com/meetcal/scheduling-service/internal/repository"
	"github.com/meetcal/scheduling-service/pkg/rabbitmq"
	"gorm.io/gorm"
)

var (
	ErrEventTypeNotFound = errors.New("event type not found")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrSlotTaken         = errors.New("this time slot is already booked")
	ErrGuestRequired     = errors.New("guest name and email are required")
	ErrDateRequired      = errors.New("date parameter is required")
	ErrInvalidDate       = errors.New("date must be in YYYY-MM-DD format")
)

type BookingService interface {
	AvailableSlots(ctx context.Context, slug, date string) ([]Slot, error)
	CreateBooking(ctx context.Context, slug, guestName, guestEmail string, startTime time.Time) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID uint) (*models.Booking, error)
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)
	ListBookings(ctx context.Context, scope models.BookingScope) ([]models.Booking, error)
}

type bookingService struct {
	bookingRepo   repository.BookingRepository
	eventTypeRepo repository.EventTypeRepository
	availRepo     repository.AvailabilityRepository
	publisher     *rabbitmq.Publisher
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	eventTypeRepo repository.EventTypeRepository,
	availRepo repository.AvailabilityRepository,
	publisher *rabbitmq.Publisher,
) BookingService {
	return &bookingService{
		bookingRepo:   bookingRepo,
		eventTypeRepo: eventTypeRepo,
		availRepo:     availRepo,
		publisher:     publisher,
	}
}

// CreateBooking admits a booking for the requested start time. The only guard
// against a concurrent request taking the same slot is the storage-level
// unique index: no read-then-check here, the insert either lands or reports a
// duplicate. The start time is not checked against availability windows; the
// client is trusted to have picked a slot from AvailableSlots.
func (s *bookingService) CreateBooking(ctx context.Context, slug, guestName, guestEmail string, startTime time.Time) (*models.Booking, error) {
	guestName = strings.TrimSpace(guestName)
	guestEmail = strings.ToLower(strings.TrimSpace(guestEmail))
	if guestName == "" || guestEmail == "" {
		return nil, ErrGuestRequired
	}

	eventType, err := s.eventTypeRepo.FindActiveBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventTypeNotFound
		}
		return nil, err
	}

	booking := &models.Booking{
		Reference:   uuid.NewString(),
		EventTypeID: eventType.ID,
		GuestName:   guestName,
		GuestEmail:  guestEmail,
		StartTime:   startTime,
		EndTime:     startTime.Add(time.Duration(eventType.Duration) * time.Minute),
		Status:      models.StatusConfirmed,
	}

	if err := s.bookingRepo.InsertConfirmed(ctx, booking); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	booking.EventType = eventType

	if s.publisher != nil {
		_ = s.publisher.Publish(rabbitmq.RouteBookingCreated, booking)
	}

	return booking, nil
}

// CancelBooking sets status to cancelled and returns the booking. A second
// call returns the same cancelled record instead of erroring; the slot stops
// appearing in conflict checks as soon as the row leaves the partial index.
func (s *bookingService) CancelBooking(ctx context.Context, bookingID uint) (*models.Booking, error) {
	booking, err := s.bookingRepo.UpdateStatus(ctx, bookingID, models.StatusCancelled)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish(rabbitmq.RouteBookingCancelled, booking)
	}

	return booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context, scope models.BookingScope) ([]models.Booking, error) {
	return s.bookingRepo.FindAll(ctx, scope, time.Now())
}
