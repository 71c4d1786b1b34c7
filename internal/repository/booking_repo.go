package repository

import (
	"context"
	"time"

	"github.com/meetcal/scheduling-service/internal/models"
	"gorm.io/gorm"
)

type BookingRepository interface {
	// InsertConfirmed persists a confirmed booking. The partial unique index on
	// (event_type_id, start_time) makes this the atomic admission step: a
	// duplicate slot comes back as gorm.ErrDuplicatedKey.
	InsertConfirmed(ctx context.Context, booking *models.Booking) error
	FindByID(ctx context.Context, id uint) (*models.Booking, error)
	FindAll(ctx context.Context, scope models.BookingScope, now time.Time) ([]models.Booking, error)
	ListConfirmedInRange(ctx context.Context, eventTypeID uint, from, to time.Time) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id uint, status models.BookingStatus) (*models.Booking, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) InsertConfirmed(ctx context.Context, booking *models.Booking) error {
	booking.Status = models.StatusConfirmed
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).Preload("EventType").First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindAll(ctx context.Context, scope models.BookingScope, now time.Time) ([]models.Booking, error) {
	q := r.db.WithContext(ctx).Preload("EventType")

	switch scope {
	case models.ScopeUpcoming:
		q = q.Where("start_time > ? AND status = ?", now, models.StatusConfirmed)
	case models.ScopePast:
		q = q.Where("start_time < ? OR status = ?", now, models.StatusCancelled)
	}

	var bookings []models.Booking
	if err := q.Order("start_time DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) ListConfirmedInRange(ctx context.Context, eventTypeID uint, from, to time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Where("event_type_id = ? AND status = ? AND start_time >= ? AND start_time <= ?",
			eventTypeID, models.StatusConfirmed, from, to).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// UpdateStatus sets the status unconditionally and returns the updated row.
// Cancelling an already-cancelled booking is a no-op that still succeeds.
func (r *bookingRepository) UpdateStatus(ctx context.Context, id uint, status models.BookingStatus) (*models.Booking, error) {
	booking, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status != status {
		if err := r.db.WithContext(ctx).
			Model(&models.Booking{}).
			Where("id = ?", id).
			Update("status", status).Error; err != nil {
			return nil, err
		}
		booking.Status = status
	}
	return booking, nil
}
