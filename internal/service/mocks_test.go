package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/meetcal/scheduling-service/internal/models"
	"gorm.io/gorm"
)

// --- Mock EventTypeRepository ---

type mockEventTypeRepo struct {
	createFn           func(ctx context.Context, eventType *models.EventType) error
	findByIDFn         func(ctx context.Context, id uint) (*models.EventType, error)
	findActiveBySlugFn func(ctx context.Context, slug string) (*models.EventType, error)
	findAllByHostFn    func(ctx context.Context, hostID uint) ([]models.EventType, error)
	updateFn           func(ctx context.Context, eventType *models.EventType) error
	deleteFn           func(ctx context.Context, id uint) error
}

func (m *mockEventTypeRepo) Create(ctx context.Context, eventType *models.EventType) error {
	return m.createFn(ctx, eventType)
}
func (m *mockEventTypeRepo) FindByID(ctx context.Context, id uint) (*models.EventType, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockEventTypeRepo) FindActiveBySlug(ctx context.Context, slug string) (*models.EventType, error) {
	return m.findActiveBySlugFn(ctx, slug)
}
func (m *mockEventTypeRepo) FindAllByHost(ctx context.Context, hostID uint) ([]models.EventType, error) {
	return m.findAllByHostFn(ctx, hostID)
}
func (m *mockEventTypeRepo) Update(ctx context.Context, eventType *models.EventType) error {
	return m.updateFn(ctx, eventType)
}
func (m *mockEventTypeRepo) Delete(ctx context.Context, id uint) error {
	return m.deleteFn(ctx, id)
}

// --- Mock AvailabilityRepository ---

type mockAvailabilityRepo struct {
	listByHostFn       func(ctx context.Context, hostID uint) ([]models.AvailabilityWindow, error)
	listByHostAndDayFn func(ctx context.Context, hostID uint, dayOfWeek int) ([]models.AvailabilityWindow, error)
	replaceAllFn       func(ctx context.Context, hostID uint, windows []models.AvailabilityWindow) error
}

func (m *mockAvailabilityRepo) ListByHost(ctx context.Context, hostID uint) ([]models.AvailabilityWindow, error) {
	return m.listByHostFn(ctx, hostID)
}
func (m *mockAvailabilityRepo) ListByHostAndDay(ctx context.Context, hostID uint, dayOfWeek int) ([]models.AvailabilityWindow, error) {
	return m.listByHostAndDayFn(ctx, hostID, dayOfWeek)
}
func (m *mockAvailabilityRepo) ReplaceAll(ctx context.Context, hostID uint, windows []models.AvailabilityWindow) error {
	return m.replaceAllFn(ctx, hostID, windows)
}

// --- Mock BookingRepository ---

type mockBookingRepo struct {
	insertFn       func(ctx context.Context, booking *models.Booking) error
	findByIDFn     func(ctx context.Context, id uint) (*models.Booking, error)
	findAllFn      func(ctx context.Context, scope models.BookingScope, now time.Time) ([]models.Booking, error)
	listInRangeFn  func(ctx context.Context, eventTypeID uint, from, to time.Time) ([]models.Booking, error)
	updateStatusFn func(ctx context.Context, id uint, status models.BookingStatus) (*models.Booking, error)
}

func (m *mockBookingRepo) InsertConfirmed(ctx context.Context, booking *models.Booking) error {
	return m.insertFn(ctx, booking)
}
func (m *mockBookingRepo) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockBookingRepo) FindAll(ctx context.Context, scope models.BookingScope, now time.Time) ([]models.Booking, error) {
	return m.findAllFn(ctx, scope, now)
}
func (m *mockBookingRepo) ListConfirmedInRange(ctx context.Context, eventTypeID uint, from, to time.Time) ([]models.Booking, error) {
	if m.listInRangeFn != nil {
		return m.listInRangeFn(ctx, eventTypeID, from, to)
	}
	return nil, nil
}
func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id uint, status models.BookingStatus) (*models.Booking, error) {
	return m.updateStatusFn(ctx, id, status)
}

// memoryBookingRepo keeps confirmed bookings in a mutex-guarded map keyed by
// (event type, start time), mimicking the partial unique index. Used for the
// concurrent-admission test.
type memoryBookingRepo struct {
	mu     sync.Mutex
	nextID uint
	slots  map[string]*models.Booking
}

func newMemoryBookingRepo() *memoryBookingRepo {
	return &memoryBookingRepo{slots: make(map[string]*models.Booking)}
}

func slotKey(eventTypeID uint, start time.Time) string {
	return fmt.Sprintf("%d@%s", eventTypeID, start.UTC().Format(time.RFC3339))
}

func (m *memoryBookingRepo) InsertConfirmed(ctx context.Context, booking *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := slotKey(booking.EventTypeID, booking.StartTime)
	if existing, ok := m.slots[key]; ok && existing.Status == models.StatusConfirmed {
		return gorm.ErrDuplicatedKey
	}
	m.nextID++
	booking.ID = m.nextID
	booking.Status = models.StatusConfirmed
	m.slots[key] = booking
	return nil
}

func (m *memoryBookingRepo) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.slots {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memoryBookingRepo) FindAll(ctx context.Context, scope models.BookingScope, now time.Time) ([]models.Booking, error) {
	return nil, nil
}

func (m *memoryBookingRepo) ListConfirmedInRange(ctx context.Context, eventTypeID uint, from, to time.Time) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Booking
	for _, b := range m.slots {
		if b.EventTypeID == eventTypeID && b.Status == models.StatusConfirmed &&
			!b.StartTime.Before(from) && !b.StartTime.After(to) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (m *memoryBookingRepo) UpdateStatus(ctx context.Context, id uint, status models.BookingStatus) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.slots {
		if b.ID == id {
			b.Status = status
			return b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
