package models

import "time"

type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// BookingScope filters booking listings.
type BookingScope string

const (
	ScopeAll      BookingScope = ""
	ScopeUpcoming BookingScope = "upcoming"
	ScopePast     BookingScope = "past"
)

// Booking reserves one slot of an event type. A partial unique index on
// (event_type_id, start_time) WHERE status = 'confirmed' is the only guard
// against double booking; see pkg/database.
type Booking struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	Reference   string        `gorm:"uniqueIndex;not null" json:"reference"`
	EventTypeID uint          `gorm:"not null;index" json:"event_type_id"`
	GuestName   string        `gorm:"not null" json:"guest_name"`
	GuestEmail  string        `gorm:"not null;index" json:"guest_email"`
	StartTime   time.Time     `gorm:"not null;index" json:"start_time"`
	EndTime     time.Time     `gorm:"not null" json:"end_time"`
	Status      BookingStatus `gorm:"type:varchar(20);not null;default:'confirmed'" json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	EventType *EventType `gorm:"foreignKey:EventTypeID" json:"event_type,omitempty"`
}
