package models

import "time"

// EventType is a bookable meeting template exposed for public booking.
type EventType struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	HostID      uint      `gorm:"not null;index" json:"host_id"`
	Title       string    `gorm:"not null" json:"title"`
	Description *string   `json:"description,omitempty"`
	Duration    int       `gorm:"not null;check:duration > 0" json:"duration"` // minutes
	Slug        string    `gorm:"uniqueIndex;not null" json:"slug"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
