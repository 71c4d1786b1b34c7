package models

import "time"

// AvailabilityWindow is a recurring weekly range during which the host accepts
// bookings. Times are naive wall-clock strings ("HH:MM" or "HH:MM:SS") in the
// host's reference time zone. Windows for the same day may overlap; they are
// stored as given, never merged.
type AvailabilityWindow struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	HostID    uint      `gorm:"not null;index" json:"host_id"`
	DayOfWeek int       `gorm:"not null" json:"day_of_week"` // 0=Sunday .. 6=Saturday
	StartTime string    `gorm:"type:varchar(8);not null" json:"start_time"`
	EndTime   string    `gorm:"type:varchar(8);not null" json:"end_time"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
