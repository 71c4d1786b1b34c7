package dto

import "time"

type CreateBookingRequest struct {
	GuestName  string    `json:"guest_name" validate:"required"`
	GuestEmail string    `json:"guest_email" validate:"required,email"`
	StartTime  time.Time `json:"start_time" validate:"required"`
}

type CreateEventTypeRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
	Duration    int     `json:"duration" validate:"required,gt=0"`
	Slug        string  `json:"slug" validate:"required"`
}

type UpdateEventTypeRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Duration    *int    `json:"duration" validate:"omitempty,gt=0"`
	Slug        *string `json:"slug"`
	IsActive    *bool   `json:"is_active"`
}

type AvailabilityWindowRequest struct {
	DayOfWeek int    `json:"day_of_week" validate:"gte=0,lte=6"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

type ReplaceAvailabilityRequest struct {
	Timezone     string                      `json:"timezone"`
	Availability []AvailabilityWindowRequest `json:"availability" validate:"dive"`
}

type UpdateHostRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Timezone *string `json:"timezone"`
}
