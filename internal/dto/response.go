package dto

import (
	"time"

	"github.com/meetcal/scheduling-service/internal/models"
	"github.com/meetcal/scheduling-service/internal/service"
)

type SlotResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type AvailableSlotsResponse struct {
	AvailableSlots []SlotResponse `json:"available_slots"`
}

// BookingResponse denormalizes the event type for immediate display.
type BookingResponse struct {
	ID          uint                 `json:"id"`
	Reference   string               `json:"reference"`
	EventTypeID uint                 `json:"event_type_id"`
	EventTitle  string               `json:"event_title,omitempty"`
	EventSlug   string               `json:"event_slug,omitempty"`
	Duration    int                  `json:"duration,omitempty"`
	GuestName   string               `json:"guest_name"`
	GuestEmail  string               `json:"guest_email"`
	StartTime   time.Time            `json:"start_time"`
	EndTime     time.Time            `json:"end_time"`
	Status      models.BookingStatus `json:"status"`
	CreatedAt   time.Time            `json:"created_at"`
}

type EventTypeResponse struct {
	ID          uint      `json:"id"`
	HostID      uint      `json:"host_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Duration    int       `json:"duration"`
	Slug        string    `json:"slug"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AvailabilityWindowResponse struct {
	ID        uint      `json:"id"`
	HostID    uint      `json:"host_id"`
	DayOfWeek int       `json:"day_of_week"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	CreatedAt time.Time `json:"created_at"`
}

type AvailabilityResponse struct {
	Timezone     string                       `json:"timezone"`
	Availability []AvailabilityWindowResponse `json:"availability"`
}

type HostResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Timezone  string    `json:"timezone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToSlotResponses(slots []service.Slot) []SlotResponse {
	resp := make([]SlotResponse, len(slots))
	for i, s := range slots {
		resp[i] = SlotResponse{Start: s.Start, End: s.End}
	}
	return resp
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	resp := BookingResponse{
		ID:          b.ID,
		Reference:   b.Reference,
		EventTypeID: b.EventTypeID,
		GuestName:   b.GuestName,
		GuestEmail:  b.GuestEmail,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		Status:      b.Status,
		CreatedAt:   b.CreatedAt,
	}
	if b.EventType != nil {
		resp.EventTitle = b.EventType.Title
		resp.EventSlug = b.EventType.Slug
		resp.Duration = b.EventType.Duration
	}
	return resp
}

func ToEventTypeResponse(e *models.EventType) EventTypeResponse {
	return EventTypeResponse{
		ID:          e.ID,
		HostID:      e.HostID,
		Title:       e.Title,
		Description: e.Description,
		Duration:    e.Duration,
		Slug:        e.Slug,
		IsActive:    e.IsActive,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToAvailabilityResponse(timezone string, windows []models.AvailabilityWindow) AvailabilityResponse {
	resp := AvailabilityResponse{
		Timezone:     timezone,
		Availability: make([]AvailabilityWindowResponse, len(windows)),
	}
	for i, w := range windows {
		resp.Availability[i] = AvailabilityWindowResponse{
			ID:        w.ID,
			HostID:    w.HostID,
			DayOfWeek: w.DayOfWeek,
			StartTime: w.StartTime,
			EndTime:   w.EndTime,
			CreatedAt: w.CreatedAt,
		}
	}
	return resp
}

func ToHostResponse(h *models.Host) HostResponse {
	return HostResponse{
		ID:        h.ID,
		Name:      h.Name,
		Email:     h.Email,
		Timezone:  h.Timezone,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}
