package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"
)

// Slot is a candidate bookable interval of exactly the event type's duration.
type Slot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// AvailableSlots enumerates the open slots of an event type on a calendar
// date. Each availability window for that weekday is walked from its start in
// fixed duration-length steps; a candidate survives if it fits entirely inside
// the window and does not overlap a confirmed booking. Bookings are compared
// half-open, so a slot ending exactly when another starts is not a conflict.
func (s *bookingService) AvailableSlots(ctx context.Context, slug, date string) ([]Slot, error) {
	if date == "" {
		return nil, ErrDateRequired
	}
	day, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return nil, ErrInvalidDate
	}

	eventType, err := s.eventTypeRepo.FindActiveBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventTypeNotFound
		}
		return nil, err
	}
	duration := time.Duration(eventType.Duration) * time.Minute
	// DTO validation keeps duration positive, but a bad row must not hang
	// the window walk below.
	if duration <= 0 {
		return nil, fmt.Errorf("event type %q has non-positive duration %d", eventType.Slug, eventType.Duration)
	}

	windows, err := s.availRepo.ListByHostAndDay(ctx, eventType.HostID, int(day.Weekday()))
	if err != nil {
		return nil, err
	}
	if len(windows) == 0 {
		return []Slot{}, nil
	}

	// All confirmed bookings whose start falls on this date. Their intervals
	// use the event type's duration; bookings are self-consistent with it
	// since admission derived end_time from the same value.
	dayEnd := day.Add(24*time.Hour - time.Millisecond)
	bookings, err := s.bookingRepo.ListConfirmedInRange(ctx, eventType.ID, day, dayEnd)
	if err != nil {
		return nil, err
	}
	booked := make([]Slot, len(bookings))
	for i, b := range bookings {
		booked[i] = Slot{Start: b.StartTime, End: b.StartTime.Add(duration)}
	}

	slots := []Slot{}
	for _, w := range windows {
		startClock, err := parseClock(w.StartTime)
		if err != nil {
			return nil, fmt.Errorf("availability window %d: %w", w.ID, err)
		}
		endClock, err := parseClock(w.EndTime)
		if err != nil {
			return nil, fmt.Errorf("availability window %d: %w", w.ID, err)
		}

		windowEnd := day.Add(endClock)
		for t := day.Add(startClock); !t.Add(duration).After(windowEnd); t = t.Add(duration) {
			candidate := Slot{Start: t, End: t.Add(duration)}
			if overlapsAny(candidate, booked) {
				continue
			}
			slots = append(slots, candidate)
		}
	}

	// Windows may arrive in any order and may overlap; return one global
	// chronological sequence.
	sort.Slice(slots, func(i, j int) bool { return slots[i].Start.Before(slots[j].Start) })

	return slots, nil
}

func overlapsAny(candidate Slot, booked []Slot) bool {
	for _, b := range booked {
		if candidate.Start.Before(b.End) && candidate.End.After(b.Start) {
			return true
		}
	}
	return false
}

// parseClock converts a wall-clock string ("HH:MM" or "HH:MM:SS") to an
// offset from midnight.
func parseClock(s string) (time.Duration, error) {
	layout := "15:04"
	if len(s) > 5 {
		layout = "15:04:05"
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second, nil
}
