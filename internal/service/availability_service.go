package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/meetcal/scheduling-service/internal/models"
	"github.com/meetcal/scheduling-service/internal/repository"
)

// ErrInvalidWindow marks a rejected availability window so handlers can tell
// caller mistakes apart from storage failures.
var ErrInvalidWindow = errors.New("invalid availability window")

type AvailabilityService interface {
	GetAvailability(ctx context.Context, hostID uint) ([]models.AvailabilityWindow, error)
	ReplaceAvailability(ctx context.Context, hostID uint, windows []models.AvailabilityWindow) ([]models.AvailabilityWindow, error)
}

type availabilityService struct {
	repo repository.AvailabilityRepository
}

func NewAvailabilityService(repo repository.AvailabilityRepository) AvailabilityService {
	return &availabilityService{repo: repo}
}

func (s *availabilityService) GetAvailability(ctx context.Context, hostID uint) ([]models.AvailabilityWindow, error) {
	return s.repo.ListByHost(ctx, hostID)
}

// ReplaceAvailability swaps the host's whole weekly schedule. Windows on the
// same day may overlap or sit out of order; they are stored as given. An
// empty set clears the schedule.
func (s *availabilityService) ReplaceAvailability(ctx context.Context, hostID uint, windows []models.AvailabilityWindow) ([]models.AvailabilityWindow, error) {
	for i, w := range windows {
		if w.DayOfWeek < 0 || w.DayOfWeek > 6 {
			return nil, fmt.Errorf("%w %d: day_of_week must be between 0 and 6", ErrInvalidWindow, i)
		}
		start, err := parseClock(w.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w %d: %v", ErrInvalidWindow, i, err)
		}
		end, err := parseClock(w.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w %d: %v", ErrInvalidWindow, i, err)
		}
		if start >= end {
			return nil, fmt.Errorf("%w %d: end_time must be after start_time", ErrInvalidWindow, i)
		}
	}

	if err := s.repo.ReplaceAll(ctx, hostID, windows); err != nil {
		return nil, err
	}
	return s.repo.ListByHost(ctx, hostID)
}
