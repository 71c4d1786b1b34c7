package service

import (
	"context"
	"testing"

	"github.com/meetcal/scheduling-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplaceAvailability_Success(t *testing.T) {
	var stored []models.AvailabilityWindow
	repo := &mockAvailabilityRepo{
		replaceAllFn: func(ctx context.Context, hostID uint, windows []models.AvailabilityWindow) error {
			assert.Equal(t, uint(1), hostID)
			stored = windows
			return nil
		},
		listByHostFn: func(ctx context.Context, hostID uint) ([]models.AvailabilityWindow, error) {
			return stored, nil
		},
	}
	svc := NewAvailabilityService(repo)

	windows := []models.AvailabilityWindow{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"},
		{DayOfWeek: 1, StartTime: "13:00", EndTime: "17:00"},
		{DayOfWeek: 3, StartTime: "10:00:00", EndTime: "16:00:00"},
	}
	updated, err := svc.ReplaceAvailability(context.Background(), 1, windows)

	require.NoError(t, err)
	assert.Len(t, updated, 3)
}

func TestReplaceAvailability_OverlappingWindowsTolerated(t *testing.T) {
	repo := &mockAvailabilityRepo{
		replaceAllFn: func(ctx context.Context, hostID uint, windows []models.AvailabilityWindow) error {
			assert.Len(t, windows, 2, "overlapping windows are stored as given, not merged")
			return nil
		},
		listByHostFn: func(ctx context.Context, hostID uint) ([]models.AvailabilityWindow, error) {
			return nil, nil
		},
	}
	svc := NewAvailabilityService(repo)

	_, err := svc.ReplaceAvailability(context.Background(), 1, []models.AvailabilityWindow{
		{DayOfWeek: 2, StartTime: "09:00", EndTime: "13:00"},
		{DayOfWeek: 2, StartTime: "11:00", EndTime: "15:00"},
	})

	require.NoError(t, err)
}

func TestReplaceAvailability_EmptyClearsSchedule(t *testing.T) {
	called := false
	repo := &mockAvailabilityRepo{
		replaceAllFn: func(ctx context.Context, hostID uint, windows []models.AvailabilityWindow) error {
			called = true
			assert.Empty(t, windows)
			return nil
		},
		listByHostFn: func(ctx context.Context, hostID uint) ([]models.AvailabilityWindow, error) {
			return nil, nil
		},
	}
	svc := NewAvailabilityService(repo)

	updated, err := svc.ReplaceAvailability(context.Background(), 1, nil)

	require.NoError(t, err)
	assert.True(t, called)
	assert.Empty(t, updated)
}

func TestReplaceAvailability_Invalid(t *testing.T) {
	repo := &mockAvailabilityRepo{
		replaceAllFn: func(ctx context.Context, hostID uint, windows []models.AvailabilityWindow) error {
			t.Fatal("invalid windows must not reach the repository")
			return nil
		},
	}
	svc := NewAvailabilityService(repo)

	cases := []struct {
		name   string
		window models.AvailabilityWindow
	}{
		{"day out of range", models.AvailabilityWindow{DayOfWeek: 7, StartTime: "09:00", EndTime: "10:00"}},
		{"start after end", models.AvailabilityWindow{DayOfWeek: 1, StartTime: "12:00", EndTime: "09:00"}},
		{"start equals end", models.AvailabilityWindow{DayOfWeek: 1, StartTime: "09:00", EndTime: "09:00"}},
		{"garbage clock", models.AvailabilityWindow{DayOfWeek: 1, StartTime: "morning", EndTime: "10:00"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.ReplaceAvailability(context.Background(), 1, []models.AvailabilityWindow{tc.window})
			assert.ErrorIs(t, err, ErrInvalidWindow)
		})
	}
}
