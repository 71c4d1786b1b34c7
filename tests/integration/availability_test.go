//go:build integration

package integration

import (
	"testing"

	"github.com/meetcal/scheduling-service/internal/models"
	"github.com/meetcal/scheduling-service/internal/repository"
	"github.com/meetcal/scheduling-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplaceAvailabilityIsFullSwap(t *testing.T) {
	cleanTables()
	host := createTestHost(t)
	svc := service.NewAvailabilityService(repository.NewAvailabilityRepository(testDB))

	first := []models.AvailabilityWindow{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"},
		{DayOfWeek: 2, StartTime: "09:00", EndTime: "12:00"},
	}
	windows, err := svc.ReplaceAvailability(t.Context(), host.ID, first)
	require.NoError(t, err)
	assert.Len(t, windows, 2)

	second := []models.AvailabilityWindow{
		{DayOfWeek: 5, StartTime: "14:00", EndTime: "18:00"},
	}
	windows, err = svc.ReplaceAvailability(t.Context(), host.ID, second)
	require.NoError(t, err)

	// Nothing from the first schedule survives the swap.
	require.Len(t, windows, 1)
	assert.Equal(t, 5, windows[0].DayOfWeek)
	assert.Equal(t, "14:00", windows[0].StartTime)
}

func TestReplaceAvailabilityRejectsInvalidSetWithoutPartialWrite(t *testing.T) {
	cleanTables()
	host := createTestHost(t)
	svc := service.NewAvailabilityService(repository.NewAvailabilityRepository(testDB))

	_, err := svc.ReplaceAvailability(t.Context(), host.ID, []models.AvailabilityWindow{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"},
	})
	require.NoError(t, err)

	_, err = svc.ReplaceAvailability(t.Context(), host.ID, []models.AvailabilityWindow{
		{DayOfWeek: 2, StartTime: "09:00", EndTime: "12:00"},
		{DayOfWeek: 2, StartTime: "15:00", EndTime: "13:00"},
	})
	require.Error(t, err)

	// The old schedule is untouched after the rejected replace.
	availRepo := repository.NewAvailabilityRepository(testDB)
	windows, err := availRepo.ListByHost(t.Context(), host.ID)
	require.NoError(t, err)
	require.Len(t, windows, 1)
	assert.Equal(t, 1, windows[0].DayOfWeek)
}

func TestClearAvailability(t *testing.T) {
	cleanTables()
	host := createTestHost(t)
	svc := service.NewAvailabilityService(repository.NewAvailabilityRepository(testDB))

	_, err := svc.ReplaceAvailability(t.Context(), host.ID, []models.AvailabilityWindow{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00"},
	})
	require.NoError(t, err)

	windows, err := svc.ReplaceAvailability(t.Context(), host.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, windows)
}
