package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/meetcal/scheduling-service/internal/dto"
	"github.com/meetcal/scheduling-service/internal/models"
	"github.com/meetcal/scheduling-service/internal/service"
)

type AvailabilityHandler struct {
	svc     service.AvailabilityService
	hostSvc service.HostService
}

func NewAvailabilityHandler(svc service.AvailabilityService, hostSvc service.HostService) *AvailabilityHandler {
	return &AvailabilityHandler{svc: svc, hostSvc: hostSvc}
}

func (h *AvailabilityHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/v1/availability", h.GetAvailability)
	e.PUT("/api/v1/availability", h.ReplaceAvailability)
}

func (h *AvailabilityHandler) GetAvailability(c echo.Context) error {
	host, err := h.hostSvc.CurrentHost(c.Request().Context())
	if err != nil {
		if errors.Is(err, service.ErrHostNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	windows, err := h.svc.GetAvailability(c.Request().Context(), host.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToAvailabilityResponse(host.Timezone, windows))
}

func (h *AvailabilityHandler) ReplaceAvailability(c echo.Context) error {
	var req dto.ReplaceAvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	host, err := h.hostSvc.CurrentHost(c.Request().Context())
	if err != nil {
		if errors.Is(err, service.ErrHostNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if req.Timezone != "" && req.Timezone != host.Timezone {
		host, err = h.hostSvc.UpdateHost(c.Request().Context(), service.HostUpdate{Timezone: &req.Timezone})
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	windows := make([]models.AvailabilityWindow, len(req.Availability))
	for i, w := range req.Availability {
		windows[i] = models.AvailabilityWindow{
			DayOfWeek: w.DayOfWeek,
			StartTime: w.StartTime,
			EndTime:   w.EndTime,
		}
	}

	updated, err := h.svc.ReplaceAvailability(c.Request().Context(), host.ID, windows)
	if err != nil {
		if errors.Is(err, service.ErrInvalidWindow) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToAvailabilityResponse(host.Timezone, updated))
}
