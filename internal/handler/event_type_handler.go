package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/meetcal/scheduling-service/internal/dto"
	"github.com/meetcal/scheduling-service/internal/models"
	"github.com/meetcal/scheduling-service/internal/service"
)

type EventTypeHandler struct {
	svc     service.EventTypeService
	hostSvc service.HostService
}

func NewEventTypeHandler(svc service.EventTypeService, hostSvc service.HostService) *EventTypeHandler {
	return &EventTypeHandler{svc: svc, hostSvc: hostSvc}
}

func (h *EventTypeHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1/event-types")
	g.POST("", h.CreateEventType)
	g.GET("", h.ListEventTypes)
	g.GET("/:slug", h.GetEventType)
	g.PATCH("/:id", h.UpdateEventType)
	g.DELETE("/:id", h.DeleteEventType)
}

func (h *EventTypeHandler) CreateEventType(c echo.Context) error {
	var req dto.CreateEventTypeRequest
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

	eventType := &models.EventType{
		HostID:      host.ID,
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
		Slug:        req.Slug,
		IsActive:    true,
	}

	if err := h.svc.CreateEventType(c.Request().Context(), eventType); err != nil {
		if errors.Is(err, service.ErrSlugTaken) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, dto.ToEventTypeResponse(eventType))
}

func (h *EventTypeHandler) ListEventTypes(c echo.Context) error {
	host, err := h.hostSvc.CurrentHost(c.Request().Context())
	if err != nil {
		if errors.Is(err, service.ErrHostNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	eventTypes, err := h.svc.ListEventTypes(c.Request().Context(), host.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.EventTypeResponse, len(eventTypes))
	for i, e := range eventTypes {
		resp[i] = dto.ToEventTypeResponse(&e)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *EventTypeHandler) GetEventType(c echo.Context) error {
	eventType, err := h.svc.GetActiveBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrEventTypeNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToEventTypeResponse(eventType))
}

func (h *EventTypeHandler) UpdateEventType(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid event type id")
	}

	var req dto.UpdateEventTypeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	eventType, err := h.svc.UpdateEventType(c.Request().Context(), uint(id), service.EventTypeUpdate{
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
		Slug:        req.Slug,
		IsActive:    req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventTypeNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrSlugTaken):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, dto.ToEventTypeResponse(eventType))
}

func (h *EventTypeHandler) DeleteEventType(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid event type id")
	}

	if err := h.svc.DeleteEventType(c.Request().Context(), uint(id)); err != nil {
		if errors.Is(err, service.ErrEventTypeNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "event type deleted"})
}
