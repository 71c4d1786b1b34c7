package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/meetcal/scheduling-service/internal/dto"
	"github.com/meetcal/scheduling-service/internal/service"
)

type HostHandler struct {
	svc service.HostService
}

func NewHostHandler(svc service.HostService) *HostHandler {
	return &HostHandler{svc: svc}
}

func (h *HostHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/v1/me", h.GetHost)
	e.PUT("/api/v1/me", h.UpdateHost)
}

func (h *HostHandler) GetHost(c echo.Context) error {
	host, err := h.svc.CurrentHost(c.Request().Context())
	if err != nil {
		if errors.Is(err, service.ErrHostNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToHostResponse(host))
}

func (h *HostHandler) UpdateHost(c echo.Context) error {
	var req dto.UpdateHostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	host, err := h.svc.UpdateHost(c.Request().Context(), service.HostUpdate{
		Name:     req.Name,
		Email:    req.Email,
		Timezone: req.Timezone,
	})
	if err != nil {
		if errors.Is(err, service.ErrHostNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToHostResponse(host))
}
