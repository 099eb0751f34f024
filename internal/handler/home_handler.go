package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"taxiservice/internal/service"
)

// HomeHandler serves the index page and health check.
type HomeHandler struct {
	stats service.StatsService
	ping  func(ctx context.Context) error
}

// NewHomeHandler creates a new home handler. ping reports database health.
func NewHomeHandler(stats service.StatsService, ping func(ctx context.Context) error) *HomeHandler {
	return &HomeHandler{stats: stats, ping: ping}
}

// Index godoc
// @Summary Fleet overview
// @Tags home
// @Produce json,html
// @Security SessionCookie
// @Success 200 {object} service.Overview
// @Failure 401 {object} errors.ErrorResponse
// @Router / [get]
func (h *HomeHandler) Index(c echo.Context) error {
	var driverID uint
	if d := CurrentDriver(c); d != nil {
		driverID = d.ID
	}
	overview, err := h.stats.Overview(c.Request().Context(), driverID)
	if err != nil {
		return err
	}
	return respond(c, "index", echo.Map{"overview": overview}, overview)
}

// Health godoc
// @Summary Health check
// @Tags home
// @Produce plain
// @Success 200 {string} string "ok"
// @Failure 503 {object} errors.ErrorResponse
// @Router /healthz [get]
func (h *HomeHandler) Health(c echo.Context) error {
	if err := h.ping(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "database unavailable")
	}
	return c.String(http.StatusOK, "ok")
}
