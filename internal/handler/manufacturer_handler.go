package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"taxiservice/internal/form"
	"taxiservice/internal/service"
)

const manufacturersPath = "/manufacturers"

// ManufacturerHandler handles manufacturer pages.
type ManufacturerHandler struct {
	svc service.ManufacturerService
}

// NewManufacturerHandler creates a new manufacturer handler.
func NewManufacturerHandler(svc service.ManufacturerService) *ManufacturerHandler {
	return &ManufacturerHandler{svc: svc}
}

// List godoc
// @Summary List manufacturers
// @Tags manufacturers
// @Produce json,html
// @Security SessionCookie
// @Param name query string false "Substring of the manufacturer name"
// @Success 200 {array} model.Manufacturer
// @Failure 401 {object} errors.ErrorResponse
// @Router /manufacturers [get]
func (h *ManufacturerHandler) List(c echo.Context) error {
	query := c.QueryParam("name")
	manufacturers, err := h.svc.List(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return respond(c, "manufacturer_list", echo.Map{
		"manufacturers": manufacturers,
		"query":         query,
	}, manufacturers)
}

func (h *ManufacturerHandler) CreatePage(c echo.Context) error {
	return render(c, http.StatusOK, "manufacturer_form", echo.Map{"form": form.ManufacturerForm{}})
}

// Create godoc
// @Summary Create manufacturer
// @Tags manufacturers
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Security SessionCookie
// @Param request body form.ManufacturerForm true "Manufacturer"
// @Success 201 {object} model.Manufacturer
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /manufacturers/create [post]
func (h *ManufacturerHandler) Create(c echo.Context) error {
	var f form.ManufacturerForm
	if err := c.Bind(&f); err != nil {
		return badRequest()
	}

	data := echo.Map{"form": f}
	if err := c.Validate(&f); err != nil {
		return formError(c, err, "manufacturer_form", data)
	}
	m, err := h.svc.Create(c.Request().Context(), f)
	if err != nil {
		return formError(c, err, "manufacturer_form", data)
	}
	return created(c, http.StatusCreated, manufacturersPath, m)
}

func (h *ManufacturerHandler) UpdatePage(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	m, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return render(c, http.StatusOK, "manufacturer_form", echo.Map{
		"object": m,
		"form":   form.ManufacturerForm{Name: m.Name, Country: m.Country},
	})
}

// Update godoc
// @Summary Update manufacturer
// @Tags manufacturers
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Security SessionCookie
// @Param id path int true "Manufacturer ID"
// @Param request body form.ManufacturerForm true "Manufacturer"
// @Success 200 {object} model.Manufacturer
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /manufacturers/{id}/update [post]
func (h *ManufacturerHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var f form.ManufacturerForm
	if err := c.Bind(&f); err != nil {
		return badRequest()
	}

	data := echo.Map{"object": id, "form": f}
	if err := c.Validate(&f); err != nil {
		return formError(c, err, "manufacturer_form", data)
	}
	m, err := h.svc.Update(c.Request().Context(), id, f)
	if err != nil {
		return formError(c, err, "manufacturer_form", data)
	}
	return created(c, http.StatusOK, manufacturersPath, m)
}

func (h *ManufacturerHandler) DeletePage(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	m, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return render(c, http.StatusOK, "confirm_delete", echo.Map{
		"kind":   "manufacturer",
		"object": m.String(),
		"action": fmt.Sprintf("%s/%d/delete", manufacturersPath, id),
		"back":   manufacturersPath,
	})
}

// Delete godoc
// @Summary Delete manufacturer
// @Tags manufacturers
// @Security SessionCookie
// @Param id path int true "Manufacturer ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /manufacturers/{id}/delete [post]
func (h *ManufacturerHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return created(c, http.StatusNoContent, manufacturersPath, nil)
}
