package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "taxiservice/internal/errors"
	"taxiservice/internal/form"
	"taxiservice/internal/service"
)

const driversPath = "/drivers"

// DriverHandler handles driver pages.
type DriverHandler struct {
	svc service.DriverService
}

// NewDriverHandler creates a new driver handler.
func NewDriverHandler(svc service.DriverService) *DriverHandler {
	return &DriverHandler{svc: svc}
}

// List godoc
// @Summary List drivers
// @Tags drivers
// @Produce json,html
// @Security SessionCookie
// @Param username query string false "Substring of the username"
// @Success 200 {array} model.Driver
// @Failure 401 {object} errors.ErrorResponse
// @Router /drivers [get]
func (h *DriverHandler) List(c echo.Context) error {
	query := c.QueryParam("username")
	drivers, err := h.svc.List(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return respond(c, "driver_list", echo.Map{"drivers": drivers, "query": query}, drivers)
}

// Detail godoc
// @Summary Driver with assigned cars
// @Tags drivers
// @Produce json,html
// @Security SessionCookie
// @Param id path int true "Driver ID"
// @Success 200 {object} model.Driver
// @Failure 404 {object} errors.ErrorResponse
// @Router /drivers/{id} [get]
func (h *DriverHandler) Detail(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	driver, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, "driver_detail", echo.Map{"driver": driver}, driver)
}

func (h *DriverHandler) CreatePage(c echo.Context) error {
	return render(c, http.StatusOK, "driver_form", echo.Map{"form": form.DriverCreationForm{}})
}

// Create godoc
// @Summary Create driver
// @Description Passwords must match and pass the strength rules. License numbers look like ABC12345.
// @Tags drivers
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Security SessionCookie
// @Param request body form.DriverCreationForm true "Driver signup"
// @Success 201 {object} model.Driver
// @Success 302 "Redirect to the driver page"
// @Failure 400 {object} errors.ErrorResponse
// @Router /drivers/create [post]
func (h *DriverHandler) Create(c echo.Context) error {
	var f form.DriverCreationForm
	if err := c.Bind(&f); err != nil {
		return badRequest()
	}

	driver, err := h.svc.Create(c.Request().Context(), f)
	if err != nil {
		return formError(c, err, "driver_form", echo.Map{"form": f.Cleaned()})
	}
	return created(c, http.StatusCreated, fmt.Sprintf("%s/%d", driversPath, driver.ID), driver)
}

func (h *DriverHandler) UpdatePage(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	driver, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return render(c, http.StatusOK, "driver_license_form", echo.Map{
		"driver": driver,
		"form":   form.LicenseUpdateForm{LicenseNumber: driver.LicenseNumber},
	})
}

// Update godoc
// @Summary Update driver license number
// @Tags drivers
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Security SessionCookie
// @Param id path int true "Driver ID"
// @Param request body form.LicenseUpdateForm true "License"
// @Success 200 {object} model.Driver
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /drivers/{id}/update [post]
func (h *DriverHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var f form.LicenseUpdateForm
	if err := c.Bind(&f); err != nil {
		return badRequest()
	}

	driver, err := h.svc.UpdateLicense(c.Request().Context(), id, f)
	if _, ok := apperrors.AsValidation(err); err != nil && !ok {
		return err
	}
	if err != nil {
		current, gerr := h.svc.Get(c.Request().Context(), id)
		if gerr != nil {
			return gerr
		}
		return formError(c, err, "driver_license_form", echo.Map{"driver": current, "form": f})
	}
	return created(c, http.StatusOK, fmt.Sprintf("%s/%d", driversPath, id), driver)
}

func (h *DriverHandler) DeletePage(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	driver, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return render(c, http.StatusOK, "confirm_delete", echo.Map{
		"kind":   "driver",
		"object": driver.String(),
		"action": fmt.Sprintf("%s/%d/delete", driversPath, id),
		"back":   fmt.Sprintf("%s/%d", driversPath, id),
	})
}

// Delete godoc
// @Summary Delete driver
// @Tags drivers
// @Security SessionCookie
// @Param id path int true "Driver ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /drivers/{id}/delete [post]
func (h *DriverHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return created(c, http.StatusNoContent, driversPath, nil)
}
