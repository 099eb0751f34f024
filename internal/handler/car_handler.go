package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "taxiservice/internal/errors"
	"taxiservice/internal/form"
	"taxiservice/internal/service"
)

const carsPath = "/cars"

// CarHandler handles car pages.
type CarHandler struct {
	cars          service.CarService
	manufacturers service.ManufacturerService
}

// NewCarHandler creates a new car handler.
func NewCarHandler(cars service.CarService, manufacturers service.ManufacturerService) *CarHandler {
	return &CarHandler{cars: cars, manufacturers: manufacturers}
}

// ToggleResponse reports the assignment state after a toggle.
type ToggleResponse struct {
	CarID    uint `json:"car_id"`
	DriverID uint `json:"driver_id"`
	Assigned bool `json:"assigned"`
}

// List godoc
// @Summary List cars
// @Tags cars
// @Produce json,html
// @Security SessionCookie
// @Param model query string false "Substring of the car model"
// @Success 200 {array} model.Car
// @Failure 401 {object} errors.ErrorResponse
// @Router /cars [get]
func (h *CarHandler) List(c echo.Context) error {
	query := c.QueryParam("model")
	cars, err := h.cars.List(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return respond(c, "car_list", echo.Map{"cars": cars, "query": query}, cars)
}

// Detail godoc
// @Summary Car with its drivers
// @Tags cars
// @Produce json,html
// @Security SessionCookie
// @Param id path int true "Car ID"
// @Success 200 {object} model.Car
// @Failure 404 {object} errors.ErrorResponse
// @Router /cars/{id} [get]
func (h *CarHandler) Detail(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	car, err := h.cars.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	assigned := false
	if d := CurrentDriver(c); d != nil {
		assigned = car.HasDriver(d.ID)
	}
	return respond(c, "car_detail", echo.Map{"car": car, "assigned": assigned}, car)
}

// formPage renders the car form with the manufacturer choices.
func (h *CarHandler) formPage(c echo.Context, data echo.Map) error {
	manufacturers, err := h.manufacturers.List(c.Request().Context(), "")
	if err != nil {
		return err
	}
	data["manufacturers"] = manufacturers
	return render(c, http.StatusOK, "car_form", data)
}

func (h *CarHandler) CreatePage(c echo.Context) error {
	return h.formPage(c, echo.Map{"form": form.CarForm{}})
}

// Create godoc
// @Summary Create car
// @Tags cars
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Security SessionCookie
// @Param request body form.CarForm true "Car"
// @Success 201 {object} model.Car
// @Failure 400 {object} errors.ErrorResponse
// @Router /cars/create [post]
func (h *CarHandler) Create(c echo.Context) error {
	var f form.CarForm
	if err := c.Bind(&f); err != nil {
		return badRequest()
	}

	data := echo.Map{"form": f}
	if err := c.Validate(&f); err != nil {
		return h.invalid(c, err, data)
	}
	car, err := h.cars.Create(c.Request().Context(), f)
	if err != nil {
		return h.invalid(c, err, data)
	}
	return created(c, http.StatusCreated, carsPath, car)
}

func (h *CarHandler) UpdatePage(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	car, err := h.cars.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return h.formPage(c, echo.Map{
		"object": car,
		"form":   form.CarForm{Model: car.Model, ManufacturerID: car.ManufacturerID},
	})
}

// Update godoc
// @Summary Update car
// @Tags cars
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Security SessionCookie
// @Param id path int true "Car ID"
// @Param request body form.CarForm true "Car"
// @Success 200 {object} model.Car
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /cars/{id}/update [post]
func (h *CarHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var f form.CarForm
	if err := c.Bind(&f); err != nil {
		return badRequest()
	}

	data := echo.Map{"object": id, "form": f}
	if err := c.Validate(&f); err != nil {
		return h.invalid(c, err, data)
	}
	car, err := h.cars.Update(c.Request().Context(), id, f)
	if err != nil {
		return h.invalid(c, err, data)
	}
	return created(c, http.StatusOK, fmt.Sprintf("%s/%d", carsPath, id), car)
}

// invalid re-renders the car form with field errors and the manufacturer choices.
func (h *CarHandler) invalid(c echo.Context, err error, data echo.Map) error {
	if _, ok := apperrors.AsValidation(err); ok && !WantsJSON(c) {
		manufacturers, lerr := h.manufacturers.List(c.Request().Context(), "")
		if lerr != nil {
			return lerr
		}
		data["manufacturers"] = manufacturers
	}
	return formError(c, err, "car_form", data)
}

func (h *CarHandler) DeletePage(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	car, err := h.cars.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return render(c, http.StatusOK, "confirm_delete", echo.Map{
		"kind":   "car",
		"object": car.String(),
		"action": fmt.Sprintf("%s/%d/delete", carsPath, id),
		"back":   fmt.Sprintf("%s/%d", carsPath, id),
	})
}

// Delete godoc
// @Summary Delete car
// @Tags cars
// @Security SessionCookie
// @Param id path int true "Car ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /cars/{id}/delete [post]
func (h *CarHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.cars.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return created(c, http.StatusNoContent, carsPath, nil)
}

// ToggleAssign godoc
// @Summary Assign or unassign the current driver
// @Tags cars
// @Produce json
// @Security SessionCookie
// @Param id path int true "Car ID"
// @Success 200 {object} ToggleResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /cars/{id}/toggle-assign [post]
func (h *CarHandler) ToggleAssign(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	driver := CurrentDriver(c)
	if driver == nil {
		return Unauthorized(c)
	}
	assigned, err := h.cars.ToggleAssign(c.Request().Context(), id, driver.ID)
	if err != nil {
		return err
	}
	return created(c, http.StatusOK, fmt.Sprintf("%s/%d", carsPath, id), ToggleResponse{
		CarID:    id,
		DriverID: driver.ID,
		Assigned: assigned,
	})
}
