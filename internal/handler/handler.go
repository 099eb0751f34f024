package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"

	apperrors "taxiservice/internal/errors"
	"taxiservice/internal/model"
)

// Context keys shared with the router middleware.
const (
	ContextClaimsKey = "claims"
	ContextDriverKey = "driver"
)

// CurrentDriver returns the driver bound to the request session, or nil.
func CurrentDriver(c echo.Context) *model.Driver {
	d, _ := c.Get(ContextDriverKey).(*model.Driver)
	return d
}

// WantsJSON reports whether the client asked for a JSON response.
func WantsJSON(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}

// render executes an HTML page with the session driver and an error map always present.
func render(c echo.Context, status int, page string, data echo.Map) error {
	if data == nil {
		data = echo.Map{}
	}
	if _, ok := data["errors"]; !ok {
		data["errors"] = map[string]string{}
	}
	data["user"] = CurrentDriver(c)
	return c.Render(status, page, data)
}

// respond writes payload as JSON or renders page, depending on the Accept header.
func respond(c echo.Context, page string, data echo.Map, payload interface{}) error {
	if WantsJSON(c) {
		return c.JSON(http.StatusOK, payload)
	}
	return render(c, http.StatusOK, page, data)
}

// created finishes a successful POST: 201 with the entity for JSON, 302 to location otherwise.
func created(c echo.Context, status int, location string, payload interface{}) error {
	if WantsJSON(c) {
		if payload == nil {
			return c.NoContent(http.StatusNoContent)
		}
		return c.JSON(status, payload)
	}
	return c.Redirect(http.StatusFound, location)
}

// formError re-renders page with field errors, or answers 400 for JSON clients.
// Errors that are not validation errors are returned unchanged.
func formError(c echo.Context, err error, page string, data echo.Map) error {
	verr, ok := apperrors.AsValidation(err)
	if !ok {
		return err
	}
	if WantsJSON(c) {
		httpErr := apperrors.MapErrorToHTTP(verr)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	data["errors"] = verr.Fields
	return render(c, http.StatusOK, page, data)
}

func badRequest() error {
	return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
		Error: "invalid request body",
		Code:  "INVALID_REQUEST",
	})
}

// parseID reads the :id path parameter. Malformed ids are reported as not found.
func parseID(c echo.Context) (uint, error) {
	id, err := cast.ToUintE(c.Param("id"))
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusNotFound, apperrors.ErrorResponse{
			Error: apperrors.ErrNotFound.Error(),
			Code:  "NOT_FOUND",
		})
	}
	return id, nil
}
