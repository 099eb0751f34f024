package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "taxiservice/internal/errors"
	"taxiservice/internal/logger"
)

// ErrorHandler renders errors as JSON or as the HTML error page.
// Unexpected errors are logged and reported as 500 without details.
func ErrorHandler(log logger.ILogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, resp := errorResponse(err)
		if status >= http.StatusInternalServerError {
			log.Error("request failed",
				logger.Error(err),
				logger.String("method", c.Request().Method),
				logger.String("path", c.Request().URL.Path),
			)
		}

		var werr error
		switch {
		case c.Request().Method == http.MethodHead:
			werr = c.NoContent(status)
		case WantsJSON(c):
			werr = c.JSON(status, resp)
		default:
			werr = render(c, status, "error", echo.Map{"status": status, "message": resp.Error})
			if errors.Is(werr, echo.ErrRendererNotRegistered) {
				werr = c.JSON(status, resp)
			}
		}
		if werr != nil {
			log.Error("write error response", logger.Error(werr))
		}
	}
}

func errorResponse(err error) (int, apperrors.ErrorResponse) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		switch msg := he.Message.(type) {
		case apperrors.ErrorResponse:
			return he.Code, msg
		case string:
			return he.Code, apperrors.ErrorResponse{Error: msg, Code: statusCode(he.Code)}
		default:
			return he.Code, apperrors.ErrorResponse{Error: fmt.Sprint(msg), Code: statusCode(he.Code)}
		}
	}

	httpErr := apperrors.MapErrorToHTTP(err)
	return httpErr.StatusCode, httpErr.ToErrorResponse()
}

// statusCode turns "Not Found" into "NOT_FOUND".
func statusCode(status int) string {
	return strings.ToUpper(strings.ReplaceAll(http.StatusText(status), " ", "_"))
}
