package router

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"taxiservice/internal/auth"
	"taxiservice/internal/config"
	apperrors "taxiservice/internal/errors"
	"taxiservice/internal/handler"
	"taxiservice/internal/logger"
	"taxiservice/internal/model"
	"taxiservice/internal/service"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Auth         *handler.AuthHandler
	Home         *handler.HomeHandler
	Manufacturer *handler.ManufacturerHandler
	Car          *handler.CarHandler
	Driver       *handler.DriverHandler
}

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	log logger.ILogger,
	authService service.AuthService,
	driverService service.DriverService,
	h Handlers,
) {
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())
	e.Use(requestLogger(log))

	e.Validator = NewValidator()
	e.HTTPErrorHandler = handler.ErrorHandler(log)

	e.GET("/healthz", h.Home.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.GET("/accounts/login", h.Auth.LoginPage)
	e.POST("/accounts/login", h.Auth.Login)
	e.POST("/accounts/logout", h.Auth.Logout)

	// Everything else needs a session
	secured := e.Group("",
		echojwt.WithConfig(echojwt.Config{
			ContextKey:  handler.ContextClaimsKey,
			TokenLookup: fmt.Sprintf("cookie:%s,header:%s:Bearer ", cfg.SessionCookie, echo.HeaderAuthorization),
			ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
				return authService.Authenticate(c.Request().Context(), token)
			},
			ErrorHandler: func(c echo.Context, err error) error {
				if !errors.Is(err, apperrors.ErrInvalidSession) && !errors.Is(err, echojwt.ErrJWTMissing) {
					log.Warning("session check failed", logger.Error(err))
				}
				return handler.Unauthorized(c)
			},
		}),
		currentDriver(driverService),
	)

	secured.GET("/", h.Home.Index)

	secured.GET("/manufacturers", h.Manufacturer.List)
	secured.GET("/manufacturers/create", h.Manufacturer.CreatePage)
	secured.POST("/manufacturers/create", h.Manufacturer.Create)
	secured.GET("/manufacturers/:id/update", h.Manufacturer.UpdatePage)
	secured.POST("/manufacturers/:id/update", h.Manufacturer.Update)
	secured.GET("/manufacturers/:id/delete", h.Manufacturer.DeletePage)
	secured.POST("/manufacturers/:id/delete", h.Manufacturer.Delete)

	secured.GET("/cars", h.Car.List)
	secured.GET("/cars/create", h.Car.CreatePage)
	secured.POST("/cars/create", h.Car.Create)
	secured.GET("/cars/:id", h.Car.Detail)
	secured.GET("/cars/:id/update", h.Car.UpdatePage)
	secured.POST("/cars/:id/update", h.Car.Update)
	secured.GET("/cars/:id/delete", h.Car.DeletePage)
	secured.POST("/cars/:id/delete", h.Car.Delete)
	secured.POST("/cars/:id/toggle-assign", h.Car.ToggleAssign)

	secured.GET("/drivers", h.Driver.List)
	secured.GET("/drivers/create", h.Driver.CreatePage)
	secured.POST("/drivers/create", h.Driver.Create)
	secured.GET("/drivers/:id", h.Driver.Detail)
	secured.GET("/drivers/:id/update", h.Driver.UpdatePage)
	secured.POST("/drivers/:id/update", h.Driver.Update)
	secured.GET("/drivers/:id/delete", h.Driver.DeletePage)
	secured.POST("/drivers/:id/delete", h.Driver.Delete)
}

// currentDriver loads the session's driver. A session whose driver was
// deleted counts as no session.
func currentDriver(drivers service.DriverService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(handler.ContextClaimsKey).(*auth.Claims)
			if !ok {
				return handler.Unauthorized(c)
			}
			driver, err := drivers.Current(c.Request().Context(), claims.DriverID)
			if errors.Is(err, apperrors.ErrNotFound) {
				return handler.Unauthorized(c)
			}
			if err != nil {
				return err
			}
			c.Set(handler.ContextDriverKey, driver)
			return next(c)
		}
	}
}

func requestLogger(log logger.ILogger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []logger.Field{
				logger.String("method", v.Method),
				logger.String("uri", v.URI),
				logger.Int("status", v.Status),
				logger.Duration("latency", v.Latency),
				logger.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				fields = append(fields, logger.Error(v.Error))
			}
			if v.Status >= http.StatusInternalServerError {
				log.Error("request", fields...)
				return nil
			}
			log.Info("request", fields...)
			return nil
		},
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator builds a validator that reports errors under the form field names.
func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.Split(fld.Tag.Get("form"), ",")[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	err := cv.validator.Struct(i)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = message(fe)
	}
	return apperrors.NewValidationError(fields)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return model.RequiredMessage
	case "max":
		return fmt.Sprintf("Ensure this value has at most %s characters.", fe.Param())
	default:
		return fmt.Sprintf("Enter a valid value (%s).", fe.Tag())
	}
}
