package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "taxiservice/internal/errors"
	"taxiservice/internal/form"
	"taxiservice/internal/logger"
	"taxiservice/internal/service"
)

const (
	loginPath        = "/accounts/login"
	invalidLoginText = "Please enter a correct username and password. Note that both fields may be case-sensitive."
)

// CookieConfig describes the session cookie.
type CookieConfig struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

// AuthHandler handles login and logout.
type AuthHandler struct {
	authService service.AuthService
	cookie      CookieConfig
	log         logger.ILogger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, cookie CookieConfig, log logger.ILogger) *AuthHandler {
	return &AuthHandler{authService: authService, cookie: cookie, log: log}
}

// LoginResponse is returned to JSON clients after a successful login.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	DriverID  uint      `json:"driver_id"`
	Username  string    `json:"username"`
}

// LoginPage godoc
// @Summary Login page
// @Tags auth
// @Produce html
// @Param next query string false "Where to go after login"
// @Success 200 {string} string "HTML page"
// @Router /accounts/login [get]
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return render(c, http.StatusOK, "login", echo.Map{
		"form": form.LoginForm{Next: c.QueryParam("next")},
	})
}

// Login godoc
// @Summary Login driver
// @Tags auth
// @Accept json,x-www-form-urlencoded
// @Produce json,html
// @Param request body form.LoginForm true "Login credentials"
// @Success 200 {object} LoginResponse
// @Success 302 "Redirect to next page"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /accounts/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req form.LoginForm
	if err := c.Bind(&req); err != nil {
		return badRequest()
	}
	data := echo.Map{"form": form.LoginForm{Username: req.Username, Next: req.Next}}

	if err := c.Validate(&req); err != nil {
		return formError(c, err, "login", data)
	}

	token, claims, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if errors.Is(err, apperrors.ErrInvalidCredentials) {
		h.log.Info("login rejected", logger.String("username", req.Username))
		if WantsJSON(c) {
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: err.Error(),
				Code:  "INVALID_CREDENTIALS",
			})
		}
		data["errors"] = map[string]string{apperrors.NonFieldErrors: invalidLoginText}
		return render(c, http.StatusOK, "login", data)
	}
	if err != nil {
		return err
	}

	h.log.Info("driver logged in", logger.Uint("driver_id", claims.DriverID))
	c.SetCookie(&http.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Path:     "/",
		Expires:  claims.ExpiresAt.Time,
		MaxAge:   int(h.cookie.TTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	if WantsJSON(c) {
		return c.JSON(http.StatusOK, LoginResponse{
			Token:     token,
			ExpiresAt: claims.ExpiresAt.Time,
			DriverID:  claims.DriverID,
			Username:  claims.Username,
		})
	}
	return c.Redirect(http.StatusFound, safeNext(req.Next))
}

// Logout godoc
// @Summary Logout driver
// @Tags auth
// @Produce json
// @Security SessionCookie
// @Success 200 {object} map[string]string
// @Success 302 "Redirect to login"
// @Router /accounts/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if token := h.token(c); token != "" {
		err := h.authService.Logout(c.Request().Context(), token)
		if err != nil && !errors.Is(err, apperrors.ErrInvalidSession) {
			return err
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
	})

	if WantsJSON(c) {
		return c.JSON(http.StatusOK, map[string]string{"message": "logged out"})
	}
	return c.Redirect(http.StatusFound, loginPath)
}

func (h *AuthHandler) token(c echo.Context) string {
	if cookie, err := c.Cookie(h.cookie.Name); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	const prefix = "Bearer "
	if auth := c.Request().Header.Get(echo.HeaderAuthorization); strings.HasPrefix(auth, prefix) {
		return strings.TrimPrefix(auth, prefix)
	}
	return ""
}

// Unauthorized rejects a request without a valid session: 401 for JSON
// clients, otherwise a redirect to the login page that comes back here.
func Unauthorized(c echo.Context) error {
	if WantsJSON(c) {
		return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
			Error: "authentication required",
			Code:  "UNAUTHORIZED",
		})
	}
	return c.Redirect(http.StatusFound, loginPath+"?next="+url.QueryEscape(c.Request().URL.RequestURI()))
}

// safeNext only follows local paths.
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	return next
}
