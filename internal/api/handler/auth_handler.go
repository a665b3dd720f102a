package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/repairworks/backoffice/internal/api/metrics"
	"github.com/repairworks/backoffice/internal/api/middleware"
	"github.com/repairworks/backoffice/internal/core/domain"
	"github.com/repairworks/backoffice/internal/core/ports"
)

// AuthHandler handles the login/logout flow.
type AuthHandler struct {
	auth      ports.AuthService
	cookieTTL time.Duration
}

func NewAuthHandler(auth ports.AuthService, cookieTTL time.Duration) *AuthHandler {
	return &AuthHandler{auth: auth, cookieTTL: cookieTTL}
}

type loginRequest struct {
	Login    string `json:"login" form:"login" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// Login authenticates a user and establishes a session cookie.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, _, err := h.auth.Login(c.Request().Context(), req.Login, req.Password)
	if err != nil {
		// Only credential mismatches are failed attempts; infrastructure
		// errors must not inflate the counter.
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
		}
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.cookieTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// Logout destroys the session and sends the browser back to the login page.
//
// @Summary      Log out
// @Tags         auth
// @Success      302
// @Failure      500  {object}  errorResponse
// @Router       /logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.CookieName); err == nil {
		if err := h.auth.Logout(c.Request().Context(), cookie.Value); err != nil {
			return err
		}
	}

	// Expire the cookie regardless of whether a session existed.
	c.SetCookie(&http.Cookie{
		Name:     middleware.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.Redirect(http.StatusFound, "/login.html")
}
