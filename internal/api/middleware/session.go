package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/repairworks/backoffice/internal/core/domain"
	"github.com/repairworks/backoffice/internal/core/ports"
)

// CookieName is the session cookie handed to the browser.
const CookieName = "backoffice_session"

// PrincipalKey is the context key holding the resolved session principal.
const PrincipalKey = "principal"

// Session resolves the session cookie against the session store and injects
// the principal into the request context. Requests without a valid session
// pass through unauthenticated; the Require* gates decide what to do. A store
// failure is not the same as a missing session and propagates to the error
// handler instead of demoting the request to unauthenticated.
func Session(store ports.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err == nil && cookie.Value != "" {
				p, err := store.Resolve(c.Request().Context(), cookie.Value)
				switch {
				case err == nil:
					c.Set(PrincipalKey, *p)
				case !errors.Is(err, domain.ErrNoSession):
					return err
				}
			}
			return next(c)
		}
	}
}

// RequireAuth rejects unauthenticated requests. Browser page loads are
// redirected to the login page; API calls get a 401 envelope.
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := c.Get(PrincipalKey).(domain.Principal); !ok {
			if wantsHTML(c) {
				return c.Redirect(http.StatusFound, "/login.html")
			}
			return domain.ErrNoSession
		}
		return next(c)
	}
}

// RequireAdmin rejects authenticated principals without the admin flag.
// Must run after RequireAuth.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, ok := c.Get(PrincipalKey).(domain.Principal)
		if !ok {
			return domain.ErrNoSession
		}
		if !p.IsAdmin {
			return domain.ErrForbidden
		}
		return next(c)
	}
}

// wantsHTML reports whether the client is a browser navigating to a page
// rather than a script calling the API.
func wantsHTML(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get("Accept"), "text/html")
}
