package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jewelpark/attraction-cart/internal/utils"
)

// SessionHeader carries the signed session token in both directions.  The
// storefront stores the value and replays it on every request, the way a
// browser carried its localStorage between pages.
const SessionHeader = "X-Session-Token"

// sessionIDKey is the context key handlers read the session ID from.
const sessionIDKey = "session_id"

// Session returns an Echo middleware that resolves the visitor's session.
// A valid token in the request header keeps its session; a missing or
// invalid token silently gets a brand-new session, whose token is returned
// in the response header for the client to store.  Requests are never
// rejected here — anonymous visitors have nothing to be unauthorized about.
func Session(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(SessionHeader)
			if raw != "" {
				if sid, err := utils.ParseSessionToken(secret, raw); err == nil {
					c.Set(sessionIDKey, sid)
					return next(c)
				}
			}
			sid, err := utils.NewSessionID()
			if err != nil {
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create session"})
			}
			token, err := utils.NewSessionToken(secret, sid)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to sign session token"})
			}
			c.Response().Header().Set(SessionHeader, token)
			c.Set(sessionIDKey, sid)
			return next(c)
		}
	}
}

// SessionID extracts the session ID placed in the context by Session.  The
// empty string is returned when the middleware did not run.
func SessionID(c echo.Context) string {
	sid, _ := c.Get(sessionIDKey).(string)
	return sid
}
