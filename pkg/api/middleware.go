package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	echo "github.com/labstack/echo/v5"
)

// contextKeyUserID is the echo context key holding the authenticated user id.
const contextKeyUserID = "user_id"

// securityHeaders returns middleware that sets standard security response headers.
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
			return next(c)
		}
	}
}

// corsMiddleware allows cross-origin requests from the configured origins.
// Preflight requests are answered directly with 204.
func corsMiddleware(allowedOrigins []string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = true
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			origin := c.Request().Header.Get("Origin")
			if origin != "" && allowed[origin] {
				h := c.Response().Header()
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
				h.Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
				h.Set("Access-Control-Allow-Credentials", "true")
				h.Set("Vary", "Origin")
			}

			if c.Request().Method == http.MethodOptions {
				return c.NoContent(http.StatusNoContent)
			}
			return next(c)
		}
	}
}

// requestLogger logs one line per completed request.
func (s *Server) requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			start := time.Now()
			err := next(c)
			s.logger.Info("request",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"duration_ms", time.Since(start).Milliseconds(),
				"error", err)
			return err
		}
	}
}

// recoverPanics converts a handler panic into an error so the envelope
// middleware can render a 500 instead of dropping the connection.
func recoverPanics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("panic in handler: %v", r)
				}
			}()
			return next(c)
		}
	}
}

// errorEnvelope renders handler errors as the JSON error envelope. Errors
// surfacing after the response has been committed (mid-stream) are only
// logged.
func (s *Server) errorEnvelope() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			err := next(c)
			if err == nil {
				return nil
			}
			if resp, _ := echo.UnwrapResponse(c.Response()); resp != nil && resp.Committed {
				s.logger.Error("error after response committed",
					"path", c.Request().URL.Path, "error", err)
				return nil
			}

			var apiErr *apiError
			if errors.As(err, &apiErr) {
				return writeAPIError(c, apiErr)
			}

			var httpErr *echo.HTTPError
			if errors.As(err, &httpErr) {
				code := CodeInternalError
				switch httpErr.Code {
				case http.StatusBadRequest:
					code = CodeValidationError
				case http.StatusNotFound:
					code = CodeCurriculumNotFound
				}
				return writeAPIError(c, newAPIError(httpErr.Code, code, fmt.Sprintf("%v", httpErr.Message)))
			}

			s.logger.Error("unhandled request error",
				"path", c.Request().URL.Path, "error", err)
			return writeAPIError(c, newAPIError(http.StatusInternalServerError, CodeInternalError, "internal server error"))
		}
	}
}

// requireAuth verifies the bearer token and stores the user id on the
// request context for handlers.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c *echo.Context) error {
		header := c.Request().Header.Get("Authorization")
		if header == "" {
			return newAPIError(http.StatusUnauthorized, CodeAuthTokenMissing, "authorization header is required")
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return newAPIError(http.StatusUnauthorized, CodeAuthTokenInvalid, "authorization header must be a bearer token")
		}

		identity, err := s.verifier.Verify(token)
		if err != nil {
			return newAPIError(http.StatusUnauthorized, CodeAuthTokenInvalid, "invalid or expired token")
		}

		c.Set(contextKeyUserID, identity.UserID)
		return next(c)
	}
}

// userID returns the authenticated user id set by requireAuth.
func userID(c *echo.Context) string {
	id, _ := c.Get(contextKeyUserID).(string)
	return id
}
