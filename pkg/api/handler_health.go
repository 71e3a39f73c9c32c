package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/lecternhq/lectern/pkg/database"
	"github.com/lecternhq/lectern/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /health.
// Unauthenticated; reports database reachability with pool stats and the
// number of open hub connections.
func (s *Server) healthHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp := &HealthResponse{
		Status:  healthStatusHealthy,
		Version: version.Full(),
	}
	if s.hub != nil {
		resp.ActiveConnections = s.hub.ActiveConnections()
	}
	if s.warnings != nil {
		resp.Warnings = s.warnings.GetWarnings()
	}

	if s.dbClient != nil {
		dbHealth, err := database.Health(reqCtx, s.dbClient.DB())
		resp.Database = dbHealth
		if err != nil {
			resp.Status = healthStatusUnhealthy
			return c.JSON(http.StatusServiceUnavailable, resp)
		}
	}

	return c.JSON(http.StatusOK, resp)
}
