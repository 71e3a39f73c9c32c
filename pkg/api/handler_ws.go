package api

import (
	"github.com/coder/websocket"
	echo "github.com/labstack/echo/v5"
)

// wsHandler upgrades HTTP connections to WebSocket and delegates to the hub.
// Authentication happens in-protocol via the authenticate event, not here.
func (s *Server) wsHandler(c *echo.Context) error {
	if s.hub == nil {
		return echo.NewHTTPError(503, "WebSocket not available")
	}

	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		OriginPatterns: originPatterns(s.cfg.AllowedOrigins),
	})
	if err != nil {
		return err
	}

	// HandleConnection blocks until the WebSocket closes.
	s.hub.HandleConnection(c.Request().Context(), conn)
	return nil
}

// originPatterns strips schemes from configured origins; websocket.Accept
// matches patterns against the Origin host.
func originPatterns(origins []string) []string {
	patterns := make([]string, 0, len(origins))
	for _, origin := range origins {
		for _, prefix := range []string{"https://", "http://"} {
			if len(origin) > len(prefix) && origin[:len(prefix)] == prefix {
				origin = origin[len(prefix):]
				break
			}
		}
		patterns = append(patterns, origin)
	}
	return patterns
}
