package health

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
)

var startedAt = time.Now()

type pingResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Hostname  string    `json:"hostname"`
	GoVersion string    `json:"goVersion"`
	Uptime    string    `json:"uptime"`
	Time      time.Time `json:"time"`
}

// RegisterHealthEndpoints mounts the liveness probes. /health is the cheap
// check for load balancers, /ping returns process details.
func RegisterHealthEndpoints(e *echo.Echo, serviceName string) {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"service": serviceName,
		})
	})

	e.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, pingResponse{
			Status:    "ok",
			Service:   serviceName,
			Hostname:  hostname,
			GoVersion: runtime.Version(),
			Uptime:    time.Since(startedAt).Round(time.Second).String(),
			Time:      time.Now().UTC(),
		})
	})
}
