package v1

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

var startTime = time.Now()

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message": "API is running",
		"uptime":  int(time.Since(startTime).Seconds()),
	})
}
