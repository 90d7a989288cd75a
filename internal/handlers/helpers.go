package handlers

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/minhaz000/prime-motors-server/internal/events"
)

type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// errorResponse reports store and broker faults. Client faults (4xx)
// go through echo.NewHTTPError so they share one body shape.
func errorResponse(c echo.Context, code int, err error) error {
	return c.JSON(code, Response{
		Status:  "error",
		Message: err.Error(),
	})
}

// publish sends a marketplace event best-effort. A broker failure is
// logged and never fails the request.
func publish(c echo.Context, p events.Publisher, topic, key string, event map[string]any) {
	if p == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := p.PublishEvent(ctx, topic, key, event); err != nil {
		c.Logger().Errorf("kafka publish error: %v", err)
	}
}
