package middleware

import (
	"cmp"
	"errors"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"profileimage/internal/metrics"
)

type HTTPRecorder interface {
	RecordHTTP(m metrics.HTTPMetric)
}

// Metrics records one HTTPMetric per request. Requests whose path starts with
// any of skipPrefixes are not recorded.
func Metrics(recorder HTTPRecorder, skipPrefixes ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			for _, prefix := range skipPrefixes {
				if strings.HasPrefix(c.Request().URL.Path, prefix) {
					return next(c)
				}
			}

			start := time.Now()

			err := next(c)

			path := cmp.Or(c.Path(), "/")
			statusCode := c.Response().Status

			var errStr string
			if err != nil {
				errStr = err.Error()
				var he *echo.HTTPError
				if errors.As(err, &he) {
					statusCode = he.Code
				}
			}

			recorder.RecordHTTP(metrics.HTTPMetric{
				Time:       start,
				Method:     c.Request().Method,
				Path:       path,
				StatusCode: statusCode,
				DurationMs: float64(time.Since(start).Microseconds()) / 1000.0,
				ClientIP:   c.RealIP(),
				RequestID:  requestID(c),
				Error:      errStr,
			})

			return err
		}
	}
}

func requestID(c echo.Context) string {
	return cmp.Or(
		c.Response().Header().Get(echo.HeaderXRequestID),
		c.Request().Header.Get(echo.HeaderXRequestID),
	)
}
