package middleware

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"profileimage/internal/config"
)

type rateLimitResponse struct {
	Error      string `json:"error"`
	RetryAfter int    `json:"retry_after"`
}

const (
	retryAfterHeader = "1"
	bypassHeader     = "X-Rate-Limit-Bypass"
)

var (
	rateLimitExceededResp = rateLimitResponse{
		Error:      "rate limit exceeded",
		RetryAfter: 1,
	}
	rateLimiterInternalErr = map[string]string{
		"error": "internal server error",
	}
)

// TokenFunc extracts the caller's session token, or "" when there is none.
type TokenFunc func(c echo.Context) string

// RateLimit limits requests per session, or per client IP for callers without
// a session token. Tokens are hashed before they are used as store keys.
func RateLimit(cfg *config.RateLimitConfig, token TokenFunc, logger *slog.Logger) echo.MiddlewareFunc {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(
		middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(cfg.RPS),
			Burst:     cfg.Burst,
			ExpiresIn: time.Duration(cfg.ExpireMinutes) * time.Minute,
		},
	)

	secret := []byte(cfg.BypassSecret)
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		Skipper: func(c echo.Context) bool {
			if cfg.BypassSecret == "" {
				return false
			}
			provided := c.Request().Header.Get(bypassHeader)
			return subtle.ConstantTimeCompare([]byte(provided), secret) == 1
		},
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return identify(c, token), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			logger.Warn("rate limit exceeded",
				slog.String("identifier", identifier),
				slog.String("ip", c.RealIP()),
				slog.String("path", c.Path()),
			)
			c.Response().Header().Set("Retry-After", retryAfterHeader)
			return c.JSON(http.StatusTooManyRequests, rateLimitExceededResp)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			logger.Error("rate limiter error", slog.String("error", err.Error()))
			return c.JSON(http.StatusInternalServerError, rateLimiterInternalErr)
		},
	})
}

func identify(c echo.Context, token TokenFunc) string {
	if token != nil {
		if t := token(c); t != "" {
			sum := sha256.Sum256([]byte(t))
			return "session:" + hex.EncodeToString(sum[:8])
		}
	}
	return "ip:" + c.RealIP()
}
