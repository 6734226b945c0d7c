package middleware

import (
	"crypto/subtle"
	"net/http"
	"net/http/pprof"

	"github.com/labstack/echo/v4"
)

const (
	PprofPrefix     = "/debug/pprof"
	pprofAuthHeader = "X-Pprof-Secret"
)

var errPprofUnauthorized = map[string]string{"error": "unauthorized"}

var pprofRoutes = map[string]http.Handler{
	"/":        http.HandlerFunc(pprof.Index),
	"/cmdline": http.HandlerFunc(pprof.Cmdline),
	"/profile": http.HandlerFunc(pprof.Profile),
	"/symbol":  http.HandlerFunc(pprof.Symbol),
	"/trace":   http.HandlerFunc(pprof.Trace),
}

var pprofProfiles = []string{"allocs", "block", "goroutine", "heap", "mutex", "threadcreate"}

// PprofAuth rejects requests without the shared secret. An empty secret
// disables the check.
func PprofAuth(secret string) echo.MiddlewareFunc {
	want := []byte(secret)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if len(want) == 0 {
				return next(c)
			}
			got := []byte(c.Request().Header.Get(pprofAuthHeader))
			if subtle.ConstantTimeCompare(got, want) != 1 {
				return c.JSON(http.StatusUnauthorized, errPprofUnauthorized)
			}
			return next(c)
		}
	}
}

// RegisterPprof mounts the runtime profiles under PprofPrefix behind PprofAuth.
func RegisterPprof(e *echo.Echo, secret string) {
	g := e.Group(PprofPrefix, PprofAuth(secret))

	for path, h := range pprofRoutes {
		g.GET(path, echo.WrapHandler(h))
	}
	g.POST("/symbol", echo.WrapHandler(pprofRoutes["/symbol"]))

	for _, name := range pprofProfiles {
		g.GET("/"+name, echo.WrapHandler(pprof.Handler(name)))
	}
}
