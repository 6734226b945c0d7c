package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"profileimage/internal/domain"
	"profileimage/internal/service"
	"profileimage/internal/validation"
)

const (
	sessionCookie = "token"
	imageURLField = "imageUrl"
)

var (
	errInvalidBody     = map[string]string{"error": "invalid request body"}
	errInvalidImageURL = map[string]string{"error": validation.ErrInvalidURL.Error()}
	errHostRejected    = map[string]string{"error": validation.ErrHostRejected.Error()}
	errUploadFailed    = map[string]string{"error": "failed to update profile image"}
	errSessionFailed   = map[string]string{"error": "failed to resolve session"}
	respHealthOK       = map[string]string{"status": "ok"}
)

type Handler struct {
	images   ProfileImageService
	sessions SessionResolver
	logger   *slog.Logger
	basePath string
}

func New(
	images ProfileImageService,
	sessions SessionResolver,
	logger *slog.Logger,
	basePath string,
) *Handler {
	return &Handler{
		images:   images,
		sessions: sessions,
		logger:   logger,
		basePath: strings.TrimSuffix(basePath, "/"),
	}
}

// Register mounts the routes. Extra middleware applies to the upload route only.
func (h *Handler) Register(e *echo.Echo, upload ...echo.MiddlewareFunc) {
	api := e.Group("/api/v1")
	api.GET("/health", h.Health)
	e.POST("/profile/image/url", h.UploadImageURL, upload...)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, respHealthOK)
}

func (h *Handler) UploadImageURL(c echo.Context) error {
	user, err := h.sessions.Resolve(c.Request().Context(), SessionToken(c))
	if err != nil {
		if errors.Is(err, service.ErrUnauthenticated) {
			return c.JSON(http.StatusUnauthorized, map[string]string{
				"error": fmt.Sprintf("blocked illegal activity by %s", c.RealIP()),
			})
		}
		h.logger.Error("failed to resolve session", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errSessionFailed)
	}

	rawURL, err := imageURL(c)
	if err != nil {
		h.logger.Error("failed to bind request", slog.String("error", err.Error()))
		return c.JSON(http.StatusBadRequest, errInvalidBody)
	}
	if rawURL == nil {
		return h.redirectToProfile(c)
	}

	result, err := h.images.UploadFromURL(c.Request().Context(), *user, *rawURL)
	if err != nil {
		return h.handleUploadError(c, err)
	}

	h.logger.Info("profile image updated",
		slog.Uint64("user_id", uint64(user.ID)),
		slog.String("outcome", string(result.Outcome)))

	return h.redirectToProfile(c)
}

func (h *Handler) redirectToProfile(c echo.Context) error {
	return c.Redirect(http.StatusFound, h.basePath+"/profile")
}

func (h *Handler) handleUploadError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, validation.ErrInvalidURL):
		return c.JSON(http.StatusBadRequest, errInvalidImageURL)
	case errors.Is(err, validation.ErrHostRejected):
		return c.JSON(http.StatusBadRequest, errHostRejected)
	default:
		h.logger.Error("failed to update profile image", slog.String("error", err.Error()))
		return c.JSON(http.StatusInternalServerError, errUploadFailed)
	}
}

// SessionToken reads the session token from the token cookie, falling back to
// a bearer Authorization header.
func SessionToken(c echo.Context) string {
	if cookie, err := c.Cookie(sessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	if token, ok := strings.CutPrefix(auth, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

// imageURL returns nil when the request carries no imageUrl field at all.
func imageURL(c echo.Context) (*string, error) {
	ctype := c.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(ctype, echo.MIMEApplicationJSON) {
		var req domain.ProfileImageURLRequest
		if err := c.Bind(&req); err != nil {
			return nil, err
		}
		return req.ImageURL, nil
	}

	params, err := c.FormParams()
	if err != nil {
		return nil, err
	}
	values, ok := params[imageURLField]
	if !ok || len(values) == 0 {
		return nil, nil
	}
	return &values[0], nil
}
