package handler_test

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"profileimage/internal/domain"
	"profileimage/internal/handler"
	"profileimage/internal/handler/mocks"
	"profileimage/internal/service"
	"profileimage/internal/validation"
)

var testUser = &domain.User{ID: 42, Email: "jim@example.com"}

func newTestHandler(t *testing.T) (*handler.Handler, *mocks.MockProfileImageService, *mocks.MockSessionResolver) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	images := mocks.NewMockProfileImageService(t)
	sessions := mocks.NewMockSessionResolver(t)
	h := handler.New(images, sessions, logger, "/app/")
	return h, images, sessions
}

func jsonRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/profile/image/url", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.AddCookie(&http.Cookie{Name: "token", Value: "tok"})
	return req
}

func formRequest(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/profile/image/url", strings.NewReader(values.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	req.AddCookie(&http.Cookie{Name: "token", Value: "tok"})
	return req
}

func TestHealth(t *testing.T) {
	h, _, _ := newTestHandler(t)

	e := echo.New()
	h.Register(e)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestUploadImageURL_JSONPersisted(t *testing.T) {
	h, images, sessions := newTestHandler(t)

	sessions.EXPECT().Resolve(mock.Anything, "tok").Return(testUser, nil)
	images.EXPECT().UploadFromURL(mock.Anything, *testUser, "https://imgur.com/a.png").Return(&domain.UploadResult{
		Reference: "/assets/public/images/uploads/42.png",
		Outcome:   domain.OutcomePersisted,
	}, nil).Once()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(`{"imageUrl":"https://imgur.com/a.png"}`), rec)

	err := h.UploadImageURL(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/app/profile", rec.Header().Get(echo.HeaderLocation))
}

func TestUploadImageURL_FormFallbackStillRedirects(t *testing.T) {
	h, images, sessions := newTestHandler(t)

	sessions.EXPECT().Resolve(mock.Anything, "tok").Return(testUser, nil)
	images.EXPECT().UploadFromURL(mock.Anything, *testUser, "https://imgur.com/gone.png").Return(&domain.UploadResult{
		Reference: "https://imgur.com/gone.png",
		Outcome:   domain.OutcomeFallbackStored,
		Cause:     errors.New("fetch failed"),
	}, nil).Once()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(formRequest(url.Values{"imageUrl": {"https://imgur.com/gone.png"}}), rec)

	err := h.UploadImageURL(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/app/profile", rec.Header().Get(echo.HeaderLocation))
}

func TestUploadImageURL_AbsentFieldIsNoop(t *testing.T) {
	tests := []struct {
		name string
		req  *http.Request
	}{
		{"empty json object", jsonRequest(`{}`)},
		{"json null", jsonRequest(`{"imageUrl":null}`)},
		{"form without field", formRequest(url.Values{"other": {"x"}})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, images, sessions := newTestHandler(t)
			sessions.EXPECT().Resolve(mock.Anything, "tok").Return(testUser, nil)

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(tt.req, rec)

			err := h.UploadImageURL(c)
			require.NoError(t, err)
			assert.Equal(t, http.StatusFound, rec.Code)
			images.AssertNotCalled(t, "UploadFromURL", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestUploadImageURL_EmptyStringIsForwarded(t *testing.T) {
	h, images, sessions := newTestHandler(t)

	sessions.EXPECT().Resolve(mock.Anything, "tok").Return(testUser, nil)
	images.EXPECT().UploadFromURL(mock.Anything, *testUser, "").
		Return(nil, fmt.Errorf("%w: %w", validation.ErrInvalidURL, validation.ErrEmptyURL)).Once()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(`{"imageUrl":""}`), rec)

	err := h.UploadImageURL(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"invalid image url provided"}`, rec.Body.String())
}

func TestUploadImageURL_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "parse error",
			err:      fmt.Errorf("%w: %w", validation.ErrInvalidURL, validation.ErrMissingScheme),
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"invalid image url provided"}`,
		},
		{
			name:     "host rejected",
			err:      fmt.Errorf("%w: %w", validation.ErrHostRejected, validation.ErrHostNotAllowed),
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"image url points to an unallowed host"}`,
		},
		{
			name:     "fallback failed",
			err:      fmt.Errorf("%w: %w", service.ErrFallbackFailed, errors.New("db down")),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"failed to update profile image"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, images, sessions := newTestHandler(t)

			sessions.EXPECT().Resolve(mock.Anything, "tok").Return(testUser, nil)
			images.EXPECT().UploadFromURL(mock.Anything, *testUser, "http://10.0.0.5/a.png").Return(nil, tt.err).Once()

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(jsonRequest(`{"imageUrl":"http://10.0.0.5/a.png"}`), rec)

			err := h.UploadImageURL(c)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestUploadImageURL_InvalidJSON(t *testing.T) {
	h, images, sessions := newTestHandler(t)
	sessions.EXPECT().Resolve(mock.Anything, "tok").Return(testUser, nil)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(`{"imageUrl":`), rec)

	err := h.UploadImageURL(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	images.AssertNotCalled(t, "UploadFromURL", mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadImageURL_Unauthenticated(t *testing.T) {
	h, images, sessions := newTestHandler(t)
	sessions.EXPECT().Resolve(mock.Anything, "").Return(nil, service.ErrUnauthenticated)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/profile/image/url", strings.NewReader(`{"imageUrl":"https://imgur.com/a.png"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.RemoteAddr = "203.0.113.9:5555"
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.UploadImageURL(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"blocked illegal activity by 203.0.113.9"}`, rec.Body.String())
	images.AssertNotCalled(t, "UploadFromURL", mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadImageURL_SessionLookupFailure(t *testing.T) {
	h, _, sessions := newTestHandler(t)
	sessions.EXPECT().Resolve(mock.Anything, "tok").Return(nil, errors.New("db down"))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(`{"imageUrl":"https://imgur.com/a.png"}`), rec)

	err := h.UploadImageURL(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestUploadImageURL_RoutedWithMiddleware(t *testing.T) {
	h, images, sessions := newTestHandler(t)
	sessions.EXPECT().Resolve(mock.Anything, "tok").Return(testUser, nil)
	images.EXPECT().UploadFromURL(mock.Anything, *testUser, "https://imgur.com/a.png").
		Return(&domain.UploadResult{Outcome: domain.OutcomePersisted}, nil).Once()

	var hits int
	counter := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			hits++
			return next(c)
		}
	}

	e := echo.New()
	h.Register(e, counter)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, jsonRequest(`{"imageUrl":"https://imgur.com/a.png"}`))
	assert.Equal(t, http.StatusFound, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, 1, hits)
}

func TestSessionToken(t *testing.T) {
	tests := []struct {
		name   string
		cookie string
		auth   string
		want   string
	}{
		{name: "cookie", cookie: "abc", want: "abc"},
		{name: "bearer header", auth: "Bearer xyz", want: "xyz"},
		{name: "cookie wins over header", cookie: "abc", auth: "Bearer xyz", want: "abc"},
		{name: "basic auth ignored", auth: "Basic dXNlcjpwYXNz", want: ""},
		{name: "nothing", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "token", Value: tt.cookie})
			}
			if tt.auth != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.auth)
			}

			c := echo.New().NewContext(req, httptest.NewRecorder())
			assert.Equal(t, tt.want, handler.SessionToken(c))
		})
	}
}
