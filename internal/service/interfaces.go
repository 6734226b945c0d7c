package service

//go:generate go tool mockery

import (
	"context"
	"io"

	"profileimage/internal/domain"
	"profileimage/internal/fetcher"
	"profileimage/internal/validation"
)

type URLParser interface {
	Parse(rawURL string) (validation.ParsedURL, error)
}

type HostValidator interface {
	Validate(p validation.ParsedURL) validation.Verdict
}

type ProbeDetector interface {
	Inspect(rawURL string) bool
}

type Fetcher interface {
	Fetch(ctx context.Context, target validation.ParsedURL) (*fetcher.Response, error)
}

type AssetStore interface {
	Save(ctx context.Context, userID uint, ext string, r io.Reader) (string, error)
}

type ProfileRepository interface {
	UpdateProfileImage(ctx context.Context, userID uint, reference string) error
}

type SessionRepository interface {
	FindUserBySessionToken(ctx context.Context, token string) (*domain.User, error)
}

type SessionCache interface {
	Get(token string) (domain.User, bool)
	Set(token string, user domain.User)
}

type BusinessRecorder interface {
	RecordBusiness(name string, value float64, labels map[string]string)
}
