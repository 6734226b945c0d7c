package handler

//go:generate go tool mockery

import (
	"context"

	"profileimage/internal/domain"
)

type ProfileImageService interface {
	UploadFromURL(ctx context.Context, user domain.User, rawURL string) (*domain.UploadResult, error)
}

type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*domain.User, error)
}
