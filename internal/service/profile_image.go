package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"profileimage/internal/domain"
	"profileimage/internal/storage"
	"profileimage/internal/validation"
)

var ErrFallbackFailed = errors.New("failed to store image url")

const (
	metricStored   = "profile_image_stored"
	metricFallback = "profile_image_fallback"
	metricRejected = "profile_image_rejected"
	metricFailed   = "profile_image_failed"
)

// fallbackTimeout bounds the raw url write. It runs on its own deadline so a
// fetch that used up the pipeline timeout can still degrade to the fallback.
const fallbackTimeout = 5 * time.Second

type ProfileImageService struct {
	parser    URLParser
	validator HostValidator
	detector  ProbeDetector
	fetcher   Fetcher
	store     AssetStore
	repo      ProfileRepository
	recorder  BusinessRecorder
	logger    *slog.Logger
	timeout   time.Duration
}

func NewProfileImageService(
	parser URLParser,
	validator HostValidator,
	detector ProbeDetector,
	fetcher Fetcher,
	store AssetStore,
	repo ProfileRepository,
	recorder BusinessRecorder,
	logger *slog.Logger,
	timeout time.Duration,
) *ProfileImageService {
	return &ProfileImageService{
		parser:    parser,
		validator: validator,
		detector:  detector,
		fetcher:   fetcher,
		store:     store,
		repo:      repo,
		recorder:  recorder,
		logger:    logger,
		timeout:   timeout,
	}
}

// UploadFromURL runs parse, validate, then fetch and persist, falling back to
// storing rawURL itself when fetch or persist fails. A rejected URL never
// reaches the fetcher. Each stage runs at most once.
func (s *ProfileImageService) UploadFromURL(ctx context.Context, user domain.User, rawURL string) (*domain.UploadResult, error) {
	s.detector.Inspect(rawURL)

	target, err := s.parser.Parse(rawURL)
	if err != nil {
		s.recorder.RecordBusiness(metricRejected, 1, map[string]string{"stage": "parse"})
		return nil, err
	}

	if verdict := s.validator.Validate(target); !verdict.Allowed {
		s.recorder.RecordBusiness(metricRejected, 1, map[string]string{
			"stage": "validate",
			"host":  target.Hostname,
		})
		return nil, verdict.Err()
	}

	// The pipeline outlives a disconnecting client but not the timeout.
	detached := context.WithoutCancel(ctx)
	pipelineCtx, cancel := context.WithTimeout(detached, s.timeout)
	defer cancel()

	reference, err := s.ingest(pipelineCtx, user, target)
	if err != nil {
		fallbackCtx, cancelFallback := context.WithTimeout(detached, fallbackTimeout)
		defer cancelFallback()
		return s.fallback(fallbackCtx, user, rawURL, err)
	}

	s.recorder.RecordBusiness(metricStored, 1, map[string]string{"host": target.Hostname})
	return &domain.UploadResult{
		Reference: reference,
		Outcome:   domain.OutcomePersisted,
	}, nil
}

func (s *ProfileImageService) ingest(ctx context.Context, user domain.User, target validation.ParsedURL) (string, error) {
	resp, err := s.fetcher.Fetch(ctx, target)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	reference, err := s.store.Save(ctx, user.ID, storage.ExtensionFor(target.Path), resp.Body)
	if err != nil {
		return "", err
	}

	if err := s.repo.UpdateProfileImage(ctx, user.ID, reference); err != nil {
		return "", fmt.Errorf("%w: %w", storage.ErrPersistFailed, err)
	}

	return reference, nil
}

func (s *ProfileImageService) fallback(ctx context.Context, user domain.User, rawURL string, cause error) (*domain.UploadResult, error) {
	if err := s.repo.UpdateProfileImage(ctx, user.ID, rawURL); err != nil {
		s.recorder.RecordBusiness(metricFailed, 1, map[string]string{"user_id": strconv.FormatUint(uint64(user.ID), 10)})
		return nil, fmt.Errorf("%w: %w", ErrFallbackFailed, err)
	}

	s.logger.Warn("error retrieving user profile image; using image link directly",
		slog.Uint64("user_id", uint64(user.ID)),
		slog.String("error", cause.Error()))
	s.recorder.RecordBusiness(metricFallback, 1, nil)

	return &domain.UploadResult{
		Reference: rawURL,
		Outcome:   domain.OutcomeFallbackStored,
		Cause:     cause,
	}, nil
}
