package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/afero"
	"golang.org/x/net/netutil"

	"profileimage/internal/abuse"
	"profileimage/internal/cache"
	"profileimage/internal/config"
	"profileimage/internal/fetcher"
	"profileimage/internal/handler"
	"profileimage/internal/metrics"
	custommiddleware "profileimage/internal/middleware"
	"profileimage/internal/repository"
	"profileimage/internal/service"
	"profileimage/internal/storage"
	"profileimage/internal/validation"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(ctx, logger); err != nil {
		logger.Error("application failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	repo, err := repository.NewUserRepository(ctx, &cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	if err := repo.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	sessionCache, err := cache.New(cfg.Cache.MaxSizePow2, cfg.Cache.SessionTTL)
	if err != nil {
		return fmt.Errorf("failed to create cache: %w", err)
	}
	defer sessionCache.Close()

	recorder := metrics.NewRecorder(repo.Pool(), &cfg.Metrics, logger)
	recorder.Start(ctx)
	defer recorder.Close()

	go collectInfraMetrics(ctx, recorder, repo, sessionCache)

	allowlist := validation.NewAllowlist(cfg.Validation.AllowedHosts...)
	hostValidator := validation.NewHostValidator(allowlist)
	if allowlist.Len() == 0 {
		logger.Warn("image host allowlist is empty, every url upload will be rejected")
	}
	if cfg.Fetch.AllowPrivateIPs {
		logger.Warn("fetcher may dial private addresses", slog.Bool("allow_private_ips", true))
	}

	imageFetcher := fetcher.New(&cfg.Fetch, hostValidator, validation.NewIPValidator())
	persister := storage.NewPersister(afero.NewOsFs(), &cfg.Storage)
	detector := abuse.NewDetector(recorder, logger)

	imageService := service.NewProfileImageService(
		validation.NewParser(cfg.Validation.MaxURLLength),
		hostValidator,
		detector,
		imageFetcher,
		persister,
		repo,
		recorder,
		logger,
		cfg.Storage.OperationTimeout,
	)
	sessionService := service.NewSessionService(repo, sessionCache)
	h := handler.New(imageService, sessionService, logger, cfg.App.BasePath)

	logger.Info("profile image ingestion configured",
		slog.Any("allowed_hosts", allowlist.Hosts()),
		slog.String("upload_dir", cfg.Storage.UploadDir),
		slog.Duration("fetch_timeout", cfg.Fetch.Timeout),
		slog.Duration("operation_timeout", cfg.Storage.OperationTimeout))

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.BodyLimit(cfg.Validation.MaxRequestBodySize))
	e.Use(custommiddleware.Metrics(recorder, custommiddleware.PprofPrefix))

	h.Register(e, custommiddleware.RateLimit(&cfg.RateLimit, handler.SessionToken, logger))

	if cfg.Pprof.Enabled {
		custommiddleware.RegisterPprof(e, cfg.Pprof.Secret)
		logger.Info("pprof endpoints enabled", slog.String("path", custommiddleware.PprofPrefix+"/*"))
	}

	// Uploads may run for the operation timeout plus the fallback write.
	writeTimeout := cfg.Storage.OperationTimeout + 10*time.Second

	httpAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting HTTP server",
		slog.String("addr", httpAddr),
		slog.Int("max_connections", cfg.Server.MaxConnections))

	httpListener, err := net.Listen("tcp", httpAddr)
	if err != nil {
		return fmt.Errorf("failed to create HTTP listener: %w", err)
	}
	if cfg.Server.MaxConnections > 0 {
		httpListener = netutil.LimitListener(httpListener, cfg.Server.MaxConnections)
	}

	httpServer := &http.Server{
		Handler:        e,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   writeTimeout,
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 14, // 16KB
	}

	go func() {
		if err := httpServer.Serve(httpListener); err != nil && err != http.ErrServerClosed {
			logger.Error("http server error", slog.String("error", err.Error()))
		}
	}()

	var httpsServer *http.Server
	if cfg.TLS.Enabled {
		httpsAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.TLS.Port)
		logger.Info("starting HTTPS server",
			slog.String("addr", httpsAddr),
			slog.Int("max_connections", cfg.Server.MaxConnections))

		httpsListener, err := net.Listen("tcp", httpsAddr)
		if err != nil {
			return fmt.Errorf("failed to create HTTPS listener: %w", err)
		}
		if cfg.Server.MaxConnections > 0 {
			httpsListener = netutil.LimitListener(httpsListener, cfg.Server.MaxConnections)
		}

		cert, err := tls.LoadX509KeyPair(cfg.TLS.CertFile, cfg.TLS.KeyFile)
		if err != nil {
			return fmt.Errorf("failed to load TLS certificate: %w", err)
		}

		tlsListener := tls.NewListener(httpsListener, &tls.Config{
			MinVersion:             tls.VersionTLS13,
			Certificates:           []tls.Certificate{cert},
			CurvePreferences:       []tls.CurveID{tls.X25519},
			SessionTicketsDisabled: false,
		})

		httpsServer = &http.Server{
			Handler:        e,
			ReadTimeout:    5 * time.Second,
			WriteTimeout:   writeTimeout,
			IdleTimeout:    120 * time.Second,
			MaxHeaderBytes: 1 << 14, // 16KB
		}

		go func() {
			if err := httpsServer.Serve(tlsListener); err != nil && err != http.ErrServerClosed {
				logger.Error("https server error", slog.String("error", err.Error()))
			}
		}()
	}

	<-ctx.Done()
	logger.Info("shutting down servers", slog.Bool("ssrf_flag_raised", detector.Flagged()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}

	if httpsServer != nil {
		if err := httpsServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("https server shutdown failed: %w", err)
		}
	}

	return nil
}

func collectInfraMetrics(ctx context.Context, recorder *metrics.Recorder, repo *repository.UserRepository, sessionCache *cache.SessionCache) {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			poolStat := repo.Pool().Stat()
			hits, misses, ratio := sessionCache.Stats()

			var memStats runtime.MemStats
			runtime.ReadMemStats(&memStats)

			recorder.RecordInfra(metrics.InfraMetric{
				Time:              time.Now(),
				PoolAcquired:      int(poolStat.AcquiredConns()),
				PoolIdle:          int(poolStat.IdleConns()),
				PoolTotal:         int(poolStat.TotalConns()),
				PoolMax:           int(poolStat.MaxConns()),
				SessionCacheHits:  int64(hits),
				SessionCacheMiss:  int64(misses),
				SessionCacheRatio: ratio,
				Goroutines:        runtime.NumGoroutine(),
				HeapAllocMB:       float64(memStats.HeapAlloc) / 1024 / 1024,
			})
		}
	}
}
