package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/ewilliams-labs/moodmix/internal/adapters/emotion"
	"github.com/ewilliams-labs/moodmix/internal/adapters/rest"
	"github.com/ewilliams-labs/moodmix/internal/adapters/spotify"
	"github.com/ewilliams-labs/moodmix/internal/config"
	"github.com/ewilliams-labs/moodmix/internal/core/domain"
	"github.com/ewilliams-labs/moodmix/internal/core/ports"
	"github.com/ewilliams-labs/moodmix/internal/core/services"
	"github.com/ewilliams-labs/moodmix/internal/logging"
	"github.com/ewilliams-labs/moodmix/internal/worker"
)

func main() {
	// 1. Configuration: .env (optional), config file, environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logging.Warn().Err(err).Msg("could not parse .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("invalid configuration")
	}
	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})

	// 2. Driven adapters
	spotifyClient := spotify.NewClient(cfg.Spotify.ClientID, cfg.Spotify.ClientSecret,
		spotify.WithBaseURL(cfg.Spotify.APIURL),
		spotify.WithTokenURL(cfg.Spotify.TokenURL),
		spotify.WithTimeout(cfg.Spotify.Timeout),
		spotify.WithRateLimit(cfg.Spotify.RateLimit),
		spotify.WithBreaker(cfg.Spotify.BreakerFailures, cfg.Spotify.BreakerTimeout),
	)

	var estimator ports.EmotionEstimator
	if cfg.Emotion.URL != "" {
		estimator = emotion.NewClient(cfg.Emotion.URL, cfg.Emotion.Timeout)
		logging.Info().Str("url", cfg.Emotion.URL).Msg("emotion estimator enabled")
	} else {
		logging.Info().Msg("emotion estimator disabled, using colour heuristic only")
	}

	// 3. Core services
	svc := services.NewOrchestrator(spotifyClient, estimator, services.Options{
		PoolSize: cfg.Pipeline.PoolSize,
		Shuffler: services.NewShuffler(cfg.Pipeline.ShuffleSeed),
	})
	diag := services.NewDiagnostics(spotifyClient, spotifyClient)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Warmup.Enabled {
		pool := worker.NewPool(spotifyClient, cfg.Warmup.QueueSize)
		pool.Start(ctx, cfg.Warmup.Workers)
		defer pool.Stop()
		queued := pool.WarmSeeds(domain.DefaultSeeds())
		logging.Info().Int("jobs", queued).Int("workers", cfg.Warmup.Workers).Msg("artist warm-up started")
	}

	// 4. Driving adapter
	handler := rest.NewHandler(svc, diag, rest.Config{
		CORSOrigins:       cfg.Server.CORSOrigins,
		RateLimitRequests: cfg.Server.RateLimitRequests,
		RateLimitWindow:   cfg.Server.RateLimitWindow,
		MaxUploadBytes:    cfg.Server.MaxUploadBytes,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", srv.Addr).Msg("moodmix api listening")
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			logging.Fatal().Err(err).Msg("server failed")
		}
	case <-ctx.Done():
		logging.Info().Msg("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logging.Error().Err(err).Msg("shutdown error")
		}
	}
}
