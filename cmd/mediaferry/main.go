package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/bnema/mediaferry/config"
	HTTPAdapter "github.com/bnema/mediaferry/internal/adapter/http"
	"github.com/bnema/mediaferry/internal/adapter/queue/asynqueue"
	sqlitestore "github.com/bnema/mediaferry/internal/adapter/storage/sqlite"
	"github.com/bnema/mediaferry/internal/adapter/telegram"
	"github.com/bnema/mediaferry/internal/adapter/tmdb"
	"github.com/bnema/mediaferry/internal/infrastructure/logger"
	"github.com/bnema/mediaferry/internal/infrastructure/tracing"
	"github.com/bnema/mediaferry/internal/port"
	"github.com/bnema/mediaferry/internal/service"
)

const serviceName = "mediaferry"

// queueBackend is whichever queue implementation the config selected.
type queueBackend struct {
	queue     port.TaskQueue
	inspector port.QueueInspector
	stop      func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error.Printf("failed to load config: %v", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.LogLevel); err != nil {
		logger.Error.Printf("failed to init logger: %v", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info.Printf("starting %s on port %d, queue=%s, media root=%s", serviceName, cfg.Port, cfg.QueueBackend, cfg.MediaRoot)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTracer, err := tracing.InitTracer(ctx, cfg.OTLPEndpoint, serviceName)
	if err != nil {
		logger.Error.Printf("failed to init tracing: %v", err)
		os.Exit(1)
	}

	bot, err := telegram.NewClient(cfg.BotToken, cfg.BotAPIEndpoint)
	if err != nil {
		logger.Error.Printf("failed to connect to telegram: %v", err)
		os.Exit(1)
	}

	roots := service.PathRoots{
		Base:       cfg.MediaRoot,
		Movies:     cfg.MoviesRoot(),
		Shows:      cfg.ShowsRoot(),
		General:    cfg.GeneralRoot(),
		HostPrefix: cfg.HostMediaPrefix,
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB})
		defer func() { _ = rdb.Close() }()
	}

	var lookup port.TitleLookup = tmdb.NewClient(cfg.TMDBBaseURL, cfg.TMDBToken, &http.Client{Timeout: cfg.LookupTimeout})
	if rdb != nil && cfg.TitleCacheTTL > 0 {
		lookup = tmdb.NewCachedLookup(lookup, rdb, cfg.TitleCacheTTL)
	}
	if cfg.UseClassifier && cfg.TMDBToken == "" {
		logger.Warn.Printf("classifier enabled without TMDB_API_TOKEN, non-latin titles will not be resolved")
	}

	pending := service.NewPendingJobStore(cfg.PendingTTL)
	sweeper, err := service.NewSweeper(cfg.SweepSchedule, pending)
	if err != nil {
		logger.Error.Printf("failed to create sweeper: %v", err)
		os.Exit(1)
	}

	classifier := service.NewClassifier(lookup, roots, cfg.UseClassifier, cfg.LookupTimeout)
	materializer := service.NewMaterializer(bot, &http.Client{}, cfg.BotAPIDataDir, cfg.SharedFilesDir)
	handlers := service.NewTaskHandlers(classifier, pending, bot, materializer, roots)
	eventBus := service.NewEventBus()
	notifier := service.NewNotifier(eventBus, bot)
	policy := service.NewRetryPolicy(cfg.QueueMaxAttempts, cfg.QueueBackoff)

	notifierDone := make(chan struct{})
	go func() {
		notifier.Run(ctx)
		close(notifierDone)
	}()

	backend, err := startQueue(ctx, cfg, handlers, eventBus, policy)
	if err != nil {
		logger.Error.Printf("failed to start queue: %v", err)
		os.Exit(1)
	}

	confirmation := service.NewConfirmationService(pending, backend.queue, bot, roots)
	server := HTTPAdapter.NewServer(confirmation, backend.inspector)

	sweeper.Start()

	if cfg.WebhookURL != "" {
		if err := bot.EnsureWebhook(cfg.WebhookURL); err != nil {
			logger.Error.Printf("webhook bootstrap failed: %v", err)
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info.Printf("received %s, shutting down", sig)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error.Printf("http shutdown error: %v", err)
		}

		sweeper.Stop()
		// In-flight tasks finish before the notifier goes away.
		backend.stop()
		cancel()
		<-notifierDone

		if err := shutdownTracer(shutdownCtx); err != nil {
			logger.Error.Printf("tracer shutdown error: %v", err)
		}
		logger.Info.Printf("shutdown complete")
	}()

	logger.Info.Printf("server listening on %s", addr)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error.Printf("server failed: %v", err)
		os.Exit(1)
	}
	<-notifierDone
}

func startQueue(
	ctx context.Context,
	cfg *config.Config,
	processor port.TaskProcessor,
	events port.EventPublisher,
	policy service.RetryPolicy,
) (*queueBackend, error) {
	if cfg.QueueBackend == "redis" {
		opt := asynq.RedisClientOpt{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB}
		queue := asynqueue.NewQueue(opt, cfg.QueueMaxAttempts)
		runner := asynqueue.NewRunner(opt, asynqueue.RunnerConfig{
			Concurrency: cfg.WorkerCount,
			Backoff:     policy.Backoff.Duration,
		}, processor, events)
		if err := runner.Start(); err != nil {
			_ = queue.Close()
			return nil, err
		}
		return &queueBackend{
			queue:     queue,
			inspector: queue,
			stop: func() {
				runner.Shutdown()
				_ = queue.Close()
			},
		}, nil
	}

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	store, err := sqlitestore.NewStore(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("open task store: %w", err)
	}
	tasks := sqlitestore.NewTaskStore(store, cfg.QueueMaxAttempts)

	workerCtx, workerCancel := context.WithCancel(ctx)
	pool := service.NewWorkerPool(tasks, processor, events, policy, cfg.WorkerCount)
	pool.Start(workerCtx)

	return &queueBackend{
		queue:     tasks,
		inspector: tasks,
		stop: func() {
			workerCancel()
			pool.Wait()
			_ = store.Close()
		},
	}, nil
}
