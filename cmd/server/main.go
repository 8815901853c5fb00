package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"elevatehub/internal/auth"
	"elevatehub/internal/catalog"
	"elevatehub/internal/config"
	"elevatehub/internal/domain/models"
	"elevatehub/internal/domain/repositories"
	"elevatehub/internal/handler"
	"elevatehub/internal/middleware"
	"elevatehub/internal/nlp"
	"elevatehub/internal/repository/memory"
	"elevatehub/internal/repository/postgres"
	serviceAuth "elevatehub/internal/service/auth"
	"elevatehub/internal/service/chat"
	"elevatehub/internal/service/knowledge"
	"elevatehub/internal/service/knowledge/converter"
	serviceLLM "elevatehub/internal/service/llm"
	"elevatehub/internal/service/project"
	"elevatehub/internal/service/settings"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	logger, logCloser, err := config.NewLogger(cfg, os.Stdout, "server")
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logCloser.Close()
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	verifier, err := auth.NewVerifier(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to create JWT verifier: %v", err)
	}
	if verifier != nil {
		defer verifier.Close()
	} else if cfg.AuthRequired {
		log.Fatalf("AUTH_REQUIRED is set but neither JWKS_URL nor JWT_SECRET is configured")
	}

	// Repositories: postgres when DATABASE_URL is set, otherwise in-memory
	var sessionRepo repositories.SessionRepository
	var settingsRepo repositories.SettingsRepository
	var txManager repositories.TransactionManager
	database := "memory"
	if cfg.DatabaseURL != "" {
		pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to create connection pool: %v", err)
		}
		defer pool.Close()

		tables := postgres.NewTableNames(cfg.TablePrefix)
		if err := postgres.CreateSchema(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to create schema: %v", err)
		}
		repoConfig := &postgres.RepositoryConfig{
			Pool:   pool,
			Tables: tables,
			Logger: logger,
		}
		sessionRepo = postgres.NewSessionRepository(repoConfig)
		settingsRepo = postgres.NewSettingsRepository(repoConfig)
		txManager = postgres.NewTransactionManager(repoConfig)
		database = "postgres"
		logger.Info("database connected", "tables_prefix", cfg.TablePrefix)
	} else {
		store := memory.NewStore()
		sessionRepo = memory.NewSessionRepository(store, logger)
		settingsRepo = memory.NewSettingsRepository(store)
		txManager = memory.NewTransactionManager(store)
		logger.Warn("DATABASE_URL not set, sessions are kept in memory")
	}

	registry, err := catalog.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	// Knowledge base: built-in articles, overridden by files on disk
	sources := [][]models.KnowledgeEntry{registry.KnowledgeEntries()}
	if cfg.KnowledgeBasePath != "" {
		entries, err := knowledge.LoadDirectory(ctx, cfg.KnowledgeBasePath, converter.NewRegistry(), logger)
		if err != nil {
			log.Fatalf("Failed to load knowledge base: %v", err)
		}
		sources = append(sources, entries)
	}
	knowledgeService := knowledge.NewService(logger, sources...)
	logger.Info("knowledge base loaded", "entries", knowledgeService.Count())

	classifier := nlp.NewClassifier(registry.Intents(), logger)
	templates := nlp.NewTemplateGenerator(registry)
	generator, err := serviceLLM.SetupGenerator(cfg, templates, logger)
	if err != nil {
		log.Fatalf("Failed to set up response generator: %v", err)
	}

	chatService := chat.NewService(
		sessionRepo,
		classifier,
		nlp.NewAnalyzer(),
		chat.Generators{Primary: generator, Fallback: templates},
		knowledgeService,
		registry,
		cfg,
		logger,
	)
	projectService := project.NewService(registry, logger)
	settingsService := settings.NewService(settingsRepo, txManager, logger)
	authorizer := serviceAuth.NewOwnerBasedAuthorizer(sessionRepo)

	logger.Info("services initialized", "generator", generator.Name())

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, handler.Handlers{
		Status:    handler.NewStatusHandler(classifier, registry, knowledgeService, database),
		Chat:      handler.NewChatHandler(chatService, authorizer, logger),
		Knowledge: handler.NewKnowledgeHandler(knowledgeService, logger),
		Project:   handler.NewProjectHandler(projectService),
		Settings:  handler.NewSettingsHandler(settingsService, logger),
	})

	limiter := middleware.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)

	// Apply middleware in reverse order (they wrap each other)
	// Order: Recovery → RequestLogger → CORS → Auth → RateLimit → Routes
	var h http.Handler = mux
	h = middleware.RateLimit(limiter, logger)(h)
	h = middleware.Auth(verifier, cfg.AuthRequired, logger)(h)

	// CORS - Must be before auth to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	h = corsHandler.Handler(h)
	h = middleware.RequestLogger(logger)(h)
	h = middleware.Recovery(logger)(h)

	go chat.RunJanitor(ctx, chatService, cfg.SessionCleanupInterval, cfg.SessionRetention, logger)
	if limiter != nil {
		go pruneLimiter(ctx, limiter, cfg.RateLimitWindow)
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
	if n, err := chatService.Cleanup(shutdownCtx, cfg.SessionRetention); err != nil {
		logger.Error("final session cleanup failed", "error", err)
	} else {
		logger.Info("final session cleanup", "removed", n)
	}
}

// pruneLimiter drops idle rate limit buckets once per window
func pruneLimiter(ctx context.Context, limiter *middleware.RateLimiter, window time.Duration) {
	ticker := time.NewTicker(window)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			limiter.Prune()
		}
	}
}
