package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"elevatehub/internal/auth"
	"elevatehub/internal/catalog"
	"elevatehub/internal/config"
	"elevatehub/internal/domain/models"
	"elevatehub/internal/nlp"
	"elevatehub/internal/repository/postgres"
	"elevatehub/internal/service/chat"
	"elevatehub/internal/service/knowledge"
	"elevatehub/internal/service/settings"

	"github.com/joho/godotenv"
)

// seedPrompts open the demo user's first session
var seedPrompts = []string{
	"Hi! I just joined the Insurance project.",
	"How do I start my onboarding?",
	"Who should I contact for questions about claims processing?",
}

func main() {
	dropTables := flag.Bool("drop-tables", false, "Drop all tables before seeding (fresh start)")
	schemaOnly := flag.Bool("schema-only", false, "Only set up schema, don't seed data")
	clearData := flag.Bool("clear-data", false, "Clear all sessions and settings (keep schema)")
	seedUser := flag.String("user", "demo-user", "User that owns the seeded session and settings")
	tokenFor := flag.String("token-for", "", "Print a development JWT for this user (needs JWT_SECRET) and exit")
	tokenTTL := flag.Duration("token-ttl", 24*time.Hour, "Lifetime of the token printed by -token-for")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()

	if *tokenFor != "" {
		token, err := auth.IssueToken(cfg.JWTSecret, *tokenFor, *tokenTTL)
		if err != nil {
			log.Fatalf("Failed to issue token: %v", err)
		}
		fmt.Println(token)
		return
	}

	// SAFETY: Prevent destructive operations in production
	if cfg.Environment == "prod" && (*dropTables || *clearData) {
		log.Fatalf("BLOCKED: Cannot run destructive operations (--drop-tables or --clear-data) in production environment")
	}
	if cfg.DatabaseURL == "" {
		log.Fatalf("DATABASE_URL is required")
	}

	logger, logCloser, err := config.NewLogger(cfg, os.Stdout, "seed")
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logCloser.Close()

	switch {
	case *clearData:
		log.Printf("Clearing data only (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)
	case *schemaOnly:
		log.Printf("Setting up schema only (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)
	default:
		log.Printf("Seeding database (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)
	}

	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	tables := postgres.NewTableNames(cfg.TablePrefix)

	if *dropTables {
		log.Println("Dropping all tables...")
		if err := postgres.DropSchema(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
	}

	log.Println("Ensuring database schema is up to date...")
	if err := postgres.CreateSchema(ctx, pool, tables); err != nil {
		log.Fatalf("Failed to run schema: %v", err)
	}

	if *schemaOnly {
		log.Println("Schema setup complete (schema-only mode)")
		return
	}

	if *clearData {
		if err := postgres.ClearData(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to clear data: %v", err)
		}
		log.Println("Data cleared successfully")
		return
	}

	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}

	registry, err := catalog.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	templates := nlp.NewTemplateGenerator(registry)
	chatService := chat.NewService(
		postgres.NewSessionRepository(repoConfig),
		nlp.NewClassifier(registry.Intents(), logger),
		nlp.NewAnalyzer(),
		chat.Generators{Primary: templates},
		knowledge.NewService(logger, registry.KnowledgeEntries()),
		registry,
		cfg,
		logger,
	)

	// One session per run; the service trims the user's oldest beyond the cap
	var sessionID string
	for i, prompt := range seedPrompts {
		resp, err := chatService.SendMessage(ctx, &models.ChatRequest{
			Message:   prompt,
			SessionID: sessionID,
			UserID:    *seedUser,
			Context:   models.JSONMap{"project_id": registry.DefaultProject()},
		})
		if err != nil {
			log.Fatalf("Failed to seed message %d: %v", i+1, err)
		}
		sessionID = resp.SessionID
		log.Printf("Seeded message %d/%d (intent: %s)", i+1, len(seedPrompts), resp.Intent)
	}

	settingsService := settings.NewService(
		postgres.NewSettingsRepository(repoConfig),
		postgres.NewTransactionManager(repoConfig),
		logger,
	)
	if _, err := settingsService.Save(ctx, *seedUser, models.DefaultSettings()); err != nil {
		log.Fatalf("Failed to seed settings: %v", err)
	}

	log.Printf("Seeding complete! user=%s session=%s", *seedUser, sessionID)
}
