package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	_ "github.com/staffdesk/employee-task-api/docs"
	"github.com/staffdesk/employee-task-api/internal/api"
	"github.com/staffdesk/employee-task-api/internal/core/domain"
	"github.com/staffdesk/employee-task-api/internal/infrastructure/config"
	mongodb "github.com/staffdesk/employee-task-api/internal/infrastructure/db/mongo"
	redisdb "github.com/staffdesk/employee-task-api/internal/infrastructure/db/redis"
	"github.com/staffdesk/employee-task-api/pkg/logger"
)

// @title Employee Task API
// @version 1.0
// @description REST API for managing employees and their tasks, with JWT and API key authentication.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		fallback := logger.Init(logger.Options{})
		fallback.Fatal().Err(err).Msg("load config")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect mongo")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongo disconnect")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect redis")
	}
	defer func() { _ = rdb.Close() }()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes")
	}

	if cfg.SeedUsers {
		if err := seedDefaultUsers(ctx, db, log); err != nil {
			log.Fatal().Err(err).Msg("seed default users")
		}
	}

	e := api.NewRouter(db, rdb, cfg, log)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting http server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewEmployeeRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongodb.NewTaskRepository(db).EnsureIndexes(ctx)
}

// seedDefaultUsers creates the demo accounts when the user collection is
// empty. It never overwrites existing accounts.
func seedDefaultUsers(ctx context.Context, db *mongo.Database, log zerolog.Logger) error {
	users := mongodb.NewUserRepository(db)

	count, err := users.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Debug().Int64("users", count).Msg("seed skipped, users already exist")
		return nil
	}

	seeds := []struct {
		username, email, fullName, password string
		role                                domain.Role
	}{
		{"admin", "admin@example.com", "Admin User", "admin123", domain.RoleAdmin},
		{"client", "client@example.com", "Client User", "client123", domain.RoleClient},
		{"demoadmin", "demoadmin@example.com", "Demo Admin", "demo123", domain.RoleAdmin},
	}

	for _, s := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		now := time.Now().UTC()
		if _, err := users.Create(ctx, &domain.User{
			ID:           uuid.NewString(),
			Username:     s.username,
			Email:        s.email,
			FullName:     s.fullName,
			PasswordHash: string(hash),
			Role:         s.role,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}); err != nil {
			return err
		}
		log.Info().Str("username", s.username).Str("role", string(s.role)).Msg("seeded default user")
	}
	return nil
}
