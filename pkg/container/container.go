package container

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"bookshelf-backend/internal/config"
	"bookshelf-backend/internal/infrastructure/cache"
	"bookshelf-backend/internal/infrastructure/database"
	"bookshelf-backend/internal/infrastructure/storage"
	"bookshelf-backend/pkg/jwt"

	"bookshelf-backend/internal/domains/book"
	bookHandler "bookshelf-backend/internal/domains/book/handler"
	bookRepo "bookshelf-backend/internal/domains/book/repository"
	bookService "bookshelf-backend/internal/domains/book/service"
	"bookshelf-backend/internal/domains/user"
	userHandler "bookshelf-backend/internal/domains/user/handler"
	userRepo "bookshelf-backend/internal/domains/user/repository"
	userService "bookshelf-backend/internal/domains/user/service"
)

// Container is the root of the dependency graph. Every component is a
// singleton wired once at startup; handlers and services stay stateless.
type Container struct {
	// Infrastructure
	Config      *config.Config
	DB          *database.PostgresDB
	Cache       *cache.RedisClient
	MediaStore  storage.MediaStore
	Processor   *storage.ImageProcessor
	AsynqClient *asynq.Client
	JWTManager  *jwt.Manager

	// Repositories
	BookRepo book.Repository
	UserRepo user.Repository

	// Services
	BookService book.Service
	UserService user.Service

	// Handlers
	BookHandler *bookHandler.Handler
	UserHandler *userHandler.UserHandler
}

// NewContainer initializes every dependency; any failure aborts startup.
func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// Database
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := db.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	// Redis backs the asynq queue; connect failure is non-fatal so the
	// API keeps serving when the broker is down (deletes degrade to the
	// daily sweep).
	redisClient := cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisClient.Connect(ctx); err != nil {
		log.Warn().Err(err).Msg("Redis unavailable; background cleanup degraded")
	}

	// Media store
	store, err := newMediaStore(cfg)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init media store: %w", err)
	}

	processor := storage.NewImageProcessor(cfg.Storage.MaxUploadBytes)

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	jwtManager := jwt.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)

	// Repositories
	bookRepository := bookRepo.NewPostgresRepository(db.Pool)
	userRepository := userRepo.NewPostgresRepository(db.Pool)

	// Services
	bookSvc := bookService.NewService(bookRepository, store, processor, asynqClient)
	userSvc := userService.NewUserService(userRepository, jwtManager)

	return &Container{
		Config:      cfg,
		DB:          db,
		Cache:       redisClient,
		MediaStore:  store,
		Processor:   processor,
		AsynqClient: asynqClient,
		JWTManager:  jwtManager,
		BookRepo:    bookRepository,
		UserRepo:    userRepository,
		BookService: bookSvc,
		UserService: userSvc,
		BookHandler: bookHandler.NewHandler(bookSvc),
		UserHandler: userHandler.NewUserHandler(userSvc),
	}, nil
}

func newMediaStore(cfg *config.Config) (storage.MediaStore, error) {
	switch cfg.Storage.Backend {
	case "minio":
		return storage.NewMinIOStorage(cfg.MinIO)
	default:
		return storage.NewLocalStorage(cfg.Storage.LocalDir, cfg.App.PublicBaseURL)
	}
}

// Cleanup releases every held connection; deferred from main.
func (c *Container) Cleanup() {
	if c.AsynqClient != nil {
		if err := c.AsynqClient.Close(); err != nil {
			log.Warn().Err(err).Msg("Asynq client close failed")
		}
	}

	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			log.Warn().Err(err).Msg("Redis close failed")
		}
	}

	if c.DB != nil {
		c.DB.Close()
	}
}
