package main

import (
	"strconv"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"bookshelf-backend/internal/shared/utils"
)

// Config holds the worker's own settings; everything else comes from the
// shared container.
type Config struct {
	// Redis must match what the API's enqueue client connects to, or the
	// worker never sees the tasks.
	Redis asynq.RedisClientOpt
}

func loadConfig() *Config {
	db, err := strconv.Atoi(utils.GetEnvVariable("REDIS_DB", "0"))
	if err != nil {
		db = 0
	}

	cfg := &Config{
		Redis: asynq.RedisClientOpt{
			Addr:     utils.GetEnvVariable("REDIS_HOST", "localhost:6379"),
			Password: utils.GetEnvVariable("REDIS_PASSWORD", ""),
			DB:       db,
		},
	}

	log.Info().Str("redis", cfg.Redis.Addr).Int("db", cfg.Redis.DB).Msg("Worker config loaded")

	return cfg
}
