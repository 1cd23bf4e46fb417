package main

import (
	"github.com/rs/zerolog/log"

	"bookshelf-backend/internal/infrastructure/queue"
)

// asynqScheduler wraps queue.Scheduler with startup/shutdown logging
type asynqScheduler struct {
	*queue.Scheduler
}

func setupScheduler(cfg *Config) *asynqScheduler {
	scheduler := queue.NewScheduler(cfg.Redis)

	if err := scheduler.RegisterCleanupJobs(); err != nil {
		log.Fatal().Err(err).Msg("Failed to register scheduled jobs")
	}

	go func() {
		log.Info().Msg("Scheduler starting...")
		if err := scheduler.Start(); err != nil {
			log.Fatal().Err(err).Msg("Scheduler failed")
		}
	}()

	return &asynqScheduler{Scheduler: scheduler}
}

func (s *asynqScheduler) Shutdown() {
	log.Info().Msg("Scheduler shutting down...")
	s.Scheduler.Shutdown()
}
