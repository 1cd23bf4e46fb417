package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"bookshelf-backend/internal/shared"
	"bookshelf-backend/pkg/logger"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
}

func NewScheduler(redis asynq.RedisClientOpt) *Scheduler {
	scheduler := asynq.NewScheduler(
		redis,
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{scheduler: scheduler}
}

func (s *Scheduler) RegisterCleanupJobs() error {
	return s.registerSweepOrphanImagesJob()
}

// Sweep orphaned image files daily at 3 AM. Deletes are best-effort during
// request handling, so files can leak when the worker misses a task; the
// sweep reconciles storage against the catalog.
func (s *Scheduler) registerSweepOrphanImagesJob() error {
	payload, err := json.Marshal(shared.SweepOrphanImagesPayload{})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypeSweepOrphanImages, payload)

	_, err = s.scheduler.Register(
		"0 3 * * *",
		task,
		asynq.Queue(shared.QueueMedia),
		asynq.MaxRetry(1),
		asynq.Timeout(10*time.Minute),
	)

	if err != nil {
		logger.Error("Failed to register SweepOrphanImages job", err)
		return err
	}

	logger.Info("Registered SweepOrphanImages: daily at 3 AM", map[string]interface{}{})
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Start()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
