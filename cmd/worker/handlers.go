package main

import (
	"github.com/hibiken/asynq"

	bookJob "bookshelf-backend/internal/domains/book/job"
	"bookshelf-backend/internal/shared"
	"bookshelf-backend/pkg/container"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	deleteImage *bookJob.DeleteImageHandler
	sweepOrphan *bookJob.SweepOrphansHandler
}

// initializeHandlers creates all job handlers with their dependencies
func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		deleteImage: bookJob.NewDeleteImageHandler(c.MediaStore),
		sweepOrphan: bookJob.NewSweepOrphansHandler(c.BookRepo, c.MediaStore),
	}
}

// RegisterHandlers attaches every handler to its task type
func (r *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.Handle(shared.TypeDeleteImage, r.deleteImage)
	mux.Handle(shared.TypeSweepOrphanImages, r.sweepOrphan)
}
