package job

import (
	"context"
	"errors"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"bookshelf-backend/internal/domains/book"
	"bookshelf-backend/internal/infrastructure/storage"
)

// SweepOrphansHandler reconciles the media store against the catalog:
// any stored file not referenced by a book record (directly or as its
// thumbnail variant) gets deleted. Runs on the daily schedule.
type SweepOrphansHandler struct {
	repo  book.Repository
	store storage.MediaStore
}

func NewSweepOrphansHandler(repo book.Repository, store storage.MediaStore) *SweepOrphansHandler {
	return &SweepOrphansHandler{repo: repo, store: store}
}

func (h *SweepOrphansHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	urls, err := h.repo.ListImageURLs(ctx)
	if err != nil {
		return err
	}

	referenced := make(map[string]struct{}, len(urls)*2)
	for _, u := range urls {
		filename := storage.FilenameFromURL(u)
		if filename == "" {
			continue
		}
		referenced[filename] = struct{}{}
		referenced[storage.ThumbnailName(filename)] = struct{}{}
	}

	stored, err := h.store.List(ctx)
	if err != nil {
		return err
	}

	removed := 0
	for _, filename := range stored {
		if _, ok := referenced[filename]; ok {
			continue
		}

		if err := h.store.Delete(ctx, filename); err != nil {
			if errors.Is(err, storage.ErrFileNotFound) {
				continue
			}
			log.Error().Err(err).Str("filename", filename).Msg("Failed to sweep orphaned file")
			continue
		}
		removed++
	}

	log.Info().
		Int("stored", len(stored)).
		Int("referenced", len(referenced)).
		Int("removed", removed).
		Msg("Orphaned image sweep complete")

	return nil
}
