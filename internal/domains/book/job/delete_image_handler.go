package job

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"bookshelf-backend/internal/infrastructure/storage"
	"bookshelf-backend/internal/shared"
)

// DeleteImageHandler removes stale book image files (replaced on update or
// orphaned by a delete). Failures only ever surface in logs.
type DeleteImageHandler struct {
	store storage.MediaStore
}

func NewDeleteImageHandler(store storage.MediaStore) *DeleteImageHandler {
	return &DeleteImageHandler{store: store}
}

func (h *DeleteImageHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload shared.DeleteImagePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal DeleteImage payload")
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	for _, filename := range payload.Filenames {
		err := h.store.Delete(ctx, filename)
		if err == nil {
			log.Info().Str("filename", filename).Msg("Deleted image file")
			continue
		}

		if errors.Is(err, storage.ErrFileNotFound) {
			// Already gone; the delete is idempotent
			continue
		}

		log.Error().Err(err).Str("filename", filename).Msg("Failed to delete image file")
		return fmt.Errorf("delete %s: %w", filename, err)
	}

	return nil
}
