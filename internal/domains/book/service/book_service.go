package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"bookshelf-backend/internal/domains/book"
	"bookshelf-backend/internal/infrastructure/storage"
	"bookshelf-backend/internal/shared"
)

// TaskEnqueuer is the slice of asynq.Client the service needs. *asynq.Client
// satisfies it; tests inject a fake.
type TaskEnqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// BookService implements book.Service.
type BookService struct {
	repo      book.Repository
	store     storage.MediaStore
	processor *storage.ImageProcessor
	tasks     TaskEnqueuer
}

// NewService wires the catalog service with its collaborators.
func NewService(
	repo book.Repository,
	store storage.MediaStore,
	processor *storage.ImageProcessor,
	tasks TaskEnqueuer,
) book.Service {
	return &BookService{
		repo:      repo,
		store:     store,
		processor: processor,
		tasks:     tasks,
	}
}

func (s *BookService) Create(ctx context.Context, req book.BookRequest, image *book.UploadedImage) (*book.Book, error) {
	// Handler validates first; double-check so the service never persists
	// a record with missing required fields.
	if err := req.Validate(); err != nil {
		return nil, err
	}

	imageURL := ""
	if image != nil {
		url, err := s.saveImage(ctx, image)
		if err != nil {
			return nil, err
		}
		imageURL = url
	}

	now := time.Now()
	b := &book.Book{
		ID:          uuid.New(),
		Title:       req.Title,
		Author:      req.Author,
		PublishYear: req.PublishYear,
		Image:       imageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}

	return b, nil
}

func (s *BookService) List(ctx context.Context) ([]book.Book, error) {
	books, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

func (s *BookService) Get(ctx context.Context, id string) (*book.Book, error) {
	bookID, err := uuid.Parse(id)
	if err != nil {
		// An unparseable id cannot match any record
		return nil, book.ErrBookNotFound
	}

	return s.repo.FindByID(ctx, bookID)
}

func (s *BookService) Update(ctx context.Context, id string, req book.BookRequest, image *book.UploadedImage) (*book.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	bookID, err := uuid.Parse(id)
	if err != nil {
		return nil, book.ErrBookNotFound
	}

	existing, err := s.repo.FindByID(ctx, bookID)
	if err != nil {
		return nil, err
	}

	imageURL := existing.Image
	if image != nil {
		url, err := s.saveImage(ctx, image)
		if err != nil {
			return nil, err
		}

		// Best-effort cleanup of the replaced file; never blocks the update
		if existing.Image != "" {
			s.enqueueImageDelete(existing.Image)
		}

		imageURL = url
	}

	existing.Title = req.Title
	existing.Author = req.Author
	existing.PublishYear = req.PublishYear
	existing.Image = imageURL
	existing.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("update book: %w", err)
	}

	return existing, nil
}

func (s *BookService) Delete(ctx context.Context, id string) error {
	bookID, err := uuid.Parse(id)
	if err != nil {
		return book.ErrBookNotFound
	}

	existing, err := s.repo.FindByID(ctx, bookID)
	if err != nil {
		return err
	}

	if existing.Image != "" {
		s.enqueueImageDelete(existing.Image)
	}

	if err := s.repo.Delete(ctx, bookID); err != nil {
		return fmt.Errorf("delete book: %w", err)
	}

	return nil
}

// Export renders the whole catalog as a single-sheet xlsx workbook.
func (s *BookService) Export(ctx context.Context) ([]byte, error) {
	books, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("export books: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Books"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Title", "Author", "Publish Year", "Image URL", "Created At"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, b := range books {
		values := []interface{}{
			b.ID.String(),
			b.Title,
			b.Author,
			b.PublishYear,
			b.Image,
			b.CreatedAt.Format(time.RFC3339),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	return buf.Bytes(), nil
}

// saveImage validates the upload, stores the original under a generated
// name and stores a thumbnail variant alongside it. A thumbnail failure is
// logged but does not fail the upload.
func (s *BookService) saveImage(ctx context.Context, image *book.UploadedImage) (string, error) {
	if err := s.processor.Validate(image.Data); err != nil {
		return "", err
	}

	filename := storage.NewFilename(image.Filename)

	url, err := s.store.Save(ctx, filename, image.Data, http.DetectContentType(image.Data))
	if err != nil {
		return "", fmt.Errorf("store image: %w", err)
	}

	thumb, err := s.processor.Thumbnail(image.Data)
	if err != nil {
		log.Warn().Err(err).Str("filename", filename).Msg("Thumbnail generation failed")
		return url, nil
	}

	if _, err := s.store.Save(ctx, storage.ThumbnailName(filename), thumb, "image/jpeg"); err != nil {
		log.Warn().Err(err).Str("filename", filename).Msg("Thumbnail store failed")
	}

	return url, nil
}

// enqueueImageDelete hands stale files to the worker. Failures are logged
// only: stale files are an acceptable cost versus blocking the operation,
// and the daily sweep reconciles them anyway.
func (s *BookService) enqueueImageDelete(imageURL string) {
	filename := storage.FilenameFromURL(imageURL)
	if filename == "" {
		return
	}

	payload, err := json.Marshal(shared.DeleteImagePayload{
		Filenames: []string{filename, storage.ThumbnailName(filename)},
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal DeleteImage payload")
		return
	}

	task := asynq.NewTask(shared.TypeDeleteImage, payload)
	if _, err := s.tasks.Enqueue(task, asynq.Queue(shared.QueueMedia), asynq.MaxRetry(2)); err != nil {
		log.Error().Err(err).Str("filename", filename).Msg("Failed to enqueue image delete")
	}
}
