package book

import "context"

// Service is the business logic contract for the catalog.
type Service interface {
	Create(ctx context.Context, req BookRequest, image *UploadedImage) (*Book, error)
	List(ctx context.Context) ([]Book, error)
	Get(ctx context.Context, id string) (*Book, error)
	Update(ctx context.Context, id string, req BookRequest, image *UploadedImage) (*Book, error)
	Delete(ctx context.Context, id string) error

	// Export renders the whole catalog as an xlsx workbook.
	Export(ctx context.Context) ([]byte, error)
}
