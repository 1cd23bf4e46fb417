package job

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf-backend/internal/domains/book"
	"bookshelf-backend/internal/infrastructure/storage"
	"bookshelf-backend/internal/shared"
)

type fakeStore struct {
	files map[string][]byte
}

func newFakeStore(names ...string) *fakeStore {
	s := &fakeStore{files: make(map[string][]byte)}
	for _, n := range names {
		s.files[n] = []byte("data")
	}
	return s
}

func (s *fakeStore) Save(_ context.Context, filename string, data []byte, _ string) (string, error) {
	s.files[filename] = data
	return "http://localhost:3000/uploads/" + filename, nil
}

func (s *fakeStore) Open(_ context.Context, filename string) ([]byte, string, error) {
	data, ok := s.files[filename]
	if !ok {
		return nil, "", storage.ErrFileNotFound
	}
	return data, "application/octet-stream", nil
}

func (s *fakeStore) Delete(_ context.Context, filename string) error {
	if _, ok := s.files[filename]; !ok {
		return storage.ErrFileNotFound
	}
	delete(s.files, filename)
	return nil
}

func (s *fakeStore) List(_ context.Context) ([]string, error) {
	names := make([]string, 0, len(s.files))
	for n := range s.files {
		names = append(names, n)
	}
	return names, nil
}

type fakeRepo struct {
	urls []string
}

func (r *fakeRepo) Create(context.Context, *book.Book) error { return nil }
func (r *fakeRepo) FindAll(context.Context) ([]book.Book, error) {
	return nil, nil
}
func (r *fakeRepo) FindByID(context.Context, uuid.UUID) (*book.Book, error) {
	return nil, book.ErrBookNotFound
}
func (r *fakeRepo) Update(context.Context, *book.Book) error      { return book.ErrBookNotFound }
func (r *fakeRepo) Delete(context.Context, uuid.UUID) error       { return book.ErrBookNotFound }
func (r *fakeRepo) ListImageURLs(context.Context) ([]string, error) {
	return r.urls, nil
}

func deleteTask(t *testing.T, filenames ...string) *asynq.Task {
	t.Helper()

	payload, err := json.Marshal(shared.DeleteImagePayload{Filenames: filenames})
	require.NoError(t, err)
	return asynq.NewTask(shared.TypeDeleteImage, payload)
}

func TestDeleteImageHandler(t *testing.T) {
	store := newFakeStore("a.png", "a_thumb.jpg", "keep.png")
	h := NewDeleteImageHandler(store)

	err := h.ProcessTask(context.Background(), deleteTask(t, "a.png", "a_thumb.jpg"))
	require.NoError(t, err)

	names, _ := store.List(context.Background())
	assert.ElementsMatch(t, []string{"keep.png"}, names)
}

func TestDeleteImageHandler_MissingFileIsFine(t *testing.T) {
	store := newFakeStore("keep.png")
	h := NewDeleteImageHandler(store)

	err := h.ProcessTask(context.Background(), deleteTask(t, "already-gone.png"))
	assert.NoError(t, err)
}

func TestDeleteImageHandler_BadPayload(t *testing.T) {
	h := NewDeleteImageHandler(newFakeStore())

	err := h.ProcessTask(context.Background(), asynq.NewTask(shared.TypeDeleteImage, []byte("{broken")))
	assert.Error(t, err)
}

func TestSweepOrphansHandler(t *testing.T) {
	store := newFakeStore("ref.png", "ref_thumb.jpg", "orphan.png", "orphan_thumb.jpg")
	repo := &fakeRepo{urls: []string{"http://localhost:3000/uploads/ref.png"}}
	h := NewSweepOrphansHandler(repo, store)

	task := asynq.NewTask(shared.TypeSweepOrphanImages, nil)
	require.NoError(t, h.ProcessTask(context.Background(), task))

	names, _ := store.List(context.Background())
	assert.ElementsMatch(t, []string{"ref.png", "ref_thumb.jpg"}, names)
}

func TestSweepOrphansHandler_NothingReferenced(t *testing.T) {
	store := newFakeStore("orphan.png")
	h := NewSweepOrphansHandler(&fakeRepo{}, store)

	task := asynq.NewTask(shared.TypeSweepOrphanImages, nil)
	require.NoError(t, h.ProcessTask(context.Background(), task))

	names, _ := store.List(context.Background())
	assert.Empty(t, names)
}
