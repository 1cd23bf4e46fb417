package shared

// Task types processed by the worker binary
const (
	TypeDeleteImage       = "media:delete_image"
	TypeSweepOrphanImages = "media:sweep_orphans"
)

// Queue names with worker priorities (see cmd/worker)
const (
	QueueDefault = "default"
	QueueMedia   = "media"
)

// DeleteImagePayload carries the stored filenames to remove. Thumbnails are
// listed explicitly so the handler never has to guess variant names.
type DeleteImagePayload struct {
	Filenames []string `json:"filenames"`
}

// SweepOrphanImagesPayload is empty; the job recomputes the referenced set
// from the database on every run.
type SweepOrphanImagesPayload struct{}
