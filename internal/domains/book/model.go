package book

import (
	"time"

	"github.com/google/uuid"
)

// Book is the catalog entry entity. PublishYear stays textual: the API
// accepts numeric or textual year values and never validates the format.
// Image is the public URL of the stored cover, empty when none was uploaded.
type Book struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Author      string    `db:"author" json:"author"`
	PublishYear string    `db:"publish_year" json:"publishYear"`
	Image       string    `db:"image" json:"image"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
