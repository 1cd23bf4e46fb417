package book

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// BookRequest carries the form fields of create and update. All three are
// required; anything beyond presence is deliberately not checked.
type BookRequest struct {
	Title       string `form:"title"`
	Author      string `form:"author"`
	PublishYear string `form:"publishYear"`
}

func (r BookRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Author, validation.Required),
		validation.Field(&r.PublishYear, validation.Required),
	)
	if err != nil {
		return ErrMissingFields
	}
	return nil
}

// UploadedImage is the optional image file attached to create/update.
type UploadedImage struct {
	Filename string
	Data     []byte
}

// ListBooksResponse is the wire shape of GET /books.
type ListBooksResponse struct {
	Count int    `json:"count"`
	Data  []Book `json:"data"`
}

// UpdateBookResponse is the wire shape of PUT /books/:id.
type UpdateBookResponse struct {
	Message string `json:"message"`
	Book    *Book  `json:"book"`
}
