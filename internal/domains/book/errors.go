package book

import "errors"

var (
	// ErrBookNotFound maps to 404.
	ErrBookNotFound = errors.New("Book not found")

	// ErrMissingFields maps to 400. The message mirrors the API contract
	// for create and update.
	ErrMissingFields = errors.New("Send all required fields: title, author, publishYear")
)
