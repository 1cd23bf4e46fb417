package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bookshelf-backend/internal/domains/book"
	"bookshelf-backend/internal/infrastructure/storage"
	"bookshelf-backend/internal/shared/response"
)

// Handler maps the catalog HTTP surface onto book.Service.
type Handler struct {
	service book.Service
}

func NewHandler(service book.Service) *Handler {
	return &Handler{service: service}
}

// CreateBook - POST /books
// Multipart form: title, author, publishYear + optional image file.
func (h *Handler) CreateBook(c *gin.Context) {
	req := book.BookRequest{
		Title:       c.PostForm("title"),
		Author:      c.PostForm("author"),
		PublishYear: c.PostForm("publishYear"),
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	image, err := h.readImage(c)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), req, image)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, created)
}

// ListBooks - GET /books
func (h *Handler) ListBooks(c *gin.Context) {
	books, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, book.ListBooksResponse{
		Count: len(books),
		Data:  books,
	})
}

// GetBook - GET /books/:id
func (h *Handler) GetBook(c *gin.Context) {
	b, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, b)
}

// UpdateBook - PUT /books/:id
func (h *Handler) UpdateBook(c *gin.Context) {
	req := book.BookRequest{
		Title:       c.PostForm("title"),
		Author:      c.PostForm("author"),
		PublishYear: c.PostForm("publishYear"),
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	image, err := h.readImage(c)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.Param("id"), req, image)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, book.UpdateBookResponse{
		Message: "Book updated successfully",
		Book:    updated,
	})
}

// DeleteBook - DELETE /books/:id
func (h *Handler) DeleteBook(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	response.WithMessage(c, http.StatusOK, "Book deleted successfully")
}

// ExportBooks - GET /books/export
func (h *Handler) ExportBooks(c *gin.Context) {
	data, err := h.service.Export(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	filename := fmt.Sprintf("books_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		data)
}

// readImage pulls the optional "image" file out of the multipart form.
// A request without a file (or without a multipart body at all) is fine.
func (h *Handler) readImage(c *gin.Context) (*book.UploadedImage, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, fmt.Errorf("read form file: %w", err)
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	return &book.UploadedImage{Filename: fileHeader.Filename, Data: data}, nil
}

// handleError maps domain errors onto the status codes of the API contract.
func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, book.ErrMissingFields):
		response.BadRequest(c, err.Error())
	case errors.Is(err, book.ErrBookNotFound):
		response.NotFound(c, book.ErrBookNotFound.Error())
	case errors.Is(err, storage.ErrInvalidImage):
		response.BadRequest(c, err.Error())
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled book error")
		response.InternalServerError(c, err.Error())
	}
}
