package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"libraryapi/internal/entity"
	"libraryapi/internal/usecase"
)

// AdminChecker decides whether an email belongs to the admin.
type AdminChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

type BookHandler struct {
	books usecase.BookRepository
	authz AdminChecker
}

func NewBookHandler(books usecase.BookRepository, authz AdminChecker) *BookHandler {
	return &BookHandler{books: books, authz: authz}
}

type BookRequest struct {
	Name          string  `json:"book_name" validate:"required,max=300"`
	Author        string  `json:"book_author" validate:"max=200"`
	Category      string  `json:"book_category" validate:"max=100"`
	Rating        float64 `json:"book_rating" validate:"gte=0,lte=5"`
	Quantity      int     `json:"book_quantity" validate:"gte=0"`
	Description   string  `json:"book_description"`
	Image         string  `json:"book_image"`
	StaticContent string  `json:"static_content"`
}

func (req BookRequest) toEntity() entity.Book {
	return entity.Book{
		Name:          req.Name,
		Author:        req.Author,
		Category:      req.Category,
		Rating:        req.Rating,
		Quantity:      req.Quantity,
		Description:   req.Description,
		Image:         req.Image,
		StaticContent: req.StaticContent,
	}
}

// requireAdmin mirrors the original contract: the cookie proves a valid
// session, the email query parameter is what gets compared against the
// stored admin identity.
func (h *BookHandler) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	ok, err := h.authz.IsAdmin(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return false
	}
	if !ok {
		JSONError(w, http.StatusForbidden, "FORBIDDEN", "Forbidden access", nil)
		return false
	}
	return true
}

// @Summary List books
// @Description Get the full inventory, admin only, with an optional stock filter
// @Tags books
// @Produce json
// @Param email query string true "Caller email, must match the admin email"
// @Param filter query string false "available or stockOut"
// @Success 200 {object} SuccessResponse
// @Failure 403 {object} ErrorResponse
// @Router /all-books [get]
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	// Unknown filter values fall through to the unfiltered list.
	params := usecase.ListParams{Filter: r.URL.Query().Get("filter")}

	books, err := h.books.List(r.Context(), params)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if books == nil {
		books = []entity.Book{}
	}
	JSONSuccess(w, books, nil)
}

// @Summary Get book by id
// @Tags books
// @Produce json
// @Param id path string true "Book id"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /all-books/{id} [get]
func (h *BookHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	book, err := h.books.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	JSONSuccess(w, book, nil)
}

// @Summary List books by category
// @Tags books
// @Produce json
// @Param category path string true "Category name"
// @Success 200 {object} SuccessResponse
// @Router /categorizedBooks/{category} [get]
func (h *BookHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	books, err := h.books.ListByCategory(r.Context(), r.PathValue("category"))
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if books == nil {
		books = []entity.Book{}
	}
	JSONSuccess(w, books, nil)
}

// @Summary Add a book
// @Tags books
// @Accept json
// @Produce json
// @Param email query string true "Caller email, must match the admin email"
// @Success 201 {object} SuccessResponse
// @Failure 403 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /add-book [post]
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var req BookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if errs := ValidateStruct(req); errs != nil {
		JSONError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", validationDetails(errs))
		return
	}

	book := req.toEntity()
	if err := h.books.Create(r.Context(), &book); err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	JSONSuccessCreated(w, book)
}

// @Summary Upsert book fields
// @Tags books
// @Accept json
// @Produce json
// @Param id path string true "Book id"
// @Success 200 {object} SuccessResponse
// @Failure 422 {object} ErrorResponse
// @Router /update/{id} [put]
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req BookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if errs := ValidateStruct(req); errs != nil {
		JSONError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", validationDetails(errs))
		return
	}

	if err := h.books.Upsert(r.Context(), r.PathValue("id"), req.toEntity()); err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	JSONSuccess(w, nil, nil)
}

// @Summary Delete a book
// @Tags books
// @Param id path string true "Book id"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Router /delete-books/{id} [delete]
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.books.Delete(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	JSONSuccessNoContent(w)
}
