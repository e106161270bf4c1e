package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"libraryapi/internal/entity"
	"libraryapi/internal/usecase"
)

type BorrowHandler struct {
	borrows usecase.BorrowRepository
}

func NewBorrowHandler(borrows usecase.BorrowRepository) *BorrowHandler {
	return &BorrowHandler{borrows: borrows}
}

type BorrowRequest struct {
	BorrowerEmail string `json:"borrower_email" validate:"required,email"`
	BorrowerName  string `json:"borrower_name" validate:"max=200"`
	BookID        string `json:"book_id" validate:"required,uuid"`
	BookName      string `json:"book_name" validate:"max=300"`
}

// @Summary Borrow a book
// @Description Create a borrow record and decrement the book's quantity
// @Tags borrows
// @Accept json
// @Produce json
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /add-borrowed-book [post]
func (h *BorrowHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req BorrowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if errs := ValidateStruct(req); errs != nil {
		JSONError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", validationDetails(errs))
		return
	}

	rec := entity.BorrowRecord{
		BorrowerEmail: req.BorrowerEmail,
		BorrowerName:  req.BorrowerName,
		BookID:        req.BookID,
		BookName:      req.BookName,
	}
	if err := h.borrows.Borrow(r.Context(), &rec); err != nil {
		switch {
		case errors.Is(err, usecase.ErrDuplicateBorrow):
			JSONError(w, http.StatusBadRequest, "DUPLICATE_BORROW", "You have already borrowed this book.", nil)
		case errors.Is(err, usecase.ErrOutOfStock):
			JSONError(w, http.StatusConflict, "OUT_OF_STOCK", "Book is out of stock", nil)
		case errors.Is(err, usecase.ErrNotFound):
			JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		default:
			JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}
	JSONSuccessCreated(w, rec)
}

// @Summary Return a book
// @Description Delete the live borrow records for a book and restore its quantity
// @Tags borrows
// @Produce json
// @Param id path string true "Book id"
// @Success 200 {object} SuccessResponse
// @Router /delete-borrowed-books/{id} [delete]
func (h *BorrowHandler) Return(w http.ResponseWriter, r *http.Request) {
	removed, err := h.borrows.Return(r.Context(), r.PathValue("id"))
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	JSONSuccess(w, map[string]int64{"deleted_count": removed}, nil)
}

// @Summary List a patron's borrow records
// @Tags borrows
// @Produce json
// @Param email path string true "Borrower email"
// @Success 200 {object} SuccessResponse
// @Router /borrowed-books/{email} [get]
func (h *BorrowHandler) ListByBorrower(w http.ResponseWriter, r *http.Request) {
	records, err := h.borrows.ListByBorrower(r.Context(), r.PathValue("email"))
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if records == nil {
		records = []entity.BorrowRecord{}
	}
	JSONSuccess(w, records, nil)
}
