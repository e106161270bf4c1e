package http

import (
	"net/http"

	"libraryapi/internal/entity"
	"libraryapi/internal/usecase"
)

type CategoryHandler struct {
	categories usecase.CategoryRepository
}

func NewCategoryHandler(categories usecase.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /all-categories [get]
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.List(r.Context())
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	if categories == nil {
		categories = []entity.Category{}
	}
	JSONSuccess(w, categories, nil)
}
