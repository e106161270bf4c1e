package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"libraryapi/internal/entity"
	"libraryapi/internal/store/mocks"
	"libraryapi/internal/testutil"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestCategoryHandler_List(t *testing.T) {
	newHandler := func(t *testing.T) (*CategoryHandler, *mocks.MockCategoryRepository) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		mockCategories := mocks.NewMockCategoryRepository(ctrl)
		return NewCategoryHandler(mockCategories), mockCategories
	}

	t.Run("success", func(t *testing.T) {
		handler, mockCategories := newHandler(t)
		mockCategories.EXPECT().List(gomock.Any()).Return([]entity.Category{
			{ID: "c1", Name: "Novel"},
			{ID: "c2", Name: "History"},
		}, nil)

		w := httptest.NewRecorder()
		handler.List(w, httptest.NewRequest(http.MethodGet, "/all-categories", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		resp := testutil.RecordHTTPResponse(w)
		data, ok := resp.Body["data"].([]interface{})
		assert.True(t, ok)
		assert.Len(t, data, 2)
	})

	t.Run("empty list is an array, not null", func(t *testing.T) {
		handler, mockCategories := newHandler(t)
		mockCategories.EXPECT().List(gomock.Any()).Return(nil, nil)

		w := httptest.NewRecorder()
		handler.List(w, httptest.NewRequest(http.MethodGet, "/all-categories", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		resp := testutil.RecordHTTPResponse(w)
		_, ok := resp.Body["data"].([]interface{})
		assert.True(t, ok, "data should be a JSON array")
	})

	t.Run("server error", func(t *testing.T) {
		handler, mockCategories := newHandler(t)
		mockCategories.EXPECT().List(gomock.Any()).Return(nil, context.DeadlineExceeded)

		w := httptest.NewRecorder()
		handler.List(w, httptest.NewRequest(http.MethodGet, "/all-categories", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
