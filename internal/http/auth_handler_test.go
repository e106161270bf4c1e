package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"libraryapi/internal/auth"
	"libraryapi/internal/store/mocks"
	"libraryapi/internal/testutil"
	"libraryapi/internal/usecase"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newAuthHandlerForTest(t *testing.T) (*AuthHandler, *mocks.MockAdminRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockAdmins := mocks.NewMockAdminRepository(ctrl)
	handler := NewAuthHandler(testSecret, auth.CookieOptionsForEnv("development"), mockAdmins)
	return handler, mockAdmins
}

func TestAuthHandler_IssueToken(t *testing.T) {
	t.Run("sets a verifiable http-only cookie", func(t *testing.T) {
		handler, _ := newAuthHandlerForTest(t)

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPost, "/jwt", map[string]string{
			"email": "p@x.com",
			"name":  "Pat Example",
		})

		handler.IssueToken(w, r)

		assert.Equal(t, http.StatusOK, w.Code)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		c := cookies[0]
		assert.Equal(t, auth.TokenCookieName, c.Name)
		assert.True(t, c.HttpOnly)
		assert.Equal(t, 3600, c.MaxAge)

		claims, err := auth.ParseToken(testSecret, c.Value)
		require.NoError(t, err)
		assert.Equal(t, "p@x.com", claims.Email)
		assert.Equal(t, "Pat Example", claims.Name)
	})

	t.Run("validation - missing email", func(t *testing.T) {
		handler, _ := newAuthHandlerForTest(t)

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPost, "/jwt", map[string]string{"name": "Pat"})

		handler.IssueToken(w, r)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("invalid body", func(t *testing.T) {
		handler, _ := newAuthHandlerForTest(t)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/jwt", nil)

		handler.IssueToken(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	handler, _ := newAuthHandlerForTest(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/logout", nil)

	handler.Logout(w, r)

	assert.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, auth.TokenCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestAuthHandler_AdminEmail(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		handler, mockAdmins := newAuthHandlerForTest(t)
		mockAdmins.EXPECT().AdminEmail(gomock.Any()).Return(testutil.TestAdminEmail, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/admin-email", nil)

		handler.AdminEmail(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, testutil.TestAdminEmail, resp.Body["data"])
	})

	t.Run("not configured", func(t *testing.T) {
		handler, mockAdmins := newAuthHandlerForTest(t)
		mockAdmins.EXPECT().AdminEmail(gomock.Any()).Return("", usecase.ErrNotFound)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/admin-email", nil)

		handler.AdminEmail(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("server error", func(t *testing.T) {
		handler, mockAdmins := newAuthHandlerForTest(t)
		mockAdmins.EXPECT().AdminEmail(gomock.Any()).Return("", context.DeadlineExceeded)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/admin-email", nil)

		handler.AdminEmail(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
