package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"libraryapi/internal/testutil"

	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func TestAuthMiddleware(t *testing.T) {
	var seenEmail string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenEmail = UserEmailFrom(r)
		w.WriteHeader(http.StatusOK)
	})
	protected := AuthMiddleware(testSecret)(next)

	tests := []struct {
		name           string
		token          string
		withCookie     bool
		expectedStatus int
		expectedEmail  string
	}{
		{
			name:           "valid cookie",
			token:          testutil.GenerateTestToken(testSecret, "p@x.com"),
			withCookie:     true,
			expectedStatus: http.StatusOK,
			expectedEmail:  "p@x.com",
		},
		{
			name:           "missing cookie",
			withCookie:     false,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "garbage token",
			token:          "not.a.token",
			withCookie:     true,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "expired token",
			token:          testutil.GenerateExpiredToken(testSecret, "p@x.com"),
			withCookie:     true,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "token signed with another secret",
			token:          testutil.GenerateTestToken("other-secret", "p@x.com"),
			withCookie:     true,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seenEmail = ""

			w := httptest.NewRecorder()
			var r *http.Request
			if tt.withCookie {
				r = testutil.NewRequestWithTokenCookie(http.MethodGet, "/all-books", nil, tt.token)
			} else {
				r = httptest.NewRequest(http.MethodGet, "/all-books", nil)
			}

			protected.ServeHTTP(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedEmail, seenEmail)
		})
	}
}
