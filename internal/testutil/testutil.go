package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"libraryapi/internal/auth"
	"libraryapi/internal/entity"

	"github.com/golang-jwt/jwt/v5"
)

// TestAdminEmail is the admin identity used across handler tests.
const TestAdminEmail = "admin@lib.com"

// TestBook is a mock book for testing
var TestBook = entity.Book{
	ID:          "0b12f6f6-8a42-4a1f-9a57-6f4f2f1a9c01",
	Name:        "The Silent Archive",
	Author:      "Amelia Hart",
	Category:    "Novel",
	Rating:      4.5,
	Quantity:    3,
	Description: "A test book description",
	Image:       "https://images.example.com/books/1.jpg",
	CreatedAt:   time.Now(),
	UpdatedAt:   time.Now(),
}

// TestBorrow is a mock borrow record for testing
var TestBorrow = entity.BorrowRecord{
	ID:            "7de01c2b-31a8-4f21-9a1f-cc2b8e6f1d55",
	BorrowerEmail: "p@x.com",
	BorrowerName:  "Pat Example",
	BookID:        TestBook.ID,
	BookName:      TestBook.Name,
	CreatedAt:     time.Now(),
}

// GenerateTestToken generates a signed token for testing
func GenerateTestToken(secret, email string) string {
	token, _, _ := auth.GenerateToken(secret, email, "", time.Hour)
	return token
}

// GenerateExpiredToken generates an expired token for testing
func GenerateExpiredToken(secret, email string) string {
	c := auth.Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	token, _ := t.SignedString([]byte(secret))
	return token
}

// NewRequest creates a new HTTP request for testing
func NewRequest(method, path string, body interface{}) *http.Request {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}
	var r *http.Request
	if bodyBytes != nil {
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r
}

// NewRequestWithTokenCookie creates a new HTTP request carrying the auth cookie
func NewRequestWithTokenCookie(method, path string, body interface{}, token string) *http.Request {
	r := NewRequest(method, path, body)
	if token != "" {
		r.AddCookie(&http.Cookie{Name: auth.TokenCookieName, Value: token})
	}
	return r
}

// RecordResponse records the HTTP response for testing
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]interface{}
}

// RecordHTTPResponse records the HTTP response
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}
