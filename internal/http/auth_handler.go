package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"libraryapi/internal/auth"
	"libraryapi/internal/usecase"
)

type AuthHandler struct {
	secret  string
	cookies auth.CookieOptions
	admins  usecase.AdminRepository
}

func NewAuthHandler(secret string, cookies auth.CookieOptions, admins usecase.AdminRepository) *AuthHandler {
	return &AuthHandler{secret: secret, cookies: cookies, admins: admins}
}

type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"max=200"`
}

// @Summary Issue an identity token
// @Description Sign the caller-supplied identity and set it as an http-only cookie
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 422 {object} ErrorResponse
// @Router /jwt [post]
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if errs := ValidateStruct(req); errs != nil {
		JSONError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", validationDetails(errs))
		return
	}

	token, _, err := auth.GenerateToken(h.secret, req.Email, req.Name, auth.TokenTTL)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	auth.SetTokenCookie(w, token, auth.TokenTTL, h.cookies)
	JSONSuccess(w, nil, nil)
}

// @Summary Log out
// @Description Clear the token cookie
// @Tags auth
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearTokenCookie(w, h.cookies)
	JSONSuccess(w, nil, nil)
}

// @Summary Get the stored admin email
// @Tags auth
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /admin-email [get]
func (h *AuthHandler) AdminEmail(w http.ResponseWriter, r *http.Request) {
	email, err := h.admins.AdminEmail(r.Context())
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			JSONError(w, http.StatusNotFound, "NOT_FOUND", "Admin email not configured", nil)
			return
		}
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	JSONSuccess(w, email, nil)
}
