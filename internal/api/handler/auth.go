package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/superapp/accounts/internal/api/apierr"
	"github.com/superapp/accounts/internal/api/request"
	"github.com/superapp/accounts/internal/api/response"
	"github.com/superapp/accounts/internal/services/account"
)

// AuthHandler handles login, registration and session endpoints
type AuthHandler struct {
	accounts *account.Service
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(accounts *account.Service) *AuthHandler {
	return &AuthHandler{
		accounts: accounts,
	}
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	user, total, err := h.accounts.Register(r.Context(), account.RegisterInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Username:        req.Username,
		Password:        req.Password,
		PasswordConfirm: req.PasswordConfirm,
	})
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.RegisterResponse{
		User:       response.UserFromModel(user),
		TotalUsers: total,
		Message:    "Account created successfully",
	})
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	user, err := h.accounts.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LoginResponse{
		User:    response.UserFromModel(user),
		Message: fmt.Sprintf("Welcome, %s!", user.FirstName),
	})
}

// Logout handles POST /api/v1/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.accounts.Logout(r.Context()); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Session handles GET /api/v1/auth/session
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	user, err := h.accounts.CurrentSession(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.UserFromModel(user))
}
