package handler

import (
	"net/http"

	"github.com/superapp/accounts/internal/api/apierr"
	"github.com/superapp/accounts/internal/api/response"
	"github.com/superapp/accounts/internal/services/userstore"
)

// UsersHandler handles user list endpoints
type UsersHandler struct {
	users *userstore.Service
}

// NewUsersHandler creates a new users handler
func NewUsersHandler(users *userstore.Service) *UsersHandler {
	return &UsersHandler{
		users: users,
	}
}

// List handles GET /api/v1/users
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.LoadAll(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.UserListFromModel(users))
}
