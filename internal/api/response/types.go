package response

import "github.com/superapp/accounts/internal/model"

// User represents a user in API responses.
// The password field is never serialized in responses; only the
// persisted blob carries it.
type User struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Username  string `json:"username"`
}

// UserFromModel converts a model.User to a response User
func UserFromModel(u *model.User) User {
	return User{
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Username:  u.Username,
	}
}

// LoginResponse is the response for a successful login
type LoginResponse struct {
	User    User   `json:"user"`
	Message string `json:"message"`
}

// RegisterResponse is the response for a successful registration
type RegisterResponse struct {
	User       User   `json:"user"`
	TotalUsers int    `json:"total_users"`
	Message    string `json:"message"`
}

// UserListResponse is the response for listing users
type UserListResponse struct {
	Users []User `json:"users"`
	Total int    `json:"total"`
}

// UserListFromModel converts a slice of model users
func UserListFromModel(users []model.User) UserListResponse {
	out := make([]User, len(users))
	for i := range users {
		out[i] = UserFromModel(&users[i])
	}
	return UserListResponse{Users: out, Total: len(out)}
}
