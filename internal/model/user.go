package model

// User represents one registered account: profile plus credentials.
//
// The JSON field names are the legacy SuperApp wire format and must not
// change: the persisted user blob is shared with older clients that
// read `superapp_users` directly.
type User struct {
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
	Email     string `json:"email"`
	Username  string `json:"usuario"`
	Password  string `json:"password"` // stored in plain text (legacy contract)
}

// Default admin account seeded into every fresh store so that a new
// deployment is immediately usable.
var DefaultAdmin = User{
	FirstName: "Admin",
	LastName:  "User",
	Email:     "admin@superapp.com",
	Username:  "admin",
	Password:  "admin",
}
