package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case User:
		o.printUser(v)
	case LoginResult:
		o.printLoginResult(v)
	case RegisterResult:
		o.printRegisterResult(v)
	case UserList:
		o.printUserList(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// User response type (matches API)
type User struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Username  string `json:"username"`
}

// LoginResult response type
type LoginResult struct {
	User    User   `json:"user"`
	Message string `json:"message"`
}

// RegisterResult response type
type RegisterResult struct {
	User       User   `json:"user"`
	TotalUsers int    `json:"total_users"`
	Message    string `json:"message"`
}

// UserList response type
type UserList struct {
	Users []User `json:"users"`
	Total int    `json:"total"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printUser(u User) {
	fmt.Printf("User: %s %s (%s)\n", u.FirstName, u.LastName, u.Username)
	fmt.Printf("Email: %s\n", u.Email)
}

func (o *Output) printLoginResult(r LoginResult) {
	fmt.Println(r.Message)
	o.printUser(r.User)
}

func (o *Output) printRegisterResult(r RegisterResult) {
	fmt.Println(r.Message)
	o.printUser(r.User)
	fmt.Printf("Total users: %d\n", r.TotalUsers)
}

func (o *Output) printUserList(l UserList) {
	fmt.Printf("Users (%d):\n", l.Total)
	for _, u := range l.Users {
		fmt.Printf("  - %s %s (%s) <%s>\n", u.FirstName, u.LastName, u.Username, u.Email)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
