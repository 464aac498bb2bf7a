package domain

import "time"

type User struct {
	ID           string
	Username     string
	PasswordHash string   // argon2id PHC string, or bcrypt for imported accounts
	Roles        []string // e.g. "Employee", "Manager", "Admin"
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Credentials are the login inputs. They are never persisted or logged.
type Credentials struct {
	Username string
	Password string
}
