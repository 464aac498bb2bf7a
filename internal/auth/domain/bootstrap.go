package domain

// BootstrapData seeds the first account into an empty user store.
type BootstrapData struct {
	Username string
	Password string
	Roles    []string
}
