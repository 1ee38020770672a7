package models

// User represents the current session user
type User struct {
	Email string `json:"email"`
}

// Account represents a stored account record, keyed by email in the accounts map
type Account struct {
	PasswordHash string `json:"passwordHash"`
}

// AuthRequest represents a signup or login request
type AuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
