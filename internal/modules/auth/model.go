package auth

import "time"

// Operator is a POS operator account as the store returns it.
type Operator struct {
	UserID       string `json:"user_id"`
	EmployeeID   string `json:"employee_id"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	IsActive     bool   `json:"is_active"`
}

// LoginRequest is the payload for operator login.
type LoginRequest struct {
	UserID   string `json:"user_id"`
	Password string `json:"password"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Operator  Operator  `json:"operator"`
}

// Principal is the authenticated operator attached to a request.
type Principal struct {
	UserID     string
	EmployeeID string
}
