package domain

import "time"

// Auth audit actions.
const (
	AuditRegister = "register"
	AuditLogin    = "login"
)

// AuthEvent records a registration or login attempt. It never carries the
// submitted secret or its hash.
type AuthEvent struct {
	Email   string    `json:"email"`
	Role    string    `json:"role"`
	Action  string    `json:"action"`
	Success bool      `json:"success"`
	Reason  string    `json:"reason,omitempty"`
	At      time.Time `json:"at"`
}
