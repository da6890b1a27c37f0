package models

import "time"

// Inactivity threshold bounds, in days. The UI exposes 1-12 months but the
// schema accepts the full range.
const (
	MinInactivityThresholdDays = 1
	MaxInactivityThresholdDays = 365
)

// User represents an account that owns vaults and contacts. LastLogin is the
// signal the inactivity scanner watches: it is refreshed on every successful
// login, and once the owner stays away for InactivityThresholdDays or more,
// their vaults become delivery candidates.
type User struct {
	// UserID is the application-generated UUID of the account.
	UserID string `json:"id"`

	// Email is the unique login identifier and the address used for
	// account-level notifications.
	Email string `json:"email"`

	// Name is the display name shown to recipients in delivery emails.
	Name string `json:"name"`

	// PasswordHash stores the HMAC-SHA256 hash of the password.
	// Never exposed via JSON.
	PasswordHash string `json:"-"`

	// LastLogin is the timestamp of the most recent successful login.
	LastLogin time.Time `json:"last_login"`

	// InactivityThresholdDays is the number of days of inactivity after
	// which vault delivery is triggered. Constrained to 1..365.
	InactivityThresholdDays int `json:"inactivity_threshold_days"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
