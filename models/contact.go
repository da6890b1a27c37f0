package models

import "time"

// ContactRole describes the relationship between a user and a contact.
type ContactRole string

const (
	RoleFamily    ContactRole = "family"
	RoleFriend    ContactRole = "friend"
	RoleColleague ContactRole = "colleague"
	RoleOther     ContactRole = "other"

	// Roles accepted by the schema but not offered by the current UI.
	RoleNextOfKin ContactRole = "next-of-kin"
	RoleWitness   ContactRole = "witness"
	RoleExecutor  ContactRole = "executor"
)

// Valid reports whether r is one of the accepted contact roles.
func (r ContactRole) Valid() bool {
	switch r {
	case RoleFamily, RoleFriend, RoleColleague, RoleOther,
		RoleNextOfKin, RoleWitness, RoleExecutor:
		return true
	}
	return false
}

// Contact is a person the user trusts. A contact is independent of any vault
// until linked through a [VaultRecipient] row.
type Contact struct {
	ContactID string `json:"id"`
	UserID    string `json:"user_id"`

	Name  string `json:"name"`
	Email string `json:"email"`

	// Phone is optional.
	Phone string `json:"phone,omitempty"`

	Role ContactRole `json:"role"`

	// Verified is set once the contact has confirmed their address.
	Verified bool `json:"verified"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Contact model.
func (c Contact) TableName() string {
	return "contacts"
}

// ContactUpdate carries a partial update for a contact. Nil fields are left
// unchanged; ContactID and UserID identify the row and scope it to its owner.
type ContactUpdate struct {
	ContactID string `json:"id"`
	UserID    string `json:"user_id"`

	Name     *string      `json:"name,omitempty"`
	Email    *string      `json:"email,omitempty"`
	Phone    *string      `json:"phone,omitempty"`
	Role     *ContactRole `json:"role,omitempty"`
	Verified *bool        `json:"verified,omitempty"`
}
