package models

import "time"

// ContentKind is the persisted discriminant for what a content column holds.
// It replaces runtime shape-sniffing for rows written by this application;
// the heuristic classifier remains only for legacy rows that predate the tag.
type ContentKind string

const (
	// ContentKindCiphertext marks AES-encrypted content.
	ContentKindCiphertext ContentKind = "ciphertext"

	// ContentKindMediaRef marks an unencrypted JSON envelope holding a
	// remote media URL.
	ContentKindMediaRef ContentKind = "media_ref"

	// ContentKindPlaintext marks legacy unencrypted text.
	ContentKindPlaintext ContentKind = "plaintext"
)

// Vault is a named, owned container of entries intended for eventual delivery
// to designated recipients. Name and Description are stored as ciphertext
// bound to the (owner id, vault id) pair; moving a vault between owners would
// make them undecryptable, so ownership is immutable.
type Vault struct {
	// VaultID is the application-generated UUID. It is generated before the
	// INSERT so the name and description can be encrypted under the real id
	// in a single phase.
	VaultID string `json:"id"`

	// UserID is the owning user's UUID.
	UserID string `json:"user_id"`

	// Name of the vault. Ciphertext at rest, plaintext in API responses.
	Name string `json:"name"`

	// Description of the vault. Ciphertext at rest, plaintext in responses.
	Description string `json:"description"`

	// ContentKind tags how Name/Description are stored.
	ContentKind ContentKind `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Vault model.
func (v Vault) TableName() string {
	return "vaults"
}
