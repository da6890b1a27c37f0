package models

import "time"

// VaultRecipient links a contact to a vault, entitling the contact to receive
// the vault's contents on delivery. Many-to-many: a vault may have several
// recipients and a contact may receive several vaults.
type VaultRecipient struct {
	RecipientID string    `json:"id"`
	VaultID     string    `json:"vault_id"`
	ContactID   string    `json:"contact_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the VaultRecipient model.
func (r VaultRecipient) TableName() string {
	return "vault_recipients"
}

// RecipientContact is the joined view of a recipient link and its contact
// record, used by the delivery pipeline. A recipient whose contact row no
// longer resolves is not deliverable and is excluded at query time.
type RecipientContact struct {
	RecipientID string      `json:"id"`
	VaultID     string      `json:"vault_id"`
	ContactID   string      `json:"contact_id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Role        ContactRole `json:"role"`
	CreatedAt   time.Time   `json:"created_at"`
}
