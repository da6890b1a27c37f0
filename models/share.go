package models

import "time"

// SharePayload is the JSON document sealed inside a share token. It names the
// vault and owner the token grants access to and when the token was issued.
type SharePayload struct {
	VaultID  string    `json:"vaultId"`
	UserID   string    `json:"userId"`
	IssuedAt time.Time `json:"timestamp"`
}

// ShareView is what a recipient sees when resolving a share link: the
// decrypted vault, its decrypted entries, and the owner's display name.
type ShareView struct {
	OwnerName string       `json:"owner_name"`
	Vault     Vault        `json:"vault"`
	Entries   []VaultEntry `json:"entries"`
}
