package service

import (
	"context"

	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/adapter"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/models"
)

// AuthService handles registration, credential verification, and the JWT
// token lifecycle. Every successful login refreshes the user's last-login
// timestamp, which is the activity signal the inactivity scanner watches.
type AuthService interface {
	RegisterUser(ctx context.Context, name, email, password string) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	GetUser(ctx context.Context, userID string) (models.User, error)
	UpdateInactivityThreshold(ctx context.Context, userID string, days int) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// VaultService is the single gateway between plaintext and ciphertext for
// vaults and their entries. Content is encrypted on the way in and decrypted
// on the way out; nothing above this interface sees ciphertext, nothing
// below it sees plaintext.
type VaultService interface {
	CreateVault(ctx context.Context, userID, name, description string) (models.Vault, error)
	GetVault(ctx context.Context, userID, vaultID string) (models.Vault, error)
	ListVaults(ctx context.Context, userID string) ([]models.Vault, error)
	DeleteVault(ctx context.Context, userID, vaultID string) error

	AddEntry(ctx context.Context, userID, vaultID string, entryType models.EntryType, content string) (models.VaultEntry, error)
	AddMediaEntry(ctx context.Context, userID, vaultID string, entryType models.EntryType, upload adapter.MediaUpload) (models.VaultEntry, error)
	ListEntries(ctx context.Context, userID, vaultID string) ([]models.VaultEntry, error)
	DeleteEntry(ctx context.Context, userID, vaultID, entryID string) error

	AddRecipient(ctx context.Context, userID, vaultID, contactID string) (models.VaultRecipient, error)
	ListRecipients(ctx context.Context, userID, vaultID string) ([]models.RecipientContact, error)
	RemoveRecipient(ctx context.Context, userID, vaultID, recipientID string) error
}

// ContactService manages a user's trusted contacts.
type ContactService interface {
	CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	ListContacts(ctx context.Context, userID string) ([]models.Contact, error)
	UpdateContact(ctx context.Context, update models.ContactUpdate) (models.Contact, error)
	DeleteContact(ctx context.Context, contactID, userID string) error
}

// LedgerService records and reads the append-only activity timeline.
// Recording is best-effort from the caller's point of view: a failed ledger
// write must never fail the operation being recorded.
type LedgerService interface {
	Record(ctx context.Context, userID, title, description, eventType string, metadata map[string]any)
	Timeline(ctx context.Context, filter models.NotificationFilter) ([]models.Notification, error)
	ExportCSV(ctx context.Context, userID string) ([]byte, error)
}

// ShareService issues share links for vaults and resolves presented tokens
// back into readable vault views.
type ShareService interface {
	GenerateLink(ctx context.Context, userID, vaultID string) (string, error)
	ResolveShare(ctx context.Context, token string) (models.ShareView, error)
}

// DispatcherService delivers a user's vaults to their recipients by email.
type DispatcherService interface {
	DeliverUserVaults(ctx context.Context, user models.User) (int, error)
}

/// ScannerService runs one inactivity sweep: find owners whose last login is
// older than their threshold, deliver their vaults, and mark the day done.
type ScannerService interface {
	Run(ctx context.Context) models.ScanReport
}
