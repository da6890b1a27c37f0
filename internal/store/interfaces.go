package store

import (
	"context"

	"github.com/Okafor-Chiagozie/EverKeep-sub000/models"
)

// UserRepository persists user accounts and the login activity signal the
// inactivity scanner reads.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	TouchLastLogin(ctx context.Context, userID string) error
	UpdateInactivityThreshold(ctx context.Context, userID string, days int) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// VaultRepository persists vault containers. Content columns are opaque to
// this layer; encryption happens above it.
type VaultRepository interface {
	CreateVault(ctx context.Context, vault models.Vault) (models.Vault, error)
	GetVaultByID(ctx context.Context, vaultID string) (models.Vault, error)
	GetUserVaults(ctx context.Context, userID string) ([]models.Vault, error)
	DeleteVault(ctx context.Context, vaultID, userID string) error
}

// EntryRepository persists the entries inside a vault.
type EntryRepository interface {
	CreateEntry(ctx context.Context, entry models.VaultEntry) (models.VaultEntry, error)
	GetVaultEntries(ctx context.Context, vaultID string) ([]models.VaultEntry, error)
	DeleteEntry(ctx context.Context, entryID, vaultID string) error
}

// ContactRepository persists a user's trusted contacts.
type ContactRepository interface {
	CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	GetContactByID(ctx context.Context, contactID string) (models.Contact, error)
	GetUserContacts(ctx context.Context, userID string) ([]models.Contact, error)
	UpdateContact(ctx context.Context, update models.ContactUpdate) (models.Contact, error)
	DeleteContact(ctx context.Context, contactID, userID string) error
}

// RecipientRepository persists vault-to-contact delivery links.
type RecipientRepository interface {
	AddRecipient(ctx context.Context, recipient models.VaultRecipient) (models.VaultRecipient, error)
	GetVaultRecipients(ctx context.Context, vaultID string) ([]models.RecipientContact, error)
	RemoveRecipient(ctx context.Context, recipientID, vaultID string) error
}

// NotificationRepository persists the write-once activity ledger and the
// scanner's daily idempotency markers.
type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification models.Notification) (models.Notification, error)
	GetUserNotifications(ctx context.Context, filter models.NotificationFilter) ([]models.Notification, error)
	CreateDailyMarker(ctx context.Context, notification models.Notification) (models.Notification, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
