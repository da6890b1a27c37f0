package store

import "github.com/Okafor-Chiagozie/EverKeep-sub000/internal/logger"

// Repositories bundles every repository behind one constructor so wiring at
// startup stays a single call.
type Repositories struct {
	UserRepository         UserRepository
	VaultRepository        VaultRepository
	EntryRepository        EntryRepository
	ContactRepository      ContactRepository
	RecipientRepository    RecipientRepository
	NotificationRepository NotificationRepository
}

// NewRepositories constructs all repositories over a shared connection.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db, log),
		VaultRepository:        NewVaultRepository(db, log),
		EntryRepository:        NewEntryRepository(db, log),
		ContactRepository:      NewContactRepository(db, log),
		RecipientRepository:    NewRecipientRepository(db, log),
		NotificationRepository: NewNotificationRepository(db, log),
	}
}
