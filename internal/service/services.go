package service

import (
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/adapter"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/config"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/crypto"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/logger"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/store"
)

// Services bundles every service behind one constructor so wiring at startup
// stays a single call.
type Services struct {
	AuthService       AuthService
	VaultService      VaultService
	ContactService    ContactService
	LedgerService     LedgerService
	ShareService      ShareService
	DispatcherService DispatcherService
	ScannerService    ScannerService
}

// NewServices wires the full service graph: crypto primitives, ledger, the
// vault gateway, sharing, delivery, and the scanner on top of it all.
func NewServices(
	repos *store.Repositories,
	mail adapter.MailDispatcher,
	media adapter.MediaStore,
	cfg *config.StructuredConfig,
	logger *logger.Logger,
) *Services {
	deriver := crypto.NewKeyDeriver()
	cipher := crypto.NewContentCipher(deriver)
	codec := crypto.NewShareTokenCodec(deriver)

	ledger := NewLedgerService(repos.NotificationRepository, logger)
	share := NewShareService(repos, codec, cipher, cfg.App, logger)
	dispatcher := NewDispatcherService(repos, cipher, share, mail, ledger, logger)

	return &Services{
		AuthService:       NewAuthService(repos.UserRepository, cfg.App, logger),
		VaultService:      NewVaultService(repos, cipher, media, ledger, logger),
		ContactService:    NewContactService(repos.ContactRepository, ledger, logger),
		LedgerService:     ledger,
		ShareService:      share,
		DispatcherService: dispatcher,
		ScannerService:    NewScannerService(repos, dispatcher, logger),
	}
}
