package service

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/adapter"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/crypto"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/logger"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/store"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/utils"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/models"
)

// vaultService is the concrete implementation of VaultService and the single
// encryption boundary for vault content. Every write encrypts before hitting
// the store; every read decrypts on the way out. The vault id is generated
// here, before the INSERT, so content is encrypted under its real id in one
// phase.
type vaultService struct {
	vaultRepository     store.VaultRepository
	entryRepository     store.EntryRepository
	contactRepository   store.ContactRepository
	recipientRepository store.RecipientRepository

	cipher crypto.ContentCipher
	media  adapter.MediaStore
	ledger LedgerService
	uuid   *utils.UUIDGenerator
	logger *logger.Logger
}

// NewVaultService constructs a VaultService over the given stores, cipher,
// and media adapter. The ledger is written to on every mutating operation.
func NewVaultService(
	repos *store.Repositories,
	cipher crypto.ContentCipher,
	media adapter.MediaStore,
	ledger LedgerService,
	logger *logger.Logger,
) VaultService {
	return &vaultService{
		vaultRepository:     repos.VaultRepository,
		entryRepository:     repos.EntryRepository,
		contactRepository:   repos.ContactRepository,
		recipientRepository: repos.RecipientRepository,
		cipher:              cipher,
		media:               media,
		ledger:              ledger,
		uuid:                utils.NewUUIDGenerator(),
		logger:              logger,
	}
}

// CreateVault encrypts name and description under the owner's content key and
// persists the vault in a single INSERT. The response carries the caller's
// plaintext back, not the ciphertext.
func (v *vaultService) CreateVault(ctx context.Context, userID, name, description string) (models.Vault, error) {
	log := logger.FromContext(ctx)

	if userID == "" || name == "" {
		return models.Vault{}, ErrInvalidDataProvided
	}

	vaultID := v.uuid.Generate()

	encryptedName, err := v.cipher.EncryptText(name, userID, vaultID)
	if err != nil {
		log.Err(err).Str("vault_id", vaultID).Msg("error encrypting vault name")
		return models.Vault{}, fmt.Errorf("error encrypting vault name: %w", err)
	}

	encryptedDescription := ""
	if description != "" {
		encryptedDescription, err = v.cipher.EncryptText(description, userID, vaultID)
		if err != nil {
			log.Err(err).Str("vault_id", vaultID).Msg("error encrypting vault description")
			return models.Vault{}, fmt.Errorf("error encrypting vault description: %w", err)
		}
	}

	now := time.Now().UTC()
	created, err := v.vaultRepository.CreateVault(ctx, models.Vault{
		VaultID:     vaultID,
		UserID:      userID,
		Name:        encryptedName,
		Description: encryptedDescription,
		ContentKind: models.ContentKindCiphertext,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		log.Err(err).Str("vault_id", vaultID).Msg("vault creation ended with error")
		return models.Vault{}, fmt.Errorf("vault creation ended with error: %w", err)
	}

	v.ledger.Record(ctx, userID, models.TitleVaultCreated,
		fmt.Sprintf("Created vault %q", name), "vault",
		map[string]any{"vaultId": created.VaultID})

	created.Name = name
	created.Description = description
	return created, nil
}

// GetVault returns one vault with its content decrypted. Returns
// ErrNotVaultOwner when the vault belongs to someone else.
func (v *vaultService) GetVault(ctx context.Context, userID, vaultID string) (models.Vault, error) {
	vault, err := v.ownedVault(ctx, userID, vaultID)
	if err != nil {
		return models.Vault{}, err
	}

	v.decryptVault(&vault)
	return vault, nil
}

// ListVaults returns the user's vaults, newest first, with content decrypted.
func (v *vaultService) ListVaults(ctx context.Context, userID string) ([]models.Vault, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return nil, ErrInvalidDataProvided
	}

	vaults, err := v.vaultRepository.GetUserVaults(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("error listing vaults")
		return nil, fmt.Errorf("error listing vaults: %w", err)
	}

	for i := range vaults {
		v.decryptVault(&vaults[i])
	}

	return vaults, nil
}

// DeleteVault removes a vault with everything in it. The ledger row survives
// the vault: it is the only trace the vault existed.
func (v *vaultService) DeleteVault(ctx context.Context, userID, vaultID string) error {
	log := logger.FromContext(ctx)

	vault, err := v.ownedVault(ctx, userID, vaultID)
	if err != nil {
		return err
	}
	v.decryptVault(&vault)

	if err := v.vaultRepository.DeleteVault(ctx, vaultID, userID); err != nil {
		log.Err(err).Str("vault_id", vaultID).Msg("vault deletion ended with error")
		return fmt.Errorf("vault deletion ended with error: %w", err)
	}

	v.ledger.Record(ctx, userID, models.TitleVaultDeleted,
		fmt.Sprintf("Deleted vault %q", vault.Name), "vault",
		map[string]any{"vaultId": vaultID})

	return nil
}

// AddEntry encrypts content under the vault's content key and appends it.
// Content that is already ciphertext is stored unchanged: wrapping it a
// second time would leave inner ciphertext behind a single decrypt.
func (v *vaultService) AddEntry(ctx context.Context, userID, vaultID string, entryType models.EntryType, content string) (models.VaultEntry, error) {
	log := logger.FromContext(ctx)

	if !entryType.Valid() {
		return models.VaultEntry{}, ErrInvalidEntryType
	}
	if content == "" {
		return models.VaultEntry{}, ErrInvalidDataProvided
	}

	if _, err := v.ownedVault(ctx, userID, vaultID); err != nil {
		return models.VaultEntry{}, err
	}

	encrypted := content
	if v.cipher.IsEncrypted(content) {
		log.Debug().Str("vault_id", vaultID).Msg("entry content already encrypted, storing as-is")
	} else {
		var err error
		encrypted, err = v.cipher.EncryptText(content, userID, vaultID)
		if err != nil {
			log.Err(err).Str("vault_id", vaultID).Msg("error encrypting entry content")
			return models.VaultEntry{}, fmt.Errorf("error encrypting entry content: %w", err)
		}
	}

	created, err := v.entryRepository.CreateEntry(ctx, models.VaultEntry{
		EntryID:     v.uuid.Generate(),
		VaultID:     vaultID,
		Type:        entryType,
		Content:     encrypted,
		ContentKind: models.ContentKindCiphertext,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		log.Err(err).Str("vault_id", vaultID).Msg("entry creation ended with error")
		return models.VaultEntry{}, fmt.Errorf("entry creation ended with error: %w", err)
	}

	v.ledger.Record(ctx, userID, models.TitleEntryAdded,
		fmt.Sprintf("Added %s entry to vault", entryType), "entry",
		map[string]any{"vaultId": vaultID, "entryId": created.EntryID})

	// Hand the plaintext back so the client renders without a round trip.
	created.Content = content
	return created, nil
}

// AddMediaEntry uploads the object, then stores its encrypted metadata
// envelope as the entry content. The stored object is the only unencrypted
// boundary of a media entry.
func (v *vaultService) AddMediaEntry(ctx context.Context, userID, vaultID string, entryType models.EntryType, upload adapter.MediaUpload) (models.VaultEntry, error) {
	log := logger.FromContext(ctx)

	if !entryType.Valid() || entryType == models.EntryTypeText {
		return models.VaultEntry{}, ErrInvalidEntryType
	}

	if _, err := v.ownedVault(ctx, userID, vaultID); err != nil {
		return models.VaultEntry{}, err
	}

	if upload.Key == "" {
		upload.Key = path.Join("vaults", vaultID, v.uuid.Generate())
	}

	meta, err := v.media.Upload(ctx, upload)
	if err != nil {
		log.Err(err).Str("vault_id", vaultID).Msg("media upload ended with error")
		return models.VaultEntry{}, fmt.Errorf("media upload ended with error: %w", err)
	}

	envelope, err := v.cipher.EncryptMediaData(meta, userID, vaultID)
	if err != nil {
		log.Err(err).Str("vault_id", vaultID).Msg("error encrypting media envelope")
		return models.VaultEntry{}, fmt.Errorf("error encrypting media envelope: %w", err)
	}

	created, err := v.entryRepository.CreateEntry(ctx, models.VaultEntry{
		EntryID:     v.uuid.Generate(),
		VaultID:     vaultID,
		Type:        entryType,
		Content:     envelope,
		ContentKind: models.ContentKindCiphertext,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		log.Err(err).Str("vault_id", vaultID).Msg("media entry creation ended with error")
		return models.VaultEntry{}, fmt.Errorf("media entry creation ended with error: %w", err)
	}

	v.ledger.Record(ctx, userID, models.TitleEntryAdded,
		fmt.Sprintf("Added %s entry to vault", entryType), "entry",
		map[string]any{"vaultId": vaultID, "entryId": created.EntryID})

	created.Content = meta.URL
	return created, nil
}

// ListEntries returns the vault's entries with content decrypted. Entries
// whose ciphertext no longer decrypts come back tagged as unreadable rather
// than dropping out of the list.
func (v *vaultService) ListEntries(ctx context.Context, userID, vaultID string) ([]models.VaultEntry, error) {
	log := logger.FromContext(ctx)

	if _, err := v.ownedVault(ctx, userID, vaultID); err != nil {
		return nil, err
	}

	entries, err := v.entryRepository.GetVaultEntries(ctx, vaultID)
	if err != nil {
		log.Err(err).Str("vault_id", vaultID).Msg("error listing entries")
		return nil, fmt.Errorf("error listing entries: %w", err)
	}

	for i := range entries {
		result := v.cipher.SafeDecrypt(entries[i].Content, userID, vaultID)
		if result.Outcome == crypto.OutcomeFailed {
			log.Warn().Str("entry_id", entries[i].EntryID).Msg("entry content failed to decrypt")
			entries[i].Content = "[unreadable content]"
			continue
		}
		entries[i].Content = result.Text
	}

	return entries, nil
}

// DeleteEntry removes one entry from an owned vault.
func (v *vaultService) DeleteEntry(ctx context.Context, userID, vaultID, entryID string) error {
	log := logger.FromContext(ctx)

	if _, err := v.ownedVault(ctx, userID, vaultID); err != nil {
		return err
	}

	if err := v.entryRepository.DeleteEntry(ctx, entryID, vaultID); err != nil {
		log.Err(err).Str("entry_id", entryID).Msg("entry deletion ended with error")
		return fmt.Errorf("entry deletion ended with error: %w", err)
	}

	return nil
}

// AddRecipient links one of the owner's contacts to an owned vault.
func (v *vaultService) AddRecipient(ctx context.Context, userID, vaultID, contactID string) (models.VaultRecipient, error) {
	log := logger.FromContext(ctx)

	if _, err := v.ownedVault(ctx, userID, vaultID); err != nil {
		return models.VaultRecipient{}, err
	}

	contact, err := v.contactRepository.GetContactByID(ctx, contactID)
	if err != nil {
		log.Err(err).Str("contact_id", contactID).Msg("contact lookup ended with error")
		return models.VaultRecipient{}, fmt.Errorf("contact lookup ended with error: %w", err)
	}
	if contact.UserID != userID {
		return models.VaultRecipient{}, ErrNotContactOwner
	}

	created, err := v.recipientRepository.AddRecipient(ctx, models.VaultRecipient{
		RecipientID: v.uuid.Generate(),
		VaultID:     vaultID,
		ContactID:   contactID,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		log.Err(err).Str("vault_id", vaultID).Str("contact_id", contactID).Msg("recipient linking ended with error")
		return models.VaultRecipient{}, fmt.Errorf("recipient linking ended with error: %w", err)
	}

	v.ledger.Record(ctx, userID, models.TitleRecipientAdded,
		fmt.Sprintf("Added %s as recipient", contact.Name), "recipient",
		map[string]any{"vaultId": vaultID, "contactId": contactID})

	return created, nil
}

// ListRecipients returns the vault's recipients joined with their contacts.
func (v *vaultService) ListRecipients(ctx context.Context, userID, vaultID string) ([]models.RecipientContact, error) {
	log := logger.FromContext(ctx)

	if _, err := v.ownedVault(ctx, userID, vaultID); err != nil {
		return nil, err
	}

	recipients, err := v.recipientRepository.GetVaultRecipients(ctx, vaultID)
	if err != nil {
		log.Err(err).Str("vault_id", vaultID).Msg("error listing recipients")
		return nil, fmt.Errorf("error listing recipients: %w", err)
	}

	return recipients, nil
}

// RemoveRecipient unlinks a recipient from an owned vault.
func (v *vaultService) RemoveRecipient(ctx context.Context, userID, vaultID, recipientID string) error {
	log := logger.FromContext(ctx)

	if _, err := v.ownedVault(ctx, userID, vaultID); err != nil {
		return err
	}

	if err := v.recipientRepository.RemoveRecipient(ctx, recipientID, vaultID); err != nil {
		log.Err(err).Str("recipient_id", recipientID).Msg("recipient removal ended with error")
		return fmt.Errorf("recipient removal ended with error: %w", err)
	}

	v.ledger.Record(ctx, userID, models.TitleRecipientRemoved,
		"Removed a recipient from vault", "recipient",
		map[string]any{"vaultId": vaultID, "recipientId": recipientID})

	return nil
}

// ownedVault loads a vault and enforces ownership.
func (v *vaultService) ownedVault(ctx context.Context, userID, vaultID string) (models.Vault, error) {
	if userID == "" || vaultID == "" {
		return models.Vault{}, ErrInvalidDataProvided
	}

	vault, err := v.vaultRepository.GetVaultByID(ctx, vaultID)
	if err != nil {
		return models.Vault{}, fmt.Errorf("vault lookup ended with error: %w", err)
	}
	if vault.UserID != userID {
		return models.Vault{}, ErrNotVaultOwner
	}

	return vault, nil
}

// decryptVault decrypts name and description in place. Legacy plaintext rows
// pass through untouched; undecryptable content is surfaced as unreadable.
func (v *vaultService) decryptVault(vault *models.Vault) {
	name := v.cipher.SafeDecrypt(vault.Name, vault.UserID, vault.VaultID)
	if name.Outcome == crypto.OutcomeFailed {
		vault.Name = "[unreadable content]"
	} else {
		vault.Name = name.Text
	}

	if vault.Description == "" {
		return
	}
	description := v.cipher.SafeDecrypt(vault.Description, vault.UserID, vault.VaultID)
	if description.Outcome == crypto.OutcomeFailed {
		vault.Description = "[unreadable content]"
	} else {
		vault.Description = description.Text
	}
}
