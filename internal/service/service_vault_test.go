package service

import (
	"context"
	"strings"
	"testing"

	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/adapter"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/crypto"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/logger"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/mock"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/store"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type vaultSvcMocks struct {
	vaults     *mock.MockVaultRepository
	entries    *mock.MockEntryRepository
	contacts   *mock.MockContactRepository
	recipients *mock.MockRecipientRepository
	media      *mock.MockMediaStore
	ledger     *mock.MockLedgerService
}

// newTestVaultSvc builds a vaultService over mocked stores and a real cipher:
// the encryption layer is deterministic, so tests exercise it end to end.
func newTestVaultSvc(t *testing.T, ctrl *gomock.Controller) (*vaultService, crypto.ContentCipher, vaultSvcMocks) {
	t.Helper()

	m := vaultSvcMocks{
		vaults:     mock.NewMockVaultRepository(ctrl),
		entries:    mock.NewMockEntryRepository(ctrl),
		contacts:   mock.NewMockContactRepository(ctrl),
		recipients: mock.NewMockRecipientRepository(ctrl),
		media:      mock.NewMockMediaStore(ctrl),
		ledger:     mock.NewMockLedgerService(ctrl),
	}

	repos := &store.Repositories{
		VaultRepository:     m.vaults,
		EntryRepository:     m.entries,
		ContactRepository:   m.contacts,
		RecipientRepository: m.recipients,
	}

	cipher := crypto.NewContentCipher(crypto.NewKeyDeriver())
	svc := NewVaultService(repos, cipher, m.media, m.ledger, logger.Nop()).(*vaultService)

	return svc, cipher, m
}

func TestVaultService_CreateVault_EncryptsBeforeInsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, cipher, m := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	var stored models.Vault
	gomock.InOrder(
		m.vaults.EXPECT().CreateVault(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, v models.Vault) (models.Vault, error) {
				assert.NotEmpty(t, v.VaultID, "vault id is generated before the insert")
				assert.True(t, cipher.IsEncrypted(v.Name), "name must be stored as ciphertext")
				assert.True(t, cipher.IsEncrypted(v.Description), "description must be stored as ciphertext")
				assert.Equal(t, models.ContentKindCiphertext, v.ContentKind)
				stored = v
				return v, nil
			},
		),
		m.ledger.EXPECT().Record(ctx, "user-1", models.TitleVaultCreated, gomock.Any(), "vault", gomock.Any()),
	)

	created, err := svc.CreateVault(ctx, "user-1", "Letters to Mum", "Final words")
	require.NoError(t, err)

	assert.Equal(t, "Letters to Mum", created.Name, "caller gets the plaintext back")
	assert.Equal(t, "Final words", created.Description)

	// The stored ciphertext decrypts back under the owner's content key.
	name, err := cipher.DecryptText(stored.Name, "user-1", stored.VaultID)
	require.NoError(t, err)
	assert.Equal(t, "Letters to Mum", name)
}

func TestVaultService_CreateVault_InvalidData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestVaultSvc(t, ctrl)

	_, err := svc.CreateVault(context.Background(), "user-1", "", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestVaultService_GetVault_DecryptsContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, cipher, m := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	encryptedName, err := cipher.EncryptText("Letters to Mum", "user-1", "vault-1")
	require.NoError(t, err)

	m.vaults.EXPECT().GetVaultByID(ctx, "vault-1").Return(models.Vault{
		VaultID:     "vault-1",
		UserID:      "user-1",
		Name:        encryptedName,
		ContentKind: models.ContentKindCiphertext,
	}, nil)

	vault, err := svc.GetVault(ctx, "user-1", "vault-1")
	require.NoError(t, err)
	assert.Equal(t, "Letters to Mum", vault.Name)
}

func TestVaultService_GetVault_NotOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, m := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	m.vaults.EXPECT().GetVaultByID(ctx, "vault-1").Return(models.Vault{
		VaultID: "vault-1",
		UserID:  "someone-else",
	}, nil)

	_, err := svc.GetVault(ctx, "user-1", "vault-1")
	assert.ErrorIs(t, err, ErrNotVaultOwner)
}

func TestVaultService_AddEntry_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, cipher, m := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		m.vaults.EXPECT().GetVaultByID(ctx, "vault-1").Return(models.Vault{VaultID: "vault-1", UserID: "user-1"}, nil),
		m.entries.EXPECT().CreateEntry(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, e models.VaultEntry) (models.VaultEntry, error) {
				assert.True(t, cipher.IsEncrypted(e.Content), "entry content must be stored as ciphertext")
				assert.Equal(t, models.ContentKindCiphertext, e.ContentKind)
				assert.Equal(t, models.EntryTypeText, e.Type)

				plain, err := cipher.DecryptText(e.Content, "user-1", "vault-1")
				require.NoError(t, err)
				assert.Equal(t, "my secret note", plain)
				return e, nil
			},
		),
		m.ledger.EXPECT().Record(ctx, "user-1", models.TitleEntryAdded, gomock.Any(), "entry", gomock.Any()),
	)

	entry, err := svc.AddEntry(ctx, "user-1", "vault-1", models.EntryTypeText, "my secret note")
	require.NoError(t, err)
	assert.Equal(t, "my secret note", entry.Content, "caller gets the plaintext back")
}

func TestVaultService_AddEntry_AlreadyEncryptedStoredUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, cipher, m := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	// The caller hands over ciphertext, as a retried or replayed write would.
	ciphertext, err := cipher.EncryptText("my secret note", "user-1", "vault-1")
	require.NoError(t, err)

	gomock.InOrder(
		m.vaults.EXPECT().GetVaultByID(ctx, "vault-1").Return(models.Vault{VaultID: "vault-1", UserID: "user-1"}, nil),
		m.entries.EXPECT().CreateEntry(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, e models.VaultEntry) (models.VaultEntry, error) {
				assert.Equal(t, ciphertext, e.Content, "ciphertext must not be wrapped a second time")
				assert.Equal(t, models.ContentKindCiphertext, e.ContentKind)
				return e, nil
			},
		),
		m.ledger.EXPECT().Record(ctx, "user-1", models.TitleEntryAdded, gomock.Any(), "entry", gomock.Any()),
	)

	entry, err := svc.AddEntry(ctx, "user-1", "vault-1", models.EntryTypeText, ciphertext)
	require.NoError(t, err)

	// One decrypt recovers the original plaintext.
	plain, err := cipher.DecryptText(entry.Content, "user-1", "vault-1")
	require.NoError(t, err)
	assert.Equal(t, "my secret note", plain)
}

func TestVaultService_AddEntry_InvalidType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestVaultSvc(t, ctrl)

	_, err := svc.AddEntry(context.Background(), "user-1", "vault-1", "spreadsheet", "data")
	assert.ErrorIs(t, err, ErrInvalidEntryType)
}

func TestVaultService_AddMediaEntry_RejectsText(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestVaultSvc(t, ctrl)

	_, err := svc.AddMediaEntry(context.Background(), "user-1", "vault-1", models.EntryTypeText, adapter.MediaUpload{})
	assert.ErrorIs(t, err, ErrInvalidEntryType)
}

func TestVaultService_AddMediaEntry_StoresEncryptedEnvelope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, cipher, m := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	meta := models.MediaMetadata{
		URL:        "https://media.example.com/vaults/vault-1/obj",
		StorageKey: "vaults/vault-1/obj",
		FileName:   "photo.jpg",
		MimeType:   "image/jpeg",
	}

	gomock.InOrder(
		m.vaults.EXPECT().GetVaultByID(ctx, "vault-1").Return(models.Vault{VaultID: "vault-1", UserID: "user-1"}, nil),
		m.media.EXPECT().Upload(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, upload adapter.MediaUpload) (models.MediaMetadata, error) {
				assert.True(t, strings.HasPrefix(upload.Key, "vaults/vault-1/"),
					"default object keys are scoped under the vault")
				return meta, nil
			},
		),
		m.entries.EXPECT().CreateEntry(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, e models.VaultEntry) (models.VaultEntry, error) {
				decoded, err := cipher.DecryptMediaData(e.Content, "user-1", "vault-1")
				require.NoError(t, err)
				assert.Equal(t, meta, decoded)
				return e, nil
			},
		),
		m.ledger.EXPECT().Record(ctx, "user-1", models.TitleEntryAdded, gomock.Any(), "entry", gomock.Any()),
	)

	entry, err := svc.AddMediaEntry(ctx, "user-1", "vault-1", models.EntryTypeImage, adapter.MediaUpload{
		FileName: "photo.jpg",
		MimeType: "image/jpeg",
		Body:     strings.NewReader("fake-bytes"),
	})
	require.NoError(t, err)
	assert.Equal(t, meta.URL, entry.Content)
}

func TestVaultService_ListEntries_TagsUnreadable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, cipher, m := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	// Encrypted under a different vault key: decryption must fail.
	foreign, err := cipher.EncryptText("someone else's words", "user-1", "other-vault")
	require.NoError(t, err)

	good, err := cipher.EncryptText("readable note", "user-1", "vault-1")
	require.NoError(t, err)

	gomock.InOrder(
		m.vaults.EXPECT().GetVaultByID(ctx, "vault-1").Return(models.Vault{VaultID: "vault-1", UserID: "user-1"}, nil),
		m.entries.EXPECT().GetVaultEntries(ctx, "vault-1").Return([]models.VaultEntry{
			{EntryID: "e1", VaultID: "vault-1", Type: models.EntryTypeText, Content: good},
			{EntryID: "e2", VaultID: "vault-1", Type: models.EntryTypeText, Content: foreign},
		}, nil),
	)

	entries, err := svc.ListEntries(ctx, "user-1", "vault-1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "readable note", entries[0].Content)
	assert.Equal(t, "[unreadable content]", entries[1].Content,
		"undecryptable rows surface as unreadable instead of dropping out")
}

func TestVaultService_AddRecipient_ForeignContact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, m := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		m.vaults.EXPECT().GetVaultByID(ctx, "vault-1").Return(models.Vault{VaultID: "vault-1", UserID: "user-1"}, nil),
		m.contacts.EXPECT().GetContactByID(ctx, "contact-9").Return(models.Contact{
			ContactID: "contact-9",
			UserID:    "someone-else",
		}, nil),
	)

	_, err := svc.AddRecipient(ctx, "user-1", "vault-1", "contact-9")
	assert.ErrorIs(t, err, ErrNotContactOwner)
}

func TestVaultService_DeleteVault_RecordsPlaintextName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, cipher, m := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	encryptedName, err := cipher.EncryptText("Letters to Mum", "user-1", "vault-1")
	require.NoError(t, err)

	gomock.InOrder(
		m.vaults.EXPECT().GetVaultByID(ctx, "vault-1").Return(models.Vault{
			VaultID: "vault-1",
			UserID:  "user-1",
			Name:    encryptedName,
		}, nil),
		m.vaults.EXPECT().DeleteVault(ctx, "vault-1", "user-1").Return(nil),
		m.ledger.EXPECT().Record(ctx, "user-1", models.TitleVaultDeleted,
			`Deleted vault "Letters to Mum"`, "vault", gomock.Any()),
	)

	err = svc.DeleteVault(ctx, "user-1", "vault-1")
	require.NoError(t, err)
}
