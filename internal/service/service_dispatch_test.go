package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/crypto"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/logger"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/mock"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/store"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type dispatcherSvcMocks struct {
	vaults     *mock.MockVaultRepository
	entries    *mock.MockEntryRepository
	recipients *mock.MockRecipientRepository
	share      *mock.MockShareService
	mail       *mock.MockMailDispatcher
	ledger     *mock.MockLedgerService
}

func newTestDispatcherSvc(t *testing.T, ctrl *gomock.Controller) (*dispatcherService, crypto.ContentCipher, dispatcherSvcMocks) {
	t.Helper()

	m := dispatcherSvcMocks{
		vaults:     mock.NewMockVaultRepository(ctrl),
		entries:    mock.NewMockEntryRepository(ctrl),
		recipients: mock.NewMockRecipientRepository(ctrl),
		share:      mock.NewMockShareService(ctrl),
		mail:       mock.NewMockMailDispatcher(ctrl),
		ledger:     mock.NewMockLedgerService(ctrl),
	}

	repos := &store.Repositories{
		VaultRepository:     m.vaults,
		EntryRepository:     m.entries,
		RecipientRepository: m.recipients,
	}

	cipher := crypto.NewContentCipher(crypto.NewKeyDeriver())
	svc := NewDispatcherService(repos, cipher, m.share, m.mail, m.ledger, logger.Nop()).(*dispatcherService)

	return svc, cipher, m
}

func TestDispatcherService_DeliverUserVaults_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, cipher, m := newTestDispatcherSvc(t, ctrl)
	ctx := context.Background()

	owner := models.User{UserID: "user-1", Name: "Alice", Email: "alice@example.com"}

	encryptedName, err := cipher.EncryptText("Letters to Mum", "user-1", "vault-1")
	require.NoError(t, err)

	withRecipients := models.Vault{VaultID: "vault-1", UserID: "user-1", Name: encryptedName}
	empty := models.Vault{VaultID: "vault-2", UserID: "user-1", Name: encryptedName}

	recipients := []models.RecipientContact{
		{RecipientID: "r1", VaultID: "vault-1", Name: "Mum", Email: "mum@example.com"},
	}

	gomock.InOrder(
		m.vaults.EXPECT().GetUserVaults(ctx, "user-1").Return([]models.Vault{withRecipients, empty}, nil),
		m.recipients.EXPECT().GetVaultRecipients(ctx, "vault-1").Return(recipients, nil),
		m.share.EXPECT().GenerateLink(ctx, "user-1", "vault-1").
			Return("https://everkeep.example.com/vault/share/tok", nil),
		m.entries.EXPECT().GetVaultEntries(ctx, "vault-1").Return([]models.VaultEntry{{EntryID: "e1"}}, nil),
		m.mail.EXPECT().Send(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, msg models.MailMessage) error {
				assert.Equal(t, "mum@example.com", msg.To)
				assert.Contains(t, msg.Subject, "Alice")
				assert.Contains(t, msg.HTML, "Letters to Mum", "email shows the decrypted vault name")
				assert.Contains(t, msg.HTML, "https://everkeep.example.com/vault/share/tok")
				assert.NotContains(t, msg.HTML, encryptedName, "ciphertext never reaches a recipient")
				return nil
			},
		),
		m.ledger.EXPECT().Record(ctx, "user-1", models.TitleVaultDelivered, gomock.Any(), "delivery", gomock.Any()),
		// vault-2 has no recipients and is skipped without ledger noise.
		m.recipients.EXPECT().GetVaultRecipients(ctx, "vault-2").Return(nil, nil),
	)

	delivered, err := svc.DeliverUserVaults(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, 1, delivered)
}

func TestDispatcherService_DeliverUserVaults_SendFailureAbortsVault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, cipher, m := newTestDispatcherSvc(t, ctrl)
	ctx := context.Background()

	owner := models.User{UserID: "user-1", Name: "Alice"}

	encryptedName, err := cipher.EncryptText("Letters to Mum", "user-1", "vault-1")
	require.NoError(t, err)

	vault := models.Vault{VaultID: "vault-1", UserID: "user-1", Name: encryptedName}
	recipients := []models.RecipientContact{
		{RecipientID: "r1", VaultID: "vault-1", Name: "Mum", Email: "mum@example.com"},
		{RecipientID: "r2", VaultID: "vault-1", Name: "Dad", Email: "dad@example.com"},
	}
	sendErr := errors.New("mail function returned 502")

	gomock.InOrder(
		m.vaults.EXPECT().GetUserVaults(ctx, "user-1").Return([]models.Vault{vault}, nil),
		m.recipients.EXPECT().GetVaultRecipients(ctx, "vault-1").Return(recipients, nil),
		m.share.EXPECT().GenerateLink(ctx, "user-1", "vault-1").Return("https://ek/vault/share/tok", nil),
		m.entries.EXPECT().GetVaultEntries(ctx, "vault-1").Return(nil, nil),
		// First send fails; the second recipient is never mailed and no
		// delivery row is written.
		m.mail.EXPECT().Send(ctx, gomock.Any()).Return(sendErr),
	)

	delivered, err := svc.DeliverUserVaults(ctx, owner)
	assert.ErrorIs(t, err, sendErr)
	assert.Equal(t, 0, delivered)
}

func TestDispatcherService_DeliverUserVaults_FailedVaultDoesNotBlockOthers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, cipher, m := newTestDispatcherSvc(t, ctrl)
	ctx := context.Background()

	owner := models.User{UserID: "user-1", Name: "Alice"}

	name1, err := cipher.EncryptText("Letters to Mum", "user-1", "vault-1")
	require.NoError(t, err)
	name2, err := cipher.EncryptText("For the kids", "user-1", "vault-2")
	require.NoError(t, err)

	first := models.Vault{VaultID: "vault-1", UserID: "user-1", Name: name1}
	second := models.Vault{VaultID: "vault-2", UserID: "user-1", Name: name2}
	sendErr := errors.New("mail function returned 502")

	gomock.InOrder(
		m.vaults.EXPECT().GetUserVaults(ctx, "user-1").Return([]models.Vault{first, second}, nil),
		// vault-1 fails on its only recipient.
		m.recipients.EXPECT().GetVaultRecipients(ctx, "vault-1").
			Return([]models.RecipientContact{{RecipientID: "r1", Name: "Mum", Email: "mum@example.com"}}, nil),
		m.share.EXPECT().GenerateLink(ctx, "user-1", "vault-1").Return("https://ek/vault/share/tok1", nil),
		m.entries.EXPECT().GetVaultEntries(ctx, "vault-1").Return(nil, nil),
		m.mail.EXPECT().Send(ctx, gomock.Any()).Return(sendErr),
		// vault-2 is still attempted and goes through.
		m.recipients.EXPECT().GetVaultRecipients(ctx, "vault-2").
			Return([]models.RecipientContact{{RecipientID: "r2", Name: "Kid", Email: "kid@example.com"}}, nil),
		m.share.EXPECT().GenerateLink(ctx, "user-1", "vault-2").Return("https://ek/vault/share/tok2", nil),
		m.entries.EXPECT().GetVaultEntries(ctx, "vault-2").Return(nil, nil),
		m.mail.EXPECT().Send(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, msg models.MailMessage) error {
				assert.Equal(t, "kid@example.com", msg.To)
				assert.Contains(t, msg.HTML, "For the kids")
				return nil
			},
		),
		m.ledger.EXPECT().Record(ctx, "user-1", models.TitleVaultDelivered, gomock.Any(), "delivery", gomock.Any()),
	)

	delivered, err := svc.DeliverUserVaults(ctx, owner)
	assert.ErrorIs(t, err, sendErr, "the failed vault still surfaces in the returned error")
	assert.Equal(t, 1, delivered, "the healthy vault is delivered despite the earlier failure")
}

func TestDispatcherService_DeliverUserVaults_UnreadableNameFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, cipher, m := newTestDispatcherSvc(t, ctrl)
	ctx := context.Background()

	owner := models.User{UserID: "user-1", Name: "Alice"}

	// Encrypted under a different vault id: undecryptable for vault-1.
	foreignName, err := cipher.EncryptText("Letters to Mum", "user-1", "other-vault")
	require.NoError(t, err)

	vault := models.Vault{VaultID: "vault-1", UserID: "user-1", Name: foreignName}
	recipients := []models.RecipientContact{{RecipientID: "r1", Name: "Mum", Email: "mum@example.com"}}

	gomock.InOrder(
		m.vaults.EXPECT().GetUserVaults(ctx, "user-1").Return([]models.Vault{vault}, nil),
		m.recipients.EXPECT().GetVaultRecipients(ctx, "vault-1").Return(recipients, nil),
		m.share.EXPECT().GenerateLink(ctx, "user-1", "vault-1").Return("https://ek/vault/share/tok", nil),
		m.entries.EXPECT().GetVaultEntries(ctx, "vault-1").Return(nil, nil),
		m.mail.EXPECT().Send(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, msg models.MailMessage) error {
				assert.Contains(t, msg.HTML, "your vault")
				assert.NotContains(t, msg.HTML, foreignName)
				return nil
			},
		),
		m.ledger.EXPECT().Record(ctx, "user-1", models.TitleVaultDelivered, gomock.Any(), "delivery", gomock.Any()),
	)

	delivered, err := svc.DeliverUserVaults(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, 1, delivered)
}
