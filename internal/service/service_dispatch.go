package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"

	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/adapter"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/crypto"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/logger"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/store"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/models"
)

// deliveryEmailTemplate is the HTML body recipients receive. The share link
// grants access to the vault contents; everything else is context.
const deliveryEmailTemplate = `<html>
<body style="font-family: sans-serif; color: #1f2937;">
  <h2>{{.OwnerName}} has left something for you</h2>
  <p>Hello {{.RecipientName}},</p>
  <p>
    {{.OwnerName}} designated you as a recipient of their vault
    <strong>{{.VaultName}}</strong>{{if .VaultDescription}} ({{.VaultDescription}}){{end}}.
    It contains {{.EntryCount}} item{{if ne .EntryCount 1}}s{{end}}.
  </p>
  <p><a href="{{.ShareURL}}">Open the vault</a></p>
  <p>This link is personal. Please treat its contents with care.</p>
</body>
</html>`

var deliveryEmail = template.Must(template.New("delivery").Parse(deliveryEmailTemplate))

type deliveryEmailData struct {
	OwnerName        string
	RecipientName    string
	VaultName        string
	VaultDescription string
	EntryCount       int
	ShareURL         string
}

// dispatcherService is the concrete implementation of DispatcherService.
// It walks an inactive owner's vaults and mails every recipient a share link.
type dispatcherService struct {
	vaultRepository     store.VaultRepository
	entryRepository     store.EntryRepository
	recipientRepository store.RecipientRepository

	cipher crypto.ContentCipher
	share  ShareService
	mail   adapter.MailDispatcher
	ledger LedgerService
	logger *logger.Logger
}

// NewDispatcherService constructs a DispatcherService over the given stores,
// share service, and mail adapter.
func NewDispatcherService(
	repos *store.Repositories,
	cipher crypto.ContentCipher,
	share ShareService,
	mail adapter.MailDispatcher,
	ledger LedgerService,
	logger *logger.Logger,
) DispatcherService {
	return &dispatcherService{
		vaultRepository:     repos.VaultRepository,
		entryRepository:     repos.EntryRepository,
		recipientRepository: repos.RecipientRepository,
		cipher:              cipher,
		share:               share,
		mail:                mail,
		ledger:              ledger,
		logger:              logger,
	}
}

// DeliverUserVaults delivers every vault of user that has at least one
// recipient. Returns the number of vaults fully delivered.
//
// Vaults are isolated from each other: a failure in one vault is collected
// and the remaining vaults still go out. Within a vault, a failed send aborts
// that vault's remaining recipients so its delivered ledger entry is only
// written for a complete batch.
func (d *dispatcherService) DeliverUserVaults(ctx context.Context, user models.User) (int, error) {
	log := logger.FromContext(ctx)

	vaults, err := d.vaultRepository.GetUserVaults(ctx, user.UserID)
	if err != nil {
		return 0, fmt.Errorf("error listing vaults for delivery: %w", err)
	}

	delivered := 0
	var vaultErrs []error
	for _, vault := range vaults {
		recipients, err := d.recipientRepository.GetVaultRecipients(ctx, vault.VaultID)
		if err != nil {
			vaultErrs = append(vaultErrs, fmt.Errorf("vault %s: error listing recipients for delivery: %w", vault.VaultID, err))
			continue
		}
		if len(recipients) == 0 {
			log.Debug().Str("vault_id", vault.VaultID).Msg("vault has no recipients, skipping")
			continue
		}

		if err := d.deliverVault(ctx, user, vault, recipients); err != nil {
			log.Err(err).Str("vault_id", vault.VaultID).Msg("vault delivery failed, continuing with remaining vaults")
			vaultErrs = append(vaultErrs, fmt.Errorf("vault %s: %w", vault.VaultID, err))
			continue
		}
		delivered++
	}

	return delivered, errors.Join(vaultErrs...)
}

func (d *dispatcherService) deliverVault(ctx context.Context, user models.User, vault models.Vault, recipients []models.RecipientContact) error {
	log := logger.FromContext(ctx)

	shareURL, err := d.share.GenerateLink(ctx, user.UserID, vault.VaultID)
	if err != nil {
		return fmt.Errorf("error generating share link for delivery: %w", err)
	}

	entries, err := d.entryRepository.GetVaultEntries(ctx, vault.VaultID)
	if err != nil {
		return fmt.Errorf("error counting entries for delivery: %w", err)
	}

	vaultName := d.decryptOrFallback(vault.Name, user.UserID, vault.VaultID, "your vault")
	vaultDescription := ""
	if vault.Description != "" {
		vaultDescription = d.decryptOrFallback(vault.Description, user.UserID, vault.VaultID, "")
	}

	for _, recipient := range recipients {
		html, err := renderDeliveryEmail(deliveryEmailData{
			OwnerName:        user.Name,
			RecipientName:    recipient.Name,
			VaultName:        vaultName,
			VaultDescription: vaultDescription,
			EntryCount:       len(entries),
			ShareURL:         shareURL,
		})
		if err != nil {
			return fmt.Errorf("error rendering delivery email: %w", err)
		}

		err = d.mail.Send(ctx, models.MailMessage{
			To:      recipient.Email,
			Subject: fmt.Sprintf("%s has shared a vault with you", user.Name),
			HTML:    html,
		})
		if err != nil {
			log.Err(err).Str("vault_id", vault.VaultID).Str("to", recipient.Email).
				Msg("delivery send failed, aborting remaining recipients")
			return fmt.Errorf("delivery send failed: %w", err)
		}

		log.Info().Str("vault_id", vault.VaultID).Str("to", recipient.Email).Msg("vault delivered to recipient")
	}

	d.ledger.Record(ctx, user.UserID, models.TitleVaultDelivered,
		fmt.Sprintf("Delivered vault %q to %d recipient(s)", vaultName, len(recipients)), "delivery",
		map[string]any{"vaultId": vault.VaultID, "recipients": len(recipients)})

	return nil
}

func (d *dispatcherService) decryptOrFallback(content, userID, vaultID, fallback string) string {
	result := d.cipher.SafeDecrypt(content, userID, vaultID)
	if result.Outcome == crypto.OutcomeFailed {
		return fallback
	}
	return result.Text
}

func renderDeliveryEmail(data deliveryEmailData) (string, error) {
	var buf bytes.Buffer
	if err := deliveryEmail.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
