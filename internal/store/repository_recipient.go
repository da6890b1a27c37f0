package store

import (
	"context"
	"fmt"

	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/logger"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/models"
)

// recipientRepository is the SQL-backed implementation of
// [RecipientRepository].
type recipientRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRecipientRepository constructs a [RecipientRepository] backed by the
// provided database connection and logger.
func NewRecipientRepository(db *DB, logger *logger.Logger) RecipientRepository {
	logger.Debug().Msg("creating recipient repository")
	return &recipientRepository{
		db:     db,
		logger: logger,
	}
}

// AddRecipient links a contact to a vault. Returns
// [ErrRecipientAlreadyLinked] when the pair already exists.
func (r *recipientRepository) AddRecipient(ctx context.Context, recipient models.VaultRecipient) (models.VaultRecipient, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, addRecipient,
		recipient.RecipientID, recipient.VaultID, recipient.ContactID, recipient.CreatedAt)

	var created models.VaultRecipient
	if err := row.Scan(&created.RecipientID, &created.VaultID, &created.ContactID, &created.CreatedAt); err != nil {
		log.Err(err).Str("func", "*recipientRepository.AddRecipient").Msg("error adding recipient")

		if isUniqueViolation(err) {
			return models.VaultRecipient{}, ErrRecipientAlreadyLinked
		}
		return models.VaultRecipient{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// GetVaultRecipients returns the vault's recipient links joined with their
// contact records, in the order they were added. Links whose contact row was
// deleted disappear from this view together with the link itself (cascade),
// so every returned recipient is deliverable.
func (r *recipientRepository) GetVaultRecipients(ctx context.Context, vaultID string) ([]models.RecipientContact, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getVaultRecipients, vaultID)
	if err != nil {
		log.Err(err).Str("func", "*recipientRepository.GetVaultRecipients").Msg("error listing recipients")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var recipients []models.RecipientContact
	for rows.Next() {
		var rc models.RecipientContact
		if err := rows.Scan(&rc.RecipientID, &rc.VaultID, &rc.ContactID,
			&rc.Name, &rc.Email, &rc.Role, &rc.CreatedAt); err != nil {
			log.Err(err).Str("func", "*recipientRepository.GetVaultRecipients").Msg("error scanning recipient row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		recipients = append(recipients, rc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return recipients, nil
}

// RemoveRecipient deletes a recipient link from a vault. Returns
// [ErrRecipientNotFound] when the link does not exist on that vault.
func (r *recipientRepository) RemoveRecipient(ctx context.Context, recipientID, vaultID string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, removeRecipient, recipientID, vaultID)
	if err != nil {
		log.Err(err).Str("func", "*recipientRepository.RemoveRecipient").Msg("error removing recipient")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRecipientNotFound
	}

	return nil
}
