package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/logger"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/models"
)

// entryRepository is the SQL-backed implementation of [EntryRepository].
type entryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewEntryRepository constructs an [EntryRepository] backed by the provided
// database connection and logger.
func NewEntryRepository(db *DB, logger *logger.Logger) EntryRepository {
	logger.Debug().Msg("creating entry repository")
	return &entryRepository{
		db:     db,
		logger: logger,
	}
}

// CreateEntry persists a vault entry. Content arrives already encrypted.
func (r *entryRepository) CreateEntry(ctx context.Context, entry models.VaultEntry) (models.VaultEntry, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createEntry,
		entry.EntryID, entry.VaultID, entry.Type, entry.Content,
		entry.ContentKind, entry.CreatedAt)

	var created models.VaultEntry
	if err := scanEntry(row, &created); err != nil {
		log.Err(err).Str("func", "*entryRepository.CreateEntry").Msg("error creating entry")
		return models.VaultEntry{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// GetVaultEntries returns the entries of a vault in insertion order.
func (r *entryRepository) GetVaultEntries(ctx context.Context, vaultID string) ([]models.VaultEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildVaultEntriesQuery(vaultID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.GetVaultEntries").Msg("error listing entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var entries []models.VaultEntry
	for rows.Next() {
		var e models.VaultEntry
		if err := rows.Scan(&e.EntryID, &e.VaultID, &e.Type, &e.Content,
			&e.ContentKind, &e.CreatedAt); err != nil {
			log.Err(err).Str("func", "*entryRepository.GetVaultEntries").Msg("error scanning entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

// DeleteEntry removes a single entry from a vault. Returns [ErrEntryNotFound]
// when the entry does not exist in that vault.
func (r *entryRepository) DeleteEntry(ctx context.Context, entryID, vaultID string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteEntry, entryID, vaultID)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.DeleteEntry").Msg("error deleting entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrEntryNotFound
	}

	return nil
}

func scanEntry(row *sql.Row, e *models.VaultEntry) error {
	return row.Scan(&e.EntryID, &e.VaultID, &e.Type, &e.Content,
		&e.ContentKind, &e.CreatedAt)
}
