package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/logger"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/models"
)

// vaultRepository is the SQL-backed implementation of [VaultRepository].
// Name and description columns hold ciphertext; this layer never inspects
// them.
type vaultRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewVaultRepository constructs a [VaultRepository] backed by the provided
// database connection and logger.
func NewVaultRepository(db *DB, logger *logger.Logger) VaultRepository {
	logger.Debug().Msg("creating vault repository")
	return &vaultRepository{
		db:     db,
		logger: logger,
	}
}

// CreateVault persists a vault row. The id is generated by the caller before
// encryption, so the insert is a single phase with no post-insert rewrite.
func (r *vaultRepository) CreateVault(ctx context.Context, vault models.Vault) (models.Vault, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createVault,
		vault.VaultID, vault.UserID, vault.Name, vault.Description,
		vault.ContentKind, vault.CreatedAt, vault.UpdatedAt)

	var created models.Vault
	if err := scanVault(row, &created); err != nil {
		log.Err(err).Str("func", "*vaultRepository.CreateVault").Msg("error creating vault")
		return models.Vault{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// GetVaultByID retrieves a single vault row. Returns [ErrVaultNotFound] when
// no row matches. Ownership checks belong to the caller: the share flow
// resolves vaults it does not own.
func (r *vaultRepository) GetVaultByID(ctx context.Context, vaultID string) (models.Vault, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getVaultByID, vaultID)

	var found models.Vault
	if err := scanVault(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Vault{}, ErrVaultNotFound
		}
		log.Err(err).Str("func", "*vaultRepository.GetVaultByID").Msg("error finding vault")
		return models.Vault{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// GetUserVaults returns all vaults owned by userID, newest first.
func (r *vaultRepository) GetUserVaults(ctx context.Context, userID string) ([]models.Vault, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUserVaultsQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.GetUserVaults").Msg("error listing vaults")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var vaults []models.Vault
	for rows.Next() {
		var v models.Vault
		if err := rows.Scan(&v.VaultID, &v.UserID, &v.Name, &v.Description,
			&v.ContentKind, &v.CreatedAt, &v.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*vaultRepository.GetUserVaults").Msg("error scanning vault row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		vaults = append(vaults, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return vaults, nil
}

// DeleteVault removes a vault owned by userID. Entries and recipient links go
// with it via ON DELETE CASCADE. Returns [ErrVaultNotFound] when the vault
// does not exist or belongs to someone else.
func (r *vaultRepository) DeleteVault(ctx context.Context, vaultID, userID string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteVault, vaultID, userID)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.DeleteVault").Msg("error deleting vault")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrVaultNotFound
	}

	return nil
}

func scanVault(row *sql.Row, v *models.Vault) error {
	return row.Scan(&v.VaultID, &v.UserID, &v.Name, &v.Description,
		&v.ContentKind, &v.CreatedAt, &v.UpdatedAt)
}
