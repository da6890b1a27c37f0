package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/logger"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/models"
)

var vaultColumns = []string{"id", "user_id", "name", "description", "content_kind", "created_at", "updated_at"}

func newTestVaultRepo(t *testing.T) (*vaultRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &vaultRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func TestCreateVault_Success(t *testing.T) {
	repo, mock, db := newTestVaultRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	vault := models.Vault{
		VaultID:     "vault-uuid-1",
		UserID:      "user-uuid-1",
		Name:        "U2FsdGVkX1-encrypted-name",
		Description: "U2FsdGVkX1-encrypted-description",
		ContentKind: models.ContentKindCiphertext,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	rows := sqlmock.
		NewRows(vaultColumns).
		AddRow(vault.VaultID, vault.UserID, vault.Name, vault.Description, vault.ContentKind, now, now)

	mock.ExpectQuery("INSERT INTO vaults").
		WithArgs(vault.VaultID, vault.UserID, vault.Name, vault.Description, vault.ContentKind, now, now).
		WillReturnRows(rows)

	created, err := repo.CreateVault(ctx, vault)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.VaultID != "vault-uuid-1" {
		t.Errorf("expected VaultID=vault-uuid-1, got %s", created.VaultID)
	}
	if created.ContentKind != models.ContentKindCiphertext {
		t.Errorf("expected ciphertext kind, got %s", created.ContentKind)
	}
}

func TestGetVaultByID_NotFound(t *testing.T) {
	repo, mock, db := newTestVaultRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, user_id").
		WithArgs("ghost-vault").
		WillReturnRows(sqlmock.NewRows(vaultColumns))

	_, err := repo.GetVaultByID(ctx, "ghost-vault")
	if !errors.Is(err, ErrVaultNotFound) {
		t.Fatalf("expected ErrVaultNotFound, got %v", err)
	}
}

func TestGetUserVaults(t *testing.T) {
	repo, mock, db := newTestVaultRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows(vaultColumns).
		AddRow("vault-2", "user-uuid-1", "n2", "d2", models.ContentKindCiphertext, now, now).
		AddRow("vault-1", "user-uuid-1", "n1", "d1", models.ContentKindCiphertext, now.Add(-time.Hour), now.Add(-time.Hour))

	mock.ExpectQuery("SELECT id, user_id").
		WithArgs("user-uuid-1").
		WillReturnRows(rows)

	vaults, err := repo.GetUserVaults(ctx, "user-uuid-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vaults) != 2 {
		t.Fatalf("expected 2 vaults, got %d", len(vaults))
	}
	if vaults[0].VaultID != "vault-2" {
		t.Errorf("expected newest vault first, got %s", vaults[0].VaultID)
	}
}

func TestDeleteVault_Success(t *testing.T) {
	repo, mock, db := newTestVaultRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM vaults").
		WithArgs("vault-uuid-1", "user-uuid-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteVault(ctx, "vault-uuid-1", "user-uuid-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteVault_WrongOwner(t *testing.T) {
	repo, mock, db := newTestVaultRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM vaults").
		WithArgs("vault-uuid-1", "intruder").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteVault(ctx, "vault-uuid-1", "intruder")
	if !errors.Is(err, ErrVaultNotFound) {
		t.Fatalf("expected ErrVaultNotFound, got %v", err)
	}
}
