package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/logger"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/models"
)

// contactRepository is the SQL-backed implementation of [ContactRepository].
type contactRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewContactRepository constructs a [ContactRepository] backed by the
// provided database connection and logger.
func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	logger.Debug().Msg("creating contact repository")
	return &contactRepository{
		db:     db,
		logger: logger,
	}
}

// CreateContact persists a contact row.
func (r *contactRepository) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createContact,
		contact.ContactID, contact.UserID, contact.Name, contact.Email,
		contact.Phone, contact.Role, contact.Verified, contact.CreatedAt)

	var created models.Contact
	if err := scanContact(row, &created); err != nil {
		log.Err(err).Str("func", "*contactRepository.CreateContact").Msg("error creating contact")
		return models.Contact{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// GetContactByID retrieves a single contact. Returns [ErrContactNotFound]
// when no row matches.
func (r *contactRepository) GetContactByID(ctx context.Context, contactID string) (models.Contact, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getContactByID, contactID)

	var found models.Contact
	if err := scanContact(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Contact{}, ErrContactNotFound
		}
		log.Err(err).Str("func", "*contactRepository.GetContactByID").Msg("error finding contact")
		return models.Contact{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// GetUserContacts returns all contacts owned by userID, newest first.
func (r *contactRepository) GetUserContacts(ctx context.Context, userID string) ([]models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUserContactsQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.GetUserContacts").Msg("error listing contacts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var contacts []models.Contact
	for rows.Next() {
		var c models.Contact
		if err := rows.Scan(&c.ContactID, &c.UserID, &c.Name, &c.Email,
			&c.Phone, &c.Role, &c.Verified, &c.CreatedAt); err != nil {
			log.Err(err).Str("func", "*contactRepository.GetUserContacts").Msg("error scanning contact row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return contacts, nil
}

// UpdateContact applies the non-nil fields of update and returns the updated
// row. Returns [ErrContactNotFound] when the contact does not exist or
// belongs to someone else.
func (r *contactRepository) UpdateContact(ctx context.Context, update models.ContactUpdate) (models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateContactQuery(update)
	if err != nil {
		return models.Contact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	var updated models.Contact
	if err := scanContact(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Contact{}, ErrContactNotFound
		}
		log.Err(err).Str("func", "*contactRepository.UpdateContact").Msg("error updating contact")
		return models.Contact{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteContact removes a contact owned by userID. Recipient links referencing
// the contact go with it via ON DELETE CASCADE. Returns [ErrContactNotFound]
// when no row matches.
func (r *contactRepository) DeleteContact(ctx context.Context, contactID, userID string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteContact, contactID, userID)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.DeleteContact").Msg("error deleting contact")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrContactNotFound
	}

	return nil
}

func scanContact(row *sql.Row, c *models.Contact) error {
	return row.Scan(&c.ContactID, &c.UserID, &c.Name, &c.Email,
		&c.Phone, &c.Role, &c.Verified, &c.CreatedAt)
}
