package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/logger"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/store"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/utils"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/models"
)

// contactService is the concrete implementation of ContactService. Contact
// records are plaintext: they are the user's address book, not vault content.
type contactService struct {
	contactRepository store.ContactRepository
	ledger            LedgerService
	uuid              *utils.UUIDGenerator
	logger            *logger.Logger
}

// NewContactService constructs a ContactService over the contact store.
func NewContactService(contactRepository store.ContactRepository, ledger LedgerService, logger *logger.Logger) ContactService {
	return &contactService{
		contactRepository: contactRepository,
		ledger:            ledger,
		uuid:              utils.NewUUIDGenerator(),
		logger:            logger,
	}
}

// CreateContact persists a new contact for its owner.
func (c *contactService) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	log := logger.FromContext(ctx)

	if contact.UserID == "" || contact.Name == "" || contact.Email == "" {
		return models.Contact{}, ErrInvalidDataProvided
	}
	if !contact.Role.Valid() {
		return models.Contact{}, ErrInvalidContactRole
	}

	contact.ContactID = c.uuid.Generate()
	contact.Verified = false
	contact.CreatedAt = time.Now().UTC()

	created, err := c.contactRepository.CreateContact(ctx, contact)
	if err != nil {
		log.Err(err).Str("user_id", contact.UserID).Msg("contact creation ended with error")
		return models.Contact{}, fmt.Errorf("contact creation ended with error: %w", err)
	}

	c.ledger.Record(ctx, contact.UserID, models.TitleContactAdded,
		fmt.Sprintf("Added contact %q", contact.Name), "contact",
		map[string]any{"contactId": created.ContactID})

	return created, nil
}

// ListContacts returns the user's contacts, newest first.
func (c *contactService) ListContacts(ctx context.Context, userID string) ([]models.Contact, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return nil, ErrInvalidDataProvided
	}

	contacts, err := c.contactRepository.GetUserContacts(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("error listing contacts")
		return nil, fmt.Errorf("error listing contacts: %w", err)
	}

	return contacts, nil
}

// UpdateContact applies a partial update to an owned contact.
func (c *contactService) UpdateContact(ctx context.Context, update models.ContactUpdate) (models.Contact, error) {
	log := logger.FromContext(ctx)

	if update.ContactID == "" || update.UserID == "" {
		return models.Contact{}, ErrInvalidDataProvided
	}
	if update.Name == nil && update.Email == nil && update.Phone == nil &&
		update.Role == nil && update.Verified == nil {
		return models.Contact{}, ErrInvalidDataProvided
	}
	if update.Role != nil && !update.Role.Valid() {
		return models.Contact{}, ErrInvalidContactRole
	}

	updated, err := c.contactRepository.UpdateContact(ctx, update)
	if err != nil {
		log.Err(err).Str("contact_id", update.ContactID).Msg("contact update ended with error")
		return models.Contact{}, fmt.Errorf("contact update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteContact removes an owned contact. Recipient links pointing at it are
// removed by the schema's cascade, which silently shrinks affected vaults'
// recipient lists.
func (c *contactService) DeleteContact(ctx context.Context, contactID, userID string) error {
	log := logger.FromContext(ctx)

	if contactID == "" || userID == "" {
		return ErrInvalidDataProvided
	}

	if err := c.contactRepository.DeleteContact(ctx, contactID, userID); err != nil {
		log.Err(err).Str("contact_id", contactID).Msg("contact deletion ended with error")
		return fmt.Errorf("contact deletion ended with error: %w", err)
	}

	return nil
}
