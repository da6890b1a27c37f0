package service

import (
	"context"
	"testing"

	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/logger"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/mock"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestContactSvc(t *testing.T, ctrl *gomock.Controller) (*contactService, *mock.MockContactRepository, *mock.MockLedgerService) {
	t.Helper()
	mockContacts := mock.NewMockContactRepository(ctrl)
	mockLedger := mock.NewMockLedgerService(ctrl)
	svc := NewContactService(mockContacts, mockLedger, logger.Nop()).(*contactService)
	return svc, mockContacts, mockLedger
}

func TestContactService_CreateContact_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockContacts, mockLedger := newTestContactSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockContacts.EXPECT().CreateContact(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, c models.Contact) (models.Contact, error) {
				assert.NotEmpty(t, c.ContactID)
				assert.False(t, c.Verified, "new contacts always start unverified")
				return c, nil
			},
		),
		mockLedger.EXPECT().Record(ctx, "user-1", models.TitleContactAdded, gomock.Any(), "contact", gomock.Any()),
	)

	created, err := svc.CreateContact(ctx, models.Contact{
		UserID:   "user-1",
		Name:     "Mum",
		Email:    "mum@example.com",
		Role:     models.RoleFamily,
		Verified: true, // client-supplied flag is ignored
	})
	require.NoError(t, err)
	assert.False(t, created.Verified)
}

func TestContactService_CreateContact_InvalidRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestContactSvc(t, ctrl)

	_, err := svc.CreateContact(context.Background(), models.Contact{
		UserID: "user-1",
		Name:   "Mum",
		Email:  "mum@example.com",
		Role:   "acquaintance",
	})
	assert.ErrorIs(t, err, ErrInvalidContactRole)
}

func TestContactService_UpdateContact_RequiresAField(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestContactSvc(t, ctrl)

	_, err := svc.UpdateContact(context.Background(), models.ContactUpdate{
		ContactID: "contact-1",
		UserID:    "user-1",
	})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestContactService_UpdateContact_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockContacts, _ := newTestContactSvc(t, ctrl)
	ctx := context.Background()

	verified := true
	update := models.ContactUpdate{
		ContactID: "contact-1",
		UserID:    "user-1",
		Verified:  &verified,
	}

	mockContacts.EXPECT().UpdateContact(ctx, update).
		Return(models.Contact{ContactID: "contact-1", UserID: "user-1", Verified: true}, nil)

	updated, err := svc.UpdateContact(ctx, update)
	require.NoError(t, err)
	assert.True(t, updated.Verified)
}
