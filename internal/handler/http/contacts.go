package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/logger"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/service"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/utils"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/models"
)

type createContactRequest struct {
	Name  string             `json:"name"`
	Email string             `json:"email"`
	Phone string             `json:"phone"`
	Role  models.ContactRole `json:"role"`
}

type updateContactRequest struct {
	Name     *string             `json:"name"`
	Email    *string             `json:"email"`
	Phone    *string             `json:"phone"`
	Role     *models.ContactRole `json:"role"`
	Verified *bool               `json:"verified"`
}

func (h *Handler) createContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		respondError(w, service.ErrTokenIsExpiredOrInvalid, "unauthorized")
		return
	}

	var req createContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		respondError(w, service.ErrInvalidDataProvided, "Invalid JSON was passed")
		return
	}

	contact, err := h.services.ContactService.CreateContact(ctx, models.Contact{
		UserID: userID,
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Role:   req.Role,
	})
	if err != nil {
		log.Err(err).Msg("error creating contact")
		respondError(w, err, "error creating contact")
		return
	}

	respondData(w, contact, http.StatusCreated)
}

func (h *Handler) listContacts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		respondError(w, service.ErrTokenIsExpiredOrInvalid, "unauthorized")
		return
	}

	contacts, err := h.services.ContactService.ListContacts(ctx, userID)
	if err != nil {
		log.Err(err).Msg("error listing contacts")
		respondError(w, err, "error listing contacts")
		return
	}

	respondData(w, contacts, http.StatusOK)
}

func (h *Handler) updateContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		respondError(w, service.ErrTokenIsExpiredOrInvalid, "unauthorized")
		return
	}

	var req updateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		respondError(w, service.ErrInvalidDataProvided, "Invalid JSON was passed")
		return
	}

	contactID := chi.URLParam(r, "contactID")
	contact, err := h.services.ContactService.UpdateContact(ctx, models.ContactUpdate{
		ContactID: contactID,
		UserID:    userID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Role:      req.Role,
		Verified:  req.Verified,
	})
	if err != nil {
		log.Err(err).Str("contact_id", contactID).Msg("error updating contact")
		respondError(w, err, "error updating contact")
		return
	}

	respondData(w, contact, http.StatusOK)
}

func (h *Handler) deleteContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		respondError(w, service.ErrTokenIsExpiredOrInvalid, "unauthorized")
		return
	}

	contactID := chi.URLParam(r, "contactID")
	if err := h.services.ContactService.DeleteContact(ctx, contactID, userID); err != nil {
		log.Err(err).Str("contact_id", contactID).Msg("error deleting contact")
		respondError(w, err, "error deleting contact")
		return
	}

	respondData(w, nil, http.StatusOK)
}
