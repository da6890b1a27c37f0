package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/logger"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/service"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/utils"
)

type addRecipientRequest struct {
	ContactID string `json:"contactId"`
}

func (h *Handler) addRecipient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		respondError(w, service.ErrTokenIsExpiredOrInvalid, "unauthorized")
		return
	}

	var req addRecipientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		respondError(w, service.ErrInvalidDataProvided, "Invalid JSON was passed")
		return
	}

	vaultID := chi.URLParam(r, "vaultID")
	recipient, err := h.services.VaultService.AddRecipient(ctx, userID, vaultID, req.ContactID)
	if err != nil {
		log.Err(err).Str("vault_id", vaultID).Str("contact_id", req.ContactID).Msg("error adding recipient")
		respondError(w, err, "error adding recipient")
		return
	}

	respondData(w, recipient, http.StatusCreated)
}

func (h *Handler) listRecipients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		respondError(w, service.ErrTokenIsExpiredOrInvalid, "unauthorized")
		return
	}

	vaultID := chi.URLParam(r, "vaultID")
	recipients, err := h.services.VaultService.ListRecipients(ctx, userID, vaultID)
	if err != nil {
		log.Err(err).Str("vault_id", vaultID).Msg("error listing recipients")
		respondError(w, err, "error listing recipients")
		return
	}

	respondData(w, recipients, http.StatusOK)
}

func (h *Handler) removeRecipient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		respondError(w, service.ErrTokenIsExpiredOrInvalid, "unauthorized")
		return
	}

	vaultID := chi.URLParam(r, "vaultID")
	recipientID := chi.URLParam(r, "recipientID")
	if err := h.services.VaultService.RemoveRecipient(ctx, userID, vaultID, recipientID); err != nil {
		log.Err(err).Str("recipient_id", recipientID).Msg("error removing recipient")
		respondError(w, err, "error removing recipient")
		return
	}

	respondData(w, nil, http.StatusOK)
}
