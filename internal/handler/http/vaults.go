package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/logger"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/service"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/utils"
)

type createVaultRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *Handler) createVault(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		respondError(w, service.ErrTokenIsExpiredOrInvalid, "unauthorized")
		return
	}

	var req createVaultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		respondError(w, service.ErrInvalidDataProvided, "Invalid JSON was passed")
		return
	}

	vault, err := h.services.VaultService.CreateVault(ctx, userID, req.Name, req.Description)
	if err != nil {
		log.Err(err).Msg("error creating vault")
		respondError(w, err, "error creating vault")
		return
	}

	respondData(w, vault, http.StatusCreated)
}

func (h *Handler) listVaults(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		respondError(w, service.ErrTokenIsExpiredOrInvalid, "unauthorized")
		return
	}

	vaults, err := h.services.VaultService.ListVaults(ctx, userID)
	if err != nil {
		log.Err(err).Msg("error listing vaults")
		respondError(w, err, "error listing vaults")
		return
	}

	respondData(w, vaults, http.StatusOK)
}

func (h *Handler) getVault(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		respondError(w, service.ErrTokenIsExpiredOrInvalid, "unauthorized")
		return
	}

	vaultID := chi.URLParam(r, "vaultID")
	vault, err := h.services.VaultService.GetVault(ctx, userID, vaultID)
	if err != nil {
		log.Err(err).Str("vault_id", vaultID).Msg("error getting vault")
		respondError(w, err, "vault not found")
		return
	}

	respondData(w, vault, http.StatusOK)
}

func (h *Handler) deleteVault(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		respondError(w, service.ErrTokenIsExpiredOrInvalid, "unauthorized")
		return
	}

	vaultID := chi.URLParam(r, "vaultID")
	if err := h.services.VaultService.DeleteVault(ctx, userID, vaultID); err != nil {
		log.Err(err).Str("vault_id", vaultID).Msg("error deleting vault")
		respondError(w, err, "error deleting vault")
		return
	}

	respondData(w, nil, http.StatusOK)
}
