package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/adapter"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/logger"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/service"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/utils"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/models"
)

// maxMediaUploadBytes caps multipart media uploads at 50 MiB.
const maxMediaUploadBytes = 50 << 20

type addEntryRequest struct {
	Type    models.EntryType `json:"type"`
	Content string           `json:"content"`
}

func (h *Handler) addEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		respondError(w, service.ErrTokenIsExpiredOrInvalid, "unauthorized")
		return
	}

	var req addEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		respondError(w, service.ErrInvalidDataProvided, "Invalid JSON was passed")
		return
	}

	vaultID := chi.URLParam(r, "vaultID")
	entry, err := h.services.VaultService.AddEntry(ctx, userID, vaultID, req.Type, req.Content)
	if err != nil {
		log.Err(err).Str("vault_id", vaultID).Msg("error adding entry")
		respondError(w, err, "error adding entry")
		return
	}

	respondData(w, entry, http.StatusCreated)
}

// addMediaEntry accepts a multipart form with a "file" part and a "type"
// field. The object goes to media storage; only the encrypted metadata
// envelope lands in the vault.
func (h *Handler) addMediaEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		respondError(w, service.ErrTokenIsExpiredOrInvalid, "unauthorized")
		return
	}

	if err := r.ParseMultipartForm(maxMediaUploadBytes); err != nil {
		log.Err(err).Msg("invalid multipart form")
		respondError(w, service.ErrInvalidDataProvided, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Err(err).Msg("missing file part")
		respondError(w, service.ErrInvalidDataProvided, "missing file part")
		return
	}
	defer func() { _ = file.Close() }()

	entryType := models.EntryType(r.FormValue("type"))

	vaultID := chi.URLParam(r, "vaultID")
	entry, err := h.services.VaultService.AddMediaEntry(ctx, userID, vaultID, entryType, adapter.MediaUpload{
		FileName: header.Filename,
		MimeType: header.Header.Get("Content-Type"),
		Size:     header.Size,
		Body:     file,
	})
	if err != nil {
		log.Err(err).Str("vault_id", vaultID).Msg("error adding media entry")
		respondError(w, err, "error adding media entry")
		return
	}

	respondData(w, entry, http.StatusCreated)
}

func (h *Handler) listEntries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		respondError(w, service.ErrTokenIsExpiredOrInvalid, "unauthorized")
		return
	}

	vaultID := chi.URLParam(r, "vaultID")
	entries, err := h.services.VaultService.ListEntries(ctx, userID, vaultID)
	if err != nil {
		log.Err(err).Str("vault_id", vaultID).Msg("error listing entries")
		respondError(w, err, "error listing entries")
		return
	}

	respondData(w, entries, http.StatusOK)
}

func (h *Handler) deleteEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		respondError(w, service.ErrTokenIsExpiredOrInvalid, "unauthorized")
		return
	}

	vaultID := chi.URLParam(r, "vaultID")
	entryID := chi.URLParam(r, "entryID")
	if err := h.services.VaultService.DeleteEntry(ctx, userID, vaultID, entryID); err != nil {
		log.Err(err).Str("entry_id", entryID).Msg("error deleting entry")
		respondError(w, err, "error deleting entry")
		return
	}

	respondData(w, nil, http.StatusOK)
}
