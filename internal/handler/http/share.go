package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/logger"
)

// resolveShare is the public recipient endpoint: the token in the path is the
// only credential. Every failure answers 404 with the same description.
func (h *Handler) resolveShare(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	token := chi.URLParam(r, "token")
	view, err := h.services.ShareService.ResolveShare(ctx, token)
	if err != nil {
		log.Warn().Err(err).Msg("share resolution failed")
		respondError(w, err, "share link is invalid or no longer available")
		return
	}

	respondData(w, view, http.StatusOK)
}
