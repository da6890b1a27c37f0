package http

import (
	"net/http"
	"strconv"

	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/logger"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/service"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/utils"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/models"
)

// timeline returns the user's activity ledger, newest first. Optional query
// parameters: title (exact match) and limit.
func (h *Handler) timeline(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		respondError(w, service.ErrTokenIsExpiredOrInvalid, "unauthorized")
		return
	}

	filter := models.NotificationFilter{
		UserID: userID,
		Title:  r.URL.Query().Get("title"),
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			respondError(w, service.ErrInvalidDataProvided, "invalid limit")
			return
		}
		filter.Limit = limit
	}

	notifications, err := h.services.LedgerService.Timeline(ctx, filter)
	if err != nil {
		log.Err(err).Msg("error reading timeline")
		respondError(w, err, "error reading timeline")
		return
	}

	respondData(w, notifications, http.StatusOK)
}

// exportTimeline streams the full timeline as a CSV attachment.
func (h *Handler) exportTimeline(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		respondError(w, service.ErrTokenIsExpiredOrInvalid, "unauthorized")
		return
	}

	csvData, err := h.services.LedgerService.ExportCSV(ctx, userID)
	if err != nil {
		log.Err(err).Msg("error exporting timeline")
		respondError(w, err, "error exporting timeline")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="timeline.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(csvData)
}
