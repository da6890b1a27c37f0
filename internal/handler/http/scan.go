package http

import (
	"net/http"

	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/logger"
)

// triggerScan runs one inactivity sweep on demand. The periodic worker covers
// normal operation; this endpoint exists for schedulers and operators.
func (h *Handler) triggerScan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	report := h.services.ScannerService.Run(ctx)

	log.Info().Int("inactive_users", report.InactiveUsers).Int("vaults_delivered", report.VaultsDelivered).
		Msg("manual inactivity scan finished")

	// Partial failures ride inside the report; the sweep itself completed.
	respondData(w, report, http.StatusOK)
}
