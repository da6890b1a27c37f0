package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Three surfaces share it: the public auth and share
// endpoints, the authenticated owner API, and the service-key-guarded scan
// trigger.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)

		// Recipient-facing: the token itself is the credential.
		r.Get("/api/vault/share/{token}", h.resolveShare)
	})

	// internal routes guarded by the shared service key
	router.Group(func(r chi.Router) {
		r.Use(h.requireServiceKey)
		r.Post("/api/internal/scan", h.triggerScan)
	})

	// owner API
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth/me", h.me)
		r.Patch("/api/auth/threshold", h.updateThreshold)

		r.Post("/api/vaults", h.createVault)
		r.Get("/api/vaults", h.listVaults)
		r.Get("/api/vaults/{vaultID}", h.getVault)
		r.Delete("/api/vaults/{vaultID}", h.deleteVault)

		r.Post("/api/vaults/{vaultID}/entries", h.addEntry)
		r.Post("/api/vaults/{vaultID}/entries/media", h.addMediaEntry)
		r.Get("/api/vaults/{vaultID}/entries", h.listEntries)
		r.Delete("/api/vaults/{vaultID}/entries/{entryID}", h.deleteEntry)

		r.Post("/api/vaults/{vaultID}/recipients", h.addRecipient)
		r.Get("/api/vaults/{vaultID}/recipients", h.listRecipients)
		r.Delete("/api/vaults/{vaultID}/recipients/{recipientID}", h.removeRecipient)

		r.Post("/api/contacts", h.createContact)
		r.Get("/api/contacts", h.listContacts)
		r.Patch("/api/contacts/{contactID}", h.updateContact)
		r.Delete("/api/contacts/{contactID}", h.deleteContact)

		r.Get("/api/timeline", h.timeline)
		r.Get("/api/timeline/export", h.exportTimeline)
	})

	return router
}
