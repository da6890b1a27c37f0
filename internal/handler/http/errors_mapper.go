package http

import (
	"errors"
	"net/http"

	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/service"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/store"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/utils"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/models"
)

// errorStatusMap translates service and store sentinels into HTTP statuses.
// Ownership violations map to 404 on purpose: the API does not reveal whether
// a foreign resource exists.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidThreshold:        http.StatusBadRequest,
	service.ErrInvalidEntryType:        http.StatusBadRequest,
	service.ErrInvalidContactRole:      http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	service.ErrNotVaultOwner:           http.StatusNotFound,
	service.ErrNotContactOwner:         http.StatusNotFound,
	service.ErrShareLinkInvalid:        http.StatusNotFound,

	store.ErrEmailAlreadyExists:     http.StatusConflict,
	store.ErrNoUserWasFound:         http.StatusNotFound,
	store.ErrVaultNotFound:          http.StatusNotFound,
	store.ErrEntryNotFound:          http.StatusNotFound,
	store.ErrContactNotFound:        http.StatusNotFound,
	store.ErrRecipientNotFound:      http.StatusNotFound,
	store.ErrRecipientAlreadyLinked: http.StatusConflict,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// respondData writes a successful envelope around data.
func respondData(w http.ResponseWriter, data any, statusCode int) {
	_, _ = utils.WriteJSON(w, models.OK(data), statusCode)
}

// respondError writes a failed envelope with description and the status
// derived from err.
func respondError(w http.ResponseWriter, err error, description string) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		// Internal detail stays in logs.
		description = http.StatusText(http.StatusInternalServerError)
	}
	_, _ = utils.WriteJSON(w, models.Fail(description), status)
}
