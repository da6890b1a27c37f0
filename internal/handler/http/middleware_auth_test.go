package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/service"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHandler(t, ctrl)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/vaults", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"isSuccessful":false`)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newTestHandler(t, ctrl)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/vaults", nil)
	req.Header.Set("Authorization", "Bearer")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)
	router := h.Init()

	m.auth.EXPECT().ParseToken(gomock.Any(), "expired-token").
		Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)

	req := httptest.NewRequest(http.MethodGet, "/api/vaults", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	token, err := getTokenFromAuthHeader("Bearer abc.def.ghi")
	assert.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = getTokenFromAuthHeader("Bearer")
	assert.ErrorIs(t, err, ErrInvalidAuthorizationHeader)

	_, err = getTokenFromAuthHeader("Bearer ")
	assert.ErrorIs(t, err, ErrEmptyToken)
}

func TestServiceKeyGuard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)
	router := h.Init()

	// Wrong key is rejected before the scanner runs.
	req := httptest.NewRequest(http.MethodPost, "/api/internal/scan", nil)
	req.Header.Set("X-Service-Key", "not-the-key")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Missing key likewise.
	req = httptest.NewRequest(http.MethodPost, "/api/internal/scan", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// The right key triggers a sweep.
	m.scanner.EXPECT().Run(gomock.Any()).Return(models.ScanReport{Success: true, InactiveUsers: 1, VaultsDelivered: 2})

	req = httptest.NewRequest(http.MethodPost, "/api/internal/scan", nil)
	req.Header.Set("X-Service-Key", testServiceKey)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"vaultsDelivered":2`)
}
