package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/logger"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/service"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/utils"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type thresholdRequest struct {
	Days int `json:"days"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		respondError(w, service.ErrInvalidDataProvided, "Invalid JSON was passed")
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		log.Err(err).Msg("error occurred during user registration")
		respondError(w, err, "registration failed")
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		respondError(w, err, "creation of token failed")
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	respondData(w, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		respondError(w, service.ErrInvalidDataProvided, "Invalid JSON was passed")
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("login failed")
		respondError(w, err, "invalid email/password")
		return
	}

	log.Debug().Str("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		respondError(w, err, "creation of token failed")
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	respondData(w, foundUser, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Msg("no user ID in context")
		respondError(w, service.ErrTokenIsExpiredOrInvalid, "unauthorized")
		return
	}

	user, err := h.services.AuthService.GetUser(ctx, userID)
	if err != nil {
		log.Err(err).Str("id", userID).Msg("error getting user")
		respondError(w, err, "error getting user")
		return
	}

	respondData(w, user, http.StatusOK)
}

func (h *Handler) updateThreshold(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		respondError(w, service.ErrTokenIsExpiredOrInvalid, "unauthorized")
		return
	}

	var req thresholdRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		respondError(w, service.ErrInvalidDataProvided, "Invalid JSON was passed")
		return
	}

	updated, err := h.services.AuthService.UpdateInactivityThreshold(ctx, userID, req.Days)
	if err != nil {
		log.Err(err).Int("days", req.Days).Msg("error updating inactivity threshold")
		respondError(w, err, "error updating inactivity threshold")
		return
	}

	respondData(w, updated, http.StatusOK)
}
