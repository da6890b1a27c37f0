package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/config"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/logger"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/store"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/utils"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and HMAC-SHA256 for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// uuid generates application-side primary keys.
	uuid *utils.UUIDGenerator

	// hashKey is the HMAC secret used when hashing user passwords before
	// storage or comparison. Must match the value used at registration time.
	hashKey string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		uuid:           utils.NewUUIDGenerator(),
		hashKey:        cfg.PasswordHashKey,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// The password is hashed with the configured HMAC key before persistence.
// LastLogin is initialised to the registration time so a brand-new account
// starts its inactivity clock at zero.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if name, email, or password is empty.
//   - A wrapped storage error if the repository call fails (e.g. email
//     already taken — see store.ErrEmailAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, name, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if name == "" || email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	now := time.Now().UTC()
	user := models.User{
		UserID:                  a.uuid.Generate(),
		Email:                   email,
		Name:                    name,
		PasswordHash:            utils.HashString(password, a.hashKey),
		LastLogin:               now,
		InactivityThresholdDays: 30,
		CreatedAt:               now,
		UpdatedAt:               now,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user and refreshes their last-login
// timestamp. The refresh is what keeps an active owner's vaults from being
// delivered; a failure to record it is therefore treated as a login failure
// rather than ignored.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - A wrapped storage error if the lookup fails (e.g. user not found —
//     see store.ErrNoUserWasFound).
//   - ErrWrongPassword if the hashed passwords do not match.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if foundUser.PasswordHash != utils.HashString(password, a.hashKey) {
		log.Error().Str("id", foundUser.UserID).Str("email", email).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	if err := a.userRepository.TouchLastLogin(ctx, foundUser.UserID); err != nil {
		log.Err(err).Str("id", foundUser.UserID).Msg("error refreshing last login")
		return models.User{}, fmt.Errorf("error refreshing last login: %w", err)
	}
	foundUser.LastLogin = time.Now().UTC()

	return foundUser, nil
}

// GetUser returns the account with the given id.
func (a *authService) GetUser(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}

// UpdateInactivityThreshold sets how many days of silence trigger delivery.
// Returns ErrInvalidThreshold when days falls outside 1..365.
func (a *authService) UpdateInactivityThreshold(ctx context.Context, userID string, days int) (models.User, error) {
	log := logger.FromContext(ctx)

	if days < models.MinInactivityThresholdDays || days > models.MaxInactivityThresholdDays {
		return models.User{}, ErrInvalidThreshold
	}

	updated, err := a.userRepository.UpdateInactivityThreshold(ctx, userID, days)
	if err != nil {
		log.Err(err).Str("id", userID).Int("days", days).Msg("error updating inactivity threshold")
		return models.User{}, fmt.Errorf("error updating inactivity threshold: %w", err)
	}

	return updated, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
