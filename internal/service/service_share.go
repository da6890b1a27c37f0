package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/config"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/crypto"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/logger"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/store"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/models"
)

// shareService is the concrete implementation of ShareService. Tokens are
// self-describing: the vault id rides in cleartext, so resolving a presented
// token needs no owner hint from the caller. The encrypted second segment
// proves the token was minted under the owner's share key.
type shareService struct {
	vaultRepository store.VaultRepository
	entryRepository store.EntryRepository
	userRepository  store.UserRepository

	codec   crypto.ShareTokenCodec
	cipher  crypto.ContentCipher
	baseURL string
	logger  *logger.Logger
}

// NewShareService constructs a ShareService over the given stores and codec.
func NewShareService(
	repos *store.Repositories,
	codec crypto.ShareTokenCodec,
	cipher crypto.ContentCipher,
	cfg config.App,
	logger *logger.Logger,
) ShareService {
	return &shareService{
		vaultRepository: repos.VaultRepository,
		entryRepository: repos.EntryRepository,
		userRepository:  repos.UserRepository,
		codec:           codec,
		cipher:          cipher,
		baseURL:         strings.TrimRight(cfg.BaseURL, "/"),
		logger:          logger,
	}
}

// GenerateLink mints a share link for an owned vault. The link never expires
// and carries no state: it can be re-minted at any time and every mint for
// the same vault verifies under the same derived key.
func (s *shareService) GenerateLink(ctx context.Context, userID, vaultID string) (string, error) {
	log := logger.FromContext(ctx)

	if userID == "" || vaultID == "" {
		return "", ErrInvalidDataProvided
	}

	vault, err := s.vaultRepository.GetVaultByID(ctx, vaultID)
	if err != nil {
		return "", fmt.Errorf("vault lookup ended with error: %w", err)
	}
	if vault.UserID != userID {
		return "", ErrNotVaultOwner
	}

	token, err := s.codec.Generate(userID, vaultID)
	if err != nil {
		log.Err(err).Str("vault_id", vaultID).Msg("share token generation ended with error")
		return "", fmt.Errorf("share token generation ended with error: %w", err)
	}

	return fmt.Sprintf("%s/vault/share/%s", s.baseURL, token), nil
}

// ResolveShare turns a presented token into a readable vault view. The vault
// id is read from the cleartext segment, the vault resolves to its owner, and
// the token is verified under the owner's share key. Every failure collapses
// into ErrShareLinkInvalid so the public endpoint leaks nothing.
func (s *shareService) ResolveShare(ctx context.Context, token string) (models.ShareView, error) {
	log := logger.FromContext(ctx)

	vaultID, err := s.codec.DecodeVaultID(token)
	if err != nil {
		log.Warn().Err(err).Msg("malformed share token presented")
		return models.ShareView{}, ErrShareLinkInvalid
	}

	vault, err := s.vaultRepository.GetVaultByID(ctx, vaultID)
	if err != nil {
		log.Warn().Err(err).Str("vault_id", vaultID).Msg("share token for unknown vault")
		return models.ShareView{}, ErrShareLinkInvalid
	}

	if _, err := s.codec.Verify(token, vault.UserID, vault.VaultID); err != nil {
		log.Warn().Err(err).Str("vault_id", vaultID).Msg("share token failed verification")
		return models.ShareView{}, ErrShareLinkInvalid
	}

	owner, err := s.userRepository.FindUserByID(ctx, vault.UserID)
	if err != nil {
		log.Err(err).Str("user_id", vault.UserID).Msg("share owner lookup ended with error")
		return models.ShareView{}, ErrShareLinkInvalid
	}

	entries, err := s.entryRepository.GetVaultEntries(ctx, vault.VaultID)
	if err != nil {
		log.Err(err).Str("vault_id", vaultID).Msg("error listing shared entries")
		return models.ShareView{}, fmt.Errorf("error listing shared entries: %w", err)
	}

	s.decryptForShare(&vault, entries)

	return models.ShareView{
		OwnerName: owner.Name,
		Vault:     vault,
		Entries:   entries,
	}, nil
}

func (s *shareService) decryptForShare(vault *models.Vault, entries []models.VaultEntry) {
	name := s.cipher.SafeDecrypt(vault.Name, vault.UserID, vault.VaultID)
	if name.Outcome == crypto.OutcomeFailed {
		vault.Name = "[unreadable content]"
	} else {
		vault.Name = name.Text
	}

	if vault.Description != "" {
		description := s.cipher.SafeDecrypt(vault.Description, vault.UserID, vault.VaultID)
		if description.Outcome == crypto.OutcomeFailed {
			vault.Description = "[unreadable content]"
		} else {
			vault.Description = description.Text
		}
	}

	for i := range entries {
		result := s.cipher.SafeDecrypt(entries[i].Content, vault.UserID, vault.VaultID)
		if result.Outcome == crypto.OutcomeFailed {
			entries[i].Content = "[unreadable content]"
			continue
		}
		entries[i].Content = result.Text
	}
}
