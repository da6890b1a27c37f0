// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Okafor-Chiagozie/EverKeep-sub000/models"
)

// ErrInvalidShareToken is returned for any token that cannot be decoded or
// verified. Deliberately coarse: a share link either works or it does not,
// and the failure detail stays in logs, not in the recipient-facing error.
var ErrInvalidShareToken = errors.New("invalid share token")

// tokenSeparator splits the cleartext vault id segment from the encrypted
// payload segment.
const tokenSeparator = "."

type shareTokenCodec struct {
	deriver KeyDeriver
}

// NewShareTokenCodec constructs a [ShareTokenCodec] deriving share keys from
// deriver.
func NewShareTokenCodec(deriver KeyDeriver) ShareTokenCodec {
	return &shareTokenCodec{deriver: deriver}
}

// Generate implements [ShareTokenCodec]. The payload is sealed under the
// share-purpose key and the ciphertext is re-encoded URL-safe (+→-, /→_,
// padding stripped) so the token can ride in a path segment.
func (s *shareTokenCodec) Generate(subjectID, vaultID string) (string, error) {
	payload := models.SharePayload{
		VaultID:  vaultID,
		UserID:   subjectID,
		IssuedAt: time.Now().UTC(),
	}

	doc, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal share payload: %w", err)
	}

	pass := s.deriver.DeriveKey(subjectID, vaultID, PurposeShare)
	sealed, err := encryptWithPassphrase(string(doc), pass)
	if err != nil {
		return "", fmt.Errorf("seal share payload: %w", err)
	}

	return vaultID + tokenSeparator + toURLSafe(sealed), nil
}

// DecodeVaultID implements [ShareTokenCodec].
func (s *shareTokenCodec) DecodeVaultID(token string) (string, error) {
	vaultID, _, err := splitToken(token)
	return vaultID, err
}

// Verify implements [ShareTokenCodec]. The caller supplies the expected
// identity (owner looked up from the vault row); the token proves
// authorization by decrypting cleanly under that identity's share key and
// echoing both ids back.
func (s *shareTokenCodec) Verify(token, subjectID, vaultID string) (models.SharePayload, error) {
	tokenVaultID, sealed, err := splitToken(token)
	if err != nil {
		return models.SharePayload{}, err
	}
	if tokenVaultID != vaultID {
		return models.SharePayload{}, fmt.Errorf("%w: vault id mismatch", ErrInvalidShareToken)
	}

	pass := s.deriver.DeriveKey(subjectID, vaultID, PurposeShare)
	doc, err := decryptWithPassphrase(fromURLSafe(sealed), pass)
	if err != nil {
		return models.SharePayload{}, fmt.Errorf("%w: %w", ErrInvalidShareToken, err)
	}

	var payload models.SharePayload
	if err := json.Unmarshal([]byte(doc), &payload); err != nil {
		return models.SharePayload{}, fmt.Errorf("%w: %w", ErrInvalidShareToken, err)
	}
	if payload.VaultID != vaultID || payload.UserID != subjectID {
		return models.SharePayload{}, fmt.Errorf("%w: payload identity mismatch", ErrInvalidShareToken)
	}

	return payload, nil
}

func splitToken(token string) (vaultID, sealed string, err error) {
	parts := strings.SplitN(token, tokenSeparator, 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%w: bad segment structure", ErrInvalidShareToken)
	}
	return parts[0], parts[1], nil
}

func toURLSafe(b64 string) string {
	replaced := strings.NewReplacer("+", "-", "/", "_").Replace(b64)
	return strings.TrimRight(replaced, "=")
}

func fromURLSafe(token string) string {
	b64 := strings.NewReplacer("-", "+", "_", "/").Replace(token)
	if rem := len(b64) % 4; rem != 0 {
		b64 += strings.Repeat("=", 4-rem)
	}
	return b64
}
