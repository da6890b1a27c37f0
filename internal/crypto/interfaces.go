// SPDX-License-Identifier: Apache-2.0

// Package crypto implements the deterministic encryption layer: per-vault key
// derivation without key storage, the content cipher with its shape
// classifier, and the share-token codec used for recipient access links.
package crypto

import "github.com/Okafor-Chiagozie/EverKeep-sub000/models"

// KeyDeriver deterministically derives a per-(user, vault, purpose) symmetric
// key from stable identifiers. No key material is ever persisted: the same
// inputs always reproduce the same key, and changing any input makes
// previously encrypted data unrecoverable. There is no re-keying path.
type KeyDeriver interface {
	// DeriveKey returns the hex-encoded 256-bit key for the given subject
	// (user id), vault id and purpose ([PurposeContent] or [PurposeShare]).
	DeriveKey(subjectID, vaultID, purpose string) string
}

// ContentCipher encrypts and decrypts vault content and classifies opaque
// strings as encrypted, structured media JSON, or plain text. The classifier
// exists because one text column historically stored all three shapes with no
// persisted discriminant; rows written by this application carry a
// [models.ContentKind] tag and only fall back to the heuristic for legacy data.
type ContentCipher interface {
	// EncryptText encrypts plain under the content key of (subjectID, vaultID).
	// The output is the salted-ciphertext text encoding whose base64 form
	// always starts with the "U2FsdGVkX1" marker.
	EncryptText(plain, subjectID, vaultID string) (string, error)

	// DecryptText reverses EncryptText. It returns [ErrDecryptionFailed]
	// (wrapped) on key mismatch, corrupted input, or an empty result.
	DecryptText(cipherText, subjectID, vaultID string) (string, error)

	// IsEncrypted reports whether content looks like ciphertext produced by
	// EncryptText. Structured media JSON and short plain text classify as
	// not encrypted; long base64-only strings classify as encrypted.
	IsEncrypted(content string) bool

	// SafeDecrypt never fails: media JSON and plain text pass through
	// unchanged, ciphertext is decrypted, and a failed decryption returns
	// the original content tagged [OutcomeFailed] so callers can choose how
	// to surface it instead of silently rendering raw ciphertext.
	SafeDecrypt(content, subjectID, vaultID string) DecryptResult

	// EncryptMediaData JSON-encodes meta and encrypts the envelope.
	EncryptMediaData(meta models.MediaMetadata, subjectID, vaultID string) (string, error)

	// DecryptMediaData decodes a media envelope: already-plaintext JSON is
	// parsed directly, otherwise the content is decrypted first.
	DecryptMediaData(content, subjectID, vaultID string) (models.MediaMetadata, error)
}

// ShareTokenCodec mints and verifies the bearer tokens embedded in
// recipient-facing share links.
//
// Tokens are self-describing: the vault id rides in cleartext as the first
// token segment, and the second segment is the encrypted payload that proves
// authorization (it decrypts only under the owner's share key, which the
// server re-derives after resolving the vault to its owner).
type ShareTokenCodec interface {
	// Generate mints a token for (subjectID, vaultID) embedding a
	// [models.SharePayload] with the issuance time.
	Generate(subjectID, vaultID string) (string, error)

	// DecodeVaultID extracts the cleartext vault id segment without
	// verifying the token.
	DecodeVaultID(token string) (string, error)

	// Verify decrypts the token payload under the share key of
	// (subjectID, vaultID) and checks that the embedded ids match.
	// Returns [ErrInvalidShareToken] (wrapped) on any failure.
	Verify(token, subjectID, vaultID string) (models.SharePayload, error)
}
