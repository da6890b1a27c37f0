// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/md5"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/Okafor-Chiagozie/EverKeep-sub000/models"
)

// Errors returned by the content cipher. Callers should match with
// [errors.Is].
var (
	// ErrDecryptionFailed signals a key mismatch or corrupted input.
	ErrDecryptionFailed = errors.New("failed to decrypt content")

	// ErrMalformedCiphertext signals input that is not a valid salted
	// ciphertext blob (bad base64, missing header, truncated salt).
	ErrMalformedCiphertext = errors.New("malformed ciphertext")
)

// DecryptOutcome tags a [DecryptResult].
type DecryptOutcome int

const (
	// OutcomeDecrypted: the content was ciphertext and decrypted cleanly.
	OutcomeDecrypted DecryptOutcome = iota

	// OutcomePassthrough: the content was plain text or a media envelope
	// and was returned unchanged.
	OutcomePassthrough

	// OutcomeFailed: the content looked encrypted but could not be
	// decrypted; the original content was returned unchanged.
	OutcomeFailed
)

// DecryptResult is the tagged result of [ContentCipher.SafeDecrypt]. The tag
// lets callers show a "content unavailable" state instead of raw ciphertext
// without SafeDecrypt ever raising.
type DecryptResult struct {
	Text    string
	Outcome DecryptOutcome
}

const (
	// opensslHeader prefixes every salted ciphertext blob before base64
	// encoding: blob = "Salted__" ‖ salt(8) ‖ ciphertext.
	opensslHeader = "Salted__"

	// saltedMarker is the first 10 characters of the base64 encoding of any
	// blob starting with "Salted__" — the reliable ciphertext fingerprint
	// the classifier keys on.
	saltedMarker = "U2FsdGVkX1"

	// minBase64Heuristic is the length above which a base64-alphabet-only
	// string is classified as encrypted. Short plain strings (names, single
	// words) stay below it.
	minBase64Heuristic = 50
)

type contentCipher struct {
	deriver KeyDeriver
}

// NewContentCipher constructs a [ContentCipher] deriving its keys from
// deriver. The cipher is stateless and safe for concurrent use.
func NewContentCipher(deriver KeyDeriver) ContentCipher {
	return &contentCipher{deriver: deriver}
}

// EncryptText implements [ContentCipher]. A fresh 8-byte salt is drawn per
// call, the AES-256 key and IV are stretched from the derived passphrase via
// the OpenSSL EVP_BytesToKey construction, and the plaintext is sealed with
// AES-CBC/PKCS#7. Output is base64(header ‖ salt ‖ ciphertext), which always
// begins with the "U2FsdGVkX1" marker.
func (c *contentCipher) EncryptText(plain, subjectID, vaultID string) (string, error) {
	pass := c.deriver.DeriveKey(subjectID, vaultID, PurposeContent)
	return encryptWithPassphrase(plain, pass)
}

// DecryptText implements [ContentCipher]. It fails with a classified error if
// the blob is malformed, the key does not match, or the result is empty after
// decoding — an empty plaintext almost always means a key mismatch that
// happened to unpad cleanly.
func (c *contentCipher) DecryptText(cipherText, subjectID, vaultID string) (string, error) {
	pass := c.deriver.DeriveKey(subjectID, vaultID, PurposeContent)

	plain, err := decryptWithPassphrase(cipherText, pass)
	if err != nil {
		return "", err
	}
	if plain == "" {
		return "", fmt.Errorf("%w: empty result after decoding", ErrDecryptionFailed)
	}

	return plain, nil
}

// IsEncrypted implements [ContentCipher]. Classification order matters:
// the salted marker wins outright, a recognizable media envelope is never
// encrypted, and only then does the long-base64 fallback apply.
func (c *contentCipher) IsEncrypted(content string) bool {
	if strings.Contains(content, saltedMarker) {
		return true
	}
	if looksLikeMediaMetadata(content) {
		return false
	}
	if len(content) > minBase64Heuristic && isBase64Alphabet(content) {
		return true
	}
	return false
}

// SafeDecrypt implements [ContentCipher].
func (c *contentCipher) SafeDecrypt(content, subjectID, vaultID string) DecryptResult {
	if looksLikeMediaMetadata(content) {
		return DecryptResult{Text: content, Outcome: OutcomePassthrough}
	}
	if !c.IsEncrypted(content) {
		return DecryptResult{Text: content, Outcome: OutcomePassthrough}
	}

	plain, err := c.DecryptText(content, subjectID, vaultID)
	if err != nil {
		return DecryptResult{Text: content, Outcome: OutcomeFailed}
	}

	return DecryptResult{Text: plain, Outcome: OutcomeDecrypted}
}

// EncryptMediaData implements [ContentCipher]. The whole JSON envelope is
// encrypted; only the remote storage object itself stays outside the cipher
// boundary.
func (c *contentCipher) EncryptMediaData(meta models.MediaMetadata, subjectID, vaultID string) (string, error) {
	payload, err := json.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("marshal media metadata: %w", err)
	}

	return c.EncryptText(string(payload), subjectID, vaultID)
}

// DecryptMediaData implements [ContentCipher]. Already-plaintext envelopes
// (legacy rows) short-circuit; everything else is decrypted first.
func (c *contentCipher) DecryptMediaData(content, subjectID, vaultID string) (models.MediaMetadata, error) {
	var meta models.MediaMetadata

	if looksLikeMediaMetadata(content) {
		if err := json.Unmarshal([]byte(content), &meta); err != nil {
			return models.MediaMetadata{}, fmt.Errorf("parse media metadata: %w", err)
		}
		return meta, nil
	}

	plain, err := c.DecryptText(content, subjectID, vaultID)
	if err != nil {
		return models.MediaMetadata{}, err
	}
	if err := json.Unmarshal([]byte(plain), &meta); err != nil {
		return models.MediaMetadata{}, fmt.Errorf("parse decrypted media metadata: %w", err)
	}

	return meta, nil
}

// encryptWithPassphrase seals plain under pass using the OpenSSL salted
// format shared by EncryptText and the share-token codec.
func encryptWithPassphrase(plain, pass string) (string, error) {
	salt := make([]byte, 8)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key, iv := evpBytesToKey([]byte(pass), salt)

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}

	padded := pkcs7Pad([]byte(plain), block.BlockSize())
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	blob := make([]byte, 0, len(opensslHeader)+len(salt)+len(ciphertext))
	blob = append(blob, opensslHeader...)
	blob = append(blob, salt...)
	blob = append(blob, ciphertext...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// decryptWithPassphrase reverses encryptWithPassphrase.
func decryptWithPassphrase(cipherText, pass string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(strings.TrimSpace(cipherText))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedCiphertext, err)
	}
	if len(blob) < len(opensslHeader)+8 || string(blob[:len(opensslHeader)]) != opensslHeader {
		return "", fmt.Errorf("%w: missing salt header", ErrMalformedCiphertext)
	}

	salt := blob[len(opensslHeader) : len(opensslHeader)+8]
	ciphertext := blob[len(opensslHeader)+8:]

	key, iv := evpBytesToKey([]byte(pass), salt)

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}
	if len(ciphertext) == 0 || len(ciphertext)%block.BlockSize() != 0 {
		return "", fmt.Errorf("%w: ciphertext not block-aligned", ErrMalformedCiphertext)
	}

	plain := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, ciphertext)

	unpadded, err := pkcs7Unpad(plain, block.BlockSize())
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}
	if !utf8.Valid(unpadded) {
		// A wrong key that happens to unpad cleanly still yields byte
		// garbage; rejecting non-UTF-8 output catches it.
		return "", fmt.Errorf("%w: malformed UTF-8 data", ErrDecryptionFailed)
	}

	return string(unpadded), nil
}

// evpBytesToKey stretches a passphrase and salt into an AES-256 key and IV
// using the OpenSSL EVP_BytesToKey MD5 chain: D_i = MD5(D_{i-1} ‖ pass ‖ salt).
func evpBytesToKey(pass, salt []byte) (key, iv []byte) {
	const need = 32 + aes.BlockSize

	var derived []byte
	var prev []byte
	for len(derived) < need {
		h := md5.New()
		h.Write(prev)
		h.Write(pass)
		h.Write(salt)
		prev = h.Sum(nil)
		derived = append(derived, prev...)
	}

	return derived[:32], derived[32:need]
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padding := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(padding)}, padding)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, errors.New("invalid padded length")
	}

	padding := int(data[len(data)-1])
	if padding == 0 || padding > blockSize {
		return nil, errors.New("invalid padding byte")
	}
	for _, b := range data[len(data)-padding:] {
		if int(b) != padding {
			return nil, errors.New("inconsistent padding")
		}
	}

	return data[:len(data)-padding], nil
}

// looksLikeMediaMetadata reports whether content parses as a JSON object with
// a recognizable media shape: a remote-URL-like field or a filename field.
func looksLikeMediaMetadata(content string) bool {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "{") {
		return false
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(trimmed), &doc); err != nil {
		return false
	}

	for k, v := range doc {
		lk := strings.ToLower(k)
		if strings.Contains(lk, "url") {
			if s, ok := v.(string); ok && strings.HasPrefix(s, "http") {
				return true
			}
		}
		if lk == "filename" || lk == "file_name" {
			if _, ok := v.(string); ok {
				return true
			}
		}
	}

	return false
}

// isBase64Alphabet reports whether s consists solely of standard base64
// characters, allowing trailing padding.
func isBase64Alphabet(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '+' || r == '/' || r == '=':
		default:
			return false
		}
	}
	return len(s) > 0
}
