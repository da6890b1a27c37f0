// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

// Key derivation purposes. Content keys encrypt vault names, descriptions and
// entries; share keys seal share-token payloads. The purpose string is part
// of the PBKDF2 salt, so the two key families never collide.
const (
	PurposeContent = "content"
	PurposeShare   = "share"
)

const (
	// saltPrefix domain-separates EverKeep keys from any other PBKDF2 use
	// of the same identifiers.
	saltPrefix = "everkeep-"

	// kdfIterations is a fixed, moderate CPU cost paid on every operation
	// in exchange for zero key-management infrastructure.
	kdfIterations = 1000

	kdfKeyLen = 32 // 256 bits
)

type keyDeriver struct{}

// NewKeyDeriver constructs a [KeyDeriver]. The deriver is stateless and safe
// for concurrent use.
func NewKeyDeriver() KeyDeriver {
	return &keyDeriver{}
}

// DeriveKey implements [KeyDeriver]. The key is
// PBKDF2-SHA256(password = subjectID, salt = "everkeep-"+purpose+"-"+vaultID,
// 1000 iterations, 32 bytes), returned hex-encoded. The hex string is used
// as the cipher passphrase so derivation stays reproducible across
// components that only exchange strings.
func (k *keyDeriver) DeriveKey(subjectID, vaultID, purpose string) string {
	salt := saltPrefix + purpose + "-" + vaultID
	key := pbkdf2.Key([]byte(subjectID), []byte(salt), kdfIterations, kdfKeyLen, sha256.New)
	return hex.EncodeToString(key)
}
