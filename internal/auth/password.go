package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/scrypt"
)

// scrypt parameters. N=32768 keeps derivation in the tens of milliseconds
// on current hardware. The 32-byte salt and 64-byte key are fixed: changing
// them invalidates every stored credential.
const (
	scryptN      = 1 << 15
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 64
	saltLen      = 32
)

// hashPassword derives a key from the password with a fresh random salt.
// Both values are returned base64-encoded for storage.
func hashPassword(password string) (salt string, hash string, err error) {
	rawSalt := make([]byte, saltLen)
	if _, err := rand.Read(rawSalt); err != nil {
		return "", "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key, err := scrypt.Key([]byte(password), rawSalt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", "", fmt.Errorf("failed to derive key: %w", err)
	}

	return base64.RawStdEncoding.EncodeToString(rawSalt),
		base64.RawStdEncoding.EncodeToString(key),
		nil
}

// verifyPassword re-derives the key with the stored salt and compares it
// to the stored hash. The length check may short-circuit; the byte
// comparison is constant-time to avoid a timing side-channel.
func verifyPassword(password, salt, expectedHash string) bool {
	rawSalt, err := base64.RawStdEncoding.DecodeString(salt)
	if err != nil {
		return false
	}

	expected, err := base64.RawStdEncoding.DecodeString(expectedHash)
	if err != nil {
		return false
	}

	derived, err := scrypt.Key([]byte(password), rawSalt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return false
	}

	if len(derived) != len(expected) {
		return false
	}

	return subtle.ConstantTimeCompare(derived, expected) == 1
}
