package utils

import (
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/matthewhartstonge/argon2"
	"golang.org/x/crypto/scrypt"
)

// Parameters of the salt:hex scrypt hashes written by the previous backend.
const (
	legacyScryptN      = 16384
	legacyScryptR      = 8
	legacyScryptP      = 1
	legacyScryptKeyLen = 64
)

var ErrUnsupportedHash = errors.New("unsupported password hash format")

func HashPassword(password string) (string, error) {
	argon := argon2.DefaultConfig()
	encoded, err := argon.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// VerifyPassword checks password against an argon2 encoded hash or a legacy
// scrypt "salt:hex" hash.
func VerifyPassword(encodedHash, password string) (bool, error) {
	if strings.HasPrefix(encodedHash, "$argon2") {
		return argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
	}
	return verifyLegacyScrypt(encodedHash, password)
}

func verifyLegacyScrypt(stored, password string) (bool, error) {
	salt, keyHex, ok := strings.Cut(stored, ":")
	if !ok || salt == "" || keyHex == "" {
		return false, ErrUnsupportedHash
	}

	want, err := hex.DecodeString(keyHex)
	if err != nil || len(want) != legacyScryptKeyLen {
		return false, ErrUnsupportedHash
	}

	// The salt string itself is the salt, not its hex decoding.
	got, err := scrypt.Key([]byte(password), []byte(salt), legacyScryptN, legacyScryptR, legacyScryptP, legacyScryptKeyLen)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(want, got) == 1, nil
}
