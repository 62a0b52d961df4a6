package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// ErrMalformedCredential is returned when a stored credential is not "<hash>.<salt>".
var ErrMalformedCredential = errors.New("malformed credential")

// Hasher derives credentials with scrypt. A credential is the hex key, a dot, and
// the hex salt the key was derived with.
type Hasher struct {
	N       int
	R       int
	P       int
	KeyLen  int
	SaltLen int
}

// DefaultHasher is the production cost.
var DefaultHasher = Hasher{N: 1 << 15, R: 8, P: 1, KeyLen: 64, SaltLen: 16}

func (h Hasher) Hash(plain string) (string, error) {
	salt := make([]byte, h.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("utils.Hash: salt: %w", err)
	}
	key, err := scrypt.Key([]byte(plain), salt, h.N, h.R, h.P, h.KeyLen)
	if err != nil {
		return "", fmt.Errorf("utils.Hash: %w", err)
	}
	return hex.EncodeToString(key) + "." + hex.EncodeToString(salt), nil
}

// Verify reports whether plain matches credential. The final comparison is
// constant time.
func (h Hasher) Verify(plain, credential string) bool {
	ok, err := h.verify(plain, credential)
	return err == nil && ok
}

func (h Hasher) verify(plain, credential string) (bool, error) {
	hashHex, saltHex, found := strings.Cut(credential, ".")
	if !found || hashHex == "" || saltHex == "" {
		return false, ErrMalformedCredential
	}
	want, err := hex.DecodeString(hashHex)
	if err != nil {
		return false, ErrMalformedCredential
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false, ErrMalformedCredential
	}
	got, err := scrypt.Key([]byte(plain), salt, h.N, h.R, h.P, len(want))
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(want, got) == 1, nil
}

func HashPassword(pw string) (string, error) { return DefaultHasher.Hash(pw) }

const passwordAlphabet = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// RandomPassword returns n characters drawn uniformly from an alphabet without
// look-alike glyphs.
func RandomPassword(n int) (string, error) {
	if n <= 0 {
		n = 10
	}
	limit := big.NewInt(int64(len(passwordAlphabet)))
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("utils.RandomPassword: %w", err)
		}
		b[i] = passwordAlphabet[idx.Int64()]
	}
	return string(b), nil
}
