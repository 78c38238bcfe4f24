// Package credentials hashes and verifies account passwords with bcrypt.
// The hash string embeds version, cost and salt, so nothing else needs to be
// stored alongside it.
package credentials

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the production bcrypt work factor.
const DefaultCost = 12

var ErrEmptyPassword = errors.New("password is empty")

// Store hashes and verifies passwords at a fixed cost.
type Store struct {
	cost int
}

// NewStore returns a Store using cost, clamped to bcrypt's allowed range.
// Tests use bcrypt.MinCost to stay fast.
func NewStore(cost int) *Store {
	if cost < bcrypt.MinCost {
		cost = DefaultCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	return &Store{cost: cost}
}

// prehash maps a password of any length to 44 printable bytes, below
// bcrypt's 72-byte input limit and free of NUL bytes.
func prehash(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}

func (s *Store) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	hashed, err := bcrypt.GenerateFromPassword(prehash(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether password matches hash. Malformed hashes verify as
// false. bcrypt compares in constant time.
func (s *Store) Verify(password, hash string) bool {
	if password == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), prehash(password)) == nil
}
