package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"

	"github.com/dmitrijs2005/gophmatch/internal/common"
)

// refreshTokenBytes is the entropy of an opaque refresh token.
const refreshTokenBytes = 32

// NewRefreshToken returns a fresh opaque refresh token (URL-safe base64).
func NewRefreshToken() string {
	b := common.GenerateRandByteArray(refreshTokenBytes)
	defer common.WipeByteArray(b)
	return base64.RawURLEncoding.EncodeToString(b)
}

// Fingerprint is HMAC-SHA256(pepper, raw) in hex. Only fingerprints are
// stored, so a copy of the sessions table cannot be replayed without the
// server-side pepper.
func Fingerprint(raw string, pepper []byte) string {
	mac := hmac.New(sha256.New, pepper)
	mac.Write([]byte(raw))
	return hex.EncodeToString(mac.Sum(nil))
}
