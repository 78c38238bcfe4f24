package credentials

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestStore() *Store { return NewStore(bcrypt.MinCost) }

func TestHashVerify_RoundTrip(t *testing.T) {
	s := newTestStore()

	for _, pw := range []string{"a", "correct horse battery staple", "пароль-123", strings.Repeat("x", 72), strings.Repeat("p", 80), strings.Repeat("long passphrase ", 64)} {
		h, err := s.Hash(pw)
		require.NoError(t, err)
		if len(pw) > 8 {
			assert.NotContains(t, h, pw)
		}
		assert.True(t, s.Verify(pw, h), "password %q must verify", pw)
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	s := newTestStore()
	h, err := s.Hash("hunter22")
	require.NoError(t, err)

	for _, other := range []string{"", "hunter2", "hunter222", "Hunter22", "hunter22 "} {
		assert.False(t, s.Verify(other, h), "%q must not verify", other)
	}
}

func TestHash_IsSalted(t *testing.T) {
	s := newTestStore()
	a, err := s.Hash("same-password")
	require.NoError(t, err)
	b, err := s.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.True(t, s.Verify("same-password", a))
	assert.True(t, s.Verify("same-password", b))
}

func TestVerify_MalformedHashFailsClosed(t *testing.T) {
	s := newTestStore()
	for _, h := range []string{"", "plain", "$2a$04$short", "$9z$04$abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ01"} {
		assert.False(t, s.Verify("anything", h))
	}
}

func TestHash_RejectsEmpty(t *testing.T) {
	_, err := newTestStore().Hash("")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestVerify_LongPasswordsAreNotTruncated(t *testing.T) {
	s := newTestStore()
	base := strings.Repeat("p", 80)

	h, err := s.Hash(base)
	require.NoError(t, err)

	assert.True(t, s.Verify(base, h))
	assert.False(t, s.Verify(base[:72], h))
	assert.False(t, s.Verify(base+"q", h))
	assert.False(t, s.Verify(base[:79]+"q", h))
}

func TestNewStore_CostBounds(t *testing.T) {
	assert.Equal(t, DefaultCost, NewStore(0).cost)
	assert.Equal(t, bcrypt.MaxCost, NewStore(100).cost)

	h, err := newTestStore().Hash("pw")
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(h))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}
