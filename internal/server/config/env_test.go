package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withEnv(t *testing.T, env map[string]string) {
	t.Helper()
	orig := lookupEnv
	t.Cleanup(func() { lookupEnv = orig })
	lookupEnv = func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
}

func TestParseEnv(t *testing.T) {
	withEnv(t, map[string]string{
		EnvDatabaseDSN:          "postgres://env/db",
		EnvSecretKey:            "env-secret",
		EnvRefreshTokenPepper:   "env-pepper",
		EnvAccessTokenValidity:  "5m",
		EnvRefreshTokenValidity: "",
		EnvStorageTimeout:       "750ms",
		EnvBcryptCost:           "11",
		EnvRedisAddr:            "cache:6379",
		EnvRedisDB:              "3",
	})

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "postgres://env/db", cfg.DatabaseDSN)
	assert.Equal(t, "env-secret", cfg.SecretKey)
	assert.Equal(t, "env-pepper", cfg.RefreshTokenPepper)
	assert.Equal(t, 5*time.Minute, cfg.AccessTokenValidityDuration)
	assert.Equal(t, 30*24*time.Hour, cfg.RefreshTokenValidityDuration, "empty value is ignored")
	assert.Equal(t, 750*time.Millisecond, cfg.StorageTimeout)
	assert.Equal(t, 11, cfg.BcryptCost)
	assert.Equal(t, "cache:6379", cfg.RedisAddr)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, ":50051", cfg.EndpointAddrGRPC)
}

func TestParseEnv_Malformed(t *testing.T) {
	withEnv(t, map[string]string{EnvStorageTimeout: "soon"})
	require.Panics(t, func() { parseEnv(&Config{}) })

	withEnv(t, map[string]string{EnvBcryptCost: "high"})
	require.Panics(t, func() { parseEnv(&Config{}) })
}
