package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Environment variables read by parseEnv. Empty values are ignored.
const (
	EnvGRPCAddr             = "GOPHMATCH_GRPC_ADDR"
	EnvDatabaseDSN          = "GOPHMATCH_DATABASE_DSN"
	EnvLogLevel             = "GOPHMATCH_LOG_LEVEL"
	EnvSecretKey            = "GOPHMATCH_SECRET_KEY"
	EnvRefreshTokenPepper   = "GOPHMATCH_REFRESH_TOKEN_PEPPER"
	EnvAccessTokenValidity  = "GOPHMATCH_ACCESS_TOKEN_VALIDITY"
	EnvRefreshTokenValidity = "GOPHMATCH_REFRESH_TOKEN_VALIDITY"
	EnvStorageTimeout       = "GOPHMATCH_STORAGE_TIMEOUT"
	EnvBcryptCost           = "GOPHMATCH_BCRYPT_COST"
	EnvRedisAddr            = "GOPHMATCH_REDIS_ADDR"
	EnvRedisPassword        = "GOPHMATCH_REDIS_PASSWORD"
	EnvRedisDB              = "GOPHMATCH_REDIS_DB"
	EnvS3RootUser           = "GOPHMATCH_S3_ROOT_USER"
	EnvS3RootPassword       = "GOPHMATCH_S3_ROOT_PASSWORD"
	EnvS3Bucket             = "GOPHMATCH_S3_BUCKET"
	EnvS3BaseEndpoint       = "GOPHMATCH_S3_BASE_ENDPOINT"
)

// lookupEnv is a seam for tests.
var lookupEnv = os.LookupEnv

// parseEnv overlays values from the environment. Secrets usually arrive
// this way rather than through files or flags. A malformed number or
// duration panics, like a malformed JSON file does.
func parseEnv(config *Config) {
	envString(EnvGRPCAddr, &config.EndpointAddrGRPC)
	envString(EnvDatabaseDSN, &config.DatabaseDSN)
	envString(EnvLogLevel, &config.LogLevel)
	envString(EnvSecretKey, &config.SecretKey)
	envString(EnvRefreshTokenPepper, &config.RefreshTokenPepper)
	envDuration(EnvAccessTokenValidity, &config.AccessTokenValidityDuration)
	envDuration(EnvRefreshTokenValidity, &config.RefreshTokenValidityDuration)
	envDuration(EnvStorageTimeout, &config.StorageTimeout)
	envInt(EnvBcryptCost, &config.BcryptCost)
	envString(EnvRedisAddr, &config.RedisAddr)
	envString(EnvRedisPassword, &config.RedisPassword)
	envInt(EnvRedisDB, &config.RedisDB)
	envString(EnvS3RootUser, &config.S3RootUser)
	envString(EnvS3RootPassword, &config.S3RootPassword)
	envString(EnvS3Bucket, &config.S3Bucket)
	envString(EnvS3BaseEndpoint, &config.S3BaseEndpoint)
}

func envString(key string, dst *string) {
	if v, ok := lookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func envInt(key string, dst *int) {
	v, ok := lookupEnv(key)
	if !ok || v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		panic(fmt.Errorf("%s: %w", key, err))
	}
	*dst = n
}

func envDuration(key string, dst *time.Duration) {
	v, ok := lookupEnv(key)
	if !ok || v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(fmt.Errorf("%s: %w", key, err))
	}
	*dst = d
}
