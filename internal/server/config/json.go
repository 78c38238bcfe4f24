package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/gophmatch/internal/flagx"
	"github.com/dmitrijs2005/gophmatch/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON unmarshalling.
// Duration fields use timex.Duration, which accepts both strings such as
// "1s" and integer nanoseconds. Absent fields leave the current value alone.
type JsonConfig struct {
	EndpointAddrGRPC             string         `json:"endpoint_addr_grpc"`
	DatabaseDSN                  string         `json:"database_dsn"`
	LogLevel                     string         `json:"log_level"`
	SecretKey                    string         `json:"secret_key"`
	RefreshTokenPepper           string         `json:"refresh_token_pepper"`
	AccessTokenValidityDuration  timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration timex.Duration `json:"refresh_token_validity_duration"`
	StorageTimeout               timex.Duration `json:"storage_timeout"`
	SessionCleanupInterval       timex.Duration `json:"session_cleanup_interval"`
	BcryptCost                   int            `json:"bcrypt_cost"`
	RedisAddr                    string         `json:"redis_addr"`
	RedisPassword                string         `json:"redis_password"`
	RedisDB                      *int           `json:"redis_db"`
	MatchEventsChannel           string         `json:"match_events_channel"`
	S3RootUser                   string         `json:"s3_root_user"`
	S3RootPassword               string         `json:"s3_root_password"`
	S3Bucket                     string         `json:"s3_bucket"`
	S3Region                     string         `json:"s3_region"`
	S3BaseEndpoint               string         `json:"s3_base_endpoint"`
	AvatarURLValidityDuration    timex.Duration `json:"avatar_url_validity_duration"`
}

// parseJson loads configuration values from the JSON file named by -c or
// -config. Without either flag nothing is loaded. An unreadable file or
// invalid JSON panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	c.apply(config)
}

func (c *JsonConfig) apply(config *Config) {
	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.RefreshTokenPepper, c.RefreshTokenPepper)
	setDuration(&config.AccessTokenValidityDuration, c.AccessTokenValidityDuration)
	setDuration(&config.RefreshTokenValidityDuration, c.RefreshTokenValidityDuration)
	setDuration(&config.StorageTimeout, c.StorageTimeout)
	setDuration(&config.SessionCleanupInterval, c.SessionCleanupInterval)
	if c.BcryptCost != 0 {
		config.BcryptCost = c.BcryptCost
	}
	setString(&config.RedisAddr, c.RedisAddr)
	setString(&config.RedisPassword, c.RedisPassword)
	if c.RedisDB != nil {
		config.RedisDB = *c.RedisDB
	}
	setString(&config.MatchEventsChannel, c.MatchEventsChannel)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setDuration(&config.AvatarURLValidityDuration, c.AvatarURLValidityDuration)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v timex.Duration) {
	if v.Duration != 0 {
		*dst = v.Duration
	}
}
