package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/transferbench/internal/flagx"
	"github.com/dmitrijs2005/transferbench/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration. Durations accept
// both strings such as "30s" and integer nanoseconds.
type JsonConfig struct {
	EndpointAddrGRPC      string         `json:"endpoint_addr_grpc"`
	EndpointAddrHTTP      string         `json:"endpoint_addr_http"`
	DatabaseDSN           string         `json:"database_dsn"`
	SyntheticRows         int            `json:"synthetic_rows"`
	UploadsDir            string         `json:"uploads_dir"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	S3AccessKey           string         `json:"s3_access_key"`
	S3SecretKey           string         `json:"s3_secret_key"`
	S3Bucket              string         `json:"s3_bucket"`
	S3Region              string         `json:"s3_region"`
	S3BaseEndpoint        string         `json:"s3_base_endpoint"`
	PresignTTL            timex.Duration `json:"presign_ttl"`
	RedisAddr             string         `json:"redis_addr"`
	RedisPassword         string         `json:"redis_password"`
	RedisDB               int            `json:"redis_db"`
	PageCacheTTL          timex.Duration `json:"page_cache_ttl"`
	ChatQueueSize         int            `json:"chat_queue_size"`
	LogLevel              string         `json:"log_level"`
}

// parseJson overlays values from the file named by -c/-config. Fields absent
// from the file keep their current value. Unreadable files and invalid JSON
// panic.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}
	loadJsonFile(config, jsonConfigFile)
}

func loadJsonFile(config *Config, path string) {
	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setInt(&config.SyntheticRows, c.SyntheticRows)
	setString(&config.UploadsDir, c.UploadsDir)
	setString(&config.SecretKey, c.SecretKey)
	setDuration(&config.TokenValidityDuration, c.TokenValidityDuration)
	setString(&config.S3AccessKey, c.S3AccessKey)
	setString(&config.S3SecretKey, c.S3SecretKey)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setDuration(&config.PresignTTL, c.PresignTTL)
	setString(&config.RedisAddr, c.RedisAddr)
	setString(&config.RedisPassword, c.RedisPassword)
	setInt(&config.RedisDB, c.RedisDB)
	setDuration(&config.PageCacheTTL, c.PageCacheTTL)
	setInt(&config.ChatQueueSize, c.ChatQueueSize)
	setString(&config.LogLevel, c.LogLevel)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v timex.Duration) {
	if v.Duration != 0 {
		*dst = v.Duration
	}
}
