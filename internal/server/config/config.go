// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the transferbench server.
//
// Fields:
//   - EndpointAddrGRPC / EndpointAddrHTTP: bind addresses of both transports.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty means the in-memory generator.
//   - SyntheticRows: size of the generated data set when no DSN is set.
//   - UploadsDir: directory of the disk store.
//   - SecretKey: HS256 key guarding payroll RPCs. Empty disables auth.
//   - TokenValidityDuration: lifetime of tokens minted for clients.
//   - S3*: object storage settings. A bucket switches uploads to S3.
//   - RedisAddr: page cache address. Empty disables the cache.
type Config struct {
	EndpointAddrGRPC      string
	EndpointAddrHTTP      string
	DatabaseDSN           string
	SyntheticRows         int
	UploadsDir            string
	SecretKey             string
	TokenValidityDuration time.Duration
	S3AccessKey           string
	S3SecretKey           string
	S3Bucket              string
	S3Region              string
	S3BaseEndpoint        string
	PresignTTL            time.Duration
	RedisAddr             string
	RedisPassword         string
	RedisDB               int
	PageCacheTTL          time.Duration
	ChatQueueSize         int
	LogLevel              string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.EndpointAddrHTTP = ":8080"
	c.SyntheticRows = 10000
	c.UploadsDir = "Uploads"
	c.TokenValidityDuration = 60 * time.Minute
	c.S3Region = "us-east-1"
	c.PresignTTL = 15 * time.Minute
	c.PageCacheTTL = 30 * time.Second
	c.ChatQueueSize = 64
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
