package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/transferbench/internal/common"
	"github.com/dmitrijs2005/transferbench/internal/compressx"
	"github.com/spf13/viper"
)

const (
	KeyGRPCAddr     = "grpc-addr"
	KeyHTTPAddr     = "http-addr"
	KeyToken        = "token"
	KeyCompress     = "compress"
	KeyDownloadsDir = "downloads-dir"
	KeyReportsDB    = "reports-db"
	KeyTimeout      = "timeout"
	KeyProgress     = "progress"
	KeyRepeat       = "repeat"
)

// Config holds runtime settings for the transferbench client.
type Config struct {
	GRPCAddr     string
	HTTPAddr     string
	AccessToken  string
	Compress     string
	DownloadsDir string
	ReportsDB    string
	Timeout      time.Duration
	Progress     bool
	// Repeat is how many times a benchmarked call is run.
	Repeat int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.GRPCAddr = "127.0.0.1:50051"
	c.HTTPAddr = "127.0.0.1:8080"
	c.DownloadsDir = common.DownloadsDir
	c.ReportsDB = "transferbench.db"
	c.Progress = true
	c.Repeat = 1
}

// LoadConfig reads every key from v, reading the config file first when one
// was set with --config.
func LoadConfig(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	cfg := &Config{
		GRPCAddr:     v.GetString(KeyGRPCAddr),
		HTTPAddr:     v.GetString(KeyHTTPAddr),
		AccessToken:  v.GetString(KeyToken),
		Compress:     v.GetString(KeyCompress),
		DownloadsDir: v.GetString(KeyDownloadsDir),
		ReportsDB:    v.GetString(KeyReportsDB),
		Timeout:      v.GetDuration(KeyTimeout),
		Progress:     v.GetBool(KeyProgress),
		Repeat:       v.GetInt(KeyRepeat),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Compress != "" && !compressx.Supported(c.Compress) {
		return fmt.Errorf("unsupported compressor %q", c.Compress)
	}
	if c.Repeat < 1 {
		return fmt.Errorf("repeat must be at least 1")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	return nil
}
