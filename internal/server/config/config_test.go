package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, ":50051", c.EndpointAddrGRPC)
	assert.Equal(t, ":8080", c.EndpointAddrHTTP)
	assert.Empty(t, c.DatabaseDSN)
	assert.Equal(t, 10000, c.SyntheticRows)
	assert.Equal(t, "Uploads", c.UploadsDir)
	assert.Empty(t, c.SecretKey)
	assert.Equal(t, 60*time.Minute, c.TokenValidityDuration)
	assert.Empty(t, c.S3Bucket)
	assert.Equal(t, "us-east-1", c.S3Region)
	assert.Equal(t, 15*time.Minute, c.PresignTTL)
	assert.Empty(t, c.RedisAddr)
	assert.Equal(t, 30*time.Second, c.PageCacheTTL)
	assert.Equal(t, 64, c.ChatQueueSize)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"server"}

	c := LoadConfig()
	require.NotNil(t, c)

	if diff := cmp.Diff(defaults(), c); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFlagArgs(t *testing.T) {
	c := defaults()
	parseFlagArgs(c, []string{
		"-a", "127.0.0.1:9090", "-w", ":9091", "-d", "postgres://db", "-n", "50",
		"-f", "/tmp/up", "-s", "secret", "-t", "5", "-u", "user", "-p", "password",
		"-b", "bucket", "-g", "us-west-1", "-e", "http://endpoint", "-r", "redis:6379",
		"-l", "debug", "-unknown", "x",
	})

	want := defaults()
	want.EndpointAddrGRPC = "127.0.0.1:9090"
	want.EndpointAddrHTTP = ":9091"
	want.DatabaseDSN = "postgres://db"
	want.SyntheticRows = 50
	want.UploadsDir = "/tmp/up"
	want.SecretKey = "secret"
	want.TokenValidityDuration = 5 * time.Minute
	want.S3AccessKey = "user"
	want.S3SecretKey = "password"
	want.S3Bucket = "bucket"
	want.S3Region = "us-west-1"
	want.S3BaseEndpoint = "http://endpoint"
	want.RedisAddr = "redis:6379"
	want.LogLevel = "debug"

	if diff := cmp.Diff(want, c); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFlagArgs_PanicsOnBadValue(t *testing.T) {
	assert.Panics(t, func() {
		parseFlagArgs(defaults(), []string{"-n", "many"})
	})
}

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func TestParseJson_OverlaysPresentFields(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, map[string]any{
		"endpoint_addr_http":      ":7000",
		"database_dsn":            "postgres://json",
		"token_validity_duration": "2h",
		"page_cache_ttl":          int64(5 * time.Second),
		"chat_queue_size":         8,
		"redis_db":                3,
	})
	os.Args = []string{"server", "-config", path}

	c := defaults()
	parseJson(c)

	want := defaults()
	want.EndpointAddrHTTP = ":7000"
	want.DatabaseDSN = "postgres://json"
	want.TokenValidityDuration = 2 * time.Hour
	want.PageCacheTTL = 5 * time.Second
	want.ChatQueueSize = 8
	want.RedisDB = 3

	if diff := cmp.Diff(want, c); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseJson_NoFile(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"server"}

	c := defaults()
	parseJson(c)
	assert.Equal(t, defaults(), c)
}

func TestLoadJsonFile_Panics(t *testing.T) {
	assert.Panics(t, func() { loadJsonFile(defaults(), filepath.Join(t.TempDir(), "missing.json")) })

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o600))
	assert.Panics(t, func() { loadJsonFile(defaults(), bad) })
}

func TestLoadConfig_FlagsOverrideJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, map[string]any{"endpoint_addr_grpc": ":1111", "log_level": "warn"})
	os.Args = []string{"server", "-c", path, "-a", ":2222"}

	c := LoadConfig()
	assert.Equal(t, ":2222", c.EndpointAddrGRPC)
	assert.Equal(t, "warn", c.LogLevel)
}
