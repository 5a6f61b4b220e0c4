package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T) (*pflag.FlagSet, *viper.Viper) {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	v := viper.New()
	require.NoError(t, BindFlags(fs, v))
	return fs, v
}

func TestLoadConfig_Defaults(t *testing.T) {
	_, v := newFlags(t)

	cfg, err := LoadConfig(v, "")
	require.NoError(t, err)

	var want Config
	want.LoadDefaults()
	assert.Equal(t, &want, cfg)
}

func TestLoadConfig_FlagsOverrideEnvAndFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "client.yaml")
	require.NoError(t, os.WriteFile(file, []byte("grpc-addr: file:1\nhttp-addr: file:2\ntimeout: 1m\ncompress: lz4\n"), 0o600))

	t.Setenv("TRANSFERBENCH_HTTP_ADDR", "env:2")
	t.Setenv("TRANSFERBENCH_TOKEN", "tok")

	fs, v := newFlags(t)
	require.NoError(t, fs.Parse([]string{"--grpc-addr", "flag:1", "--progress=false", "--repeat", "3"}))

	cfg, err := LoadConfig(v, file)
	require.NoError(t, err)

	assert.Equal(t, "flag:1", cfg.GRPCAddr)
	assert.Equal(t, "env:2", cfg.HTTPAddr)
	assert.Equal(t, "tok", cfg.AccessToken)
	assert.Equal(t, "lz4", cfg.Compress)
	assert.Equal(t, time.Minute, cfg.Timeout)
	assert.False(t, cfg.Progress)
	assert.Equal(t, 3, cfg.Repeat)
}

func TestLoadConfig_JSONFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "client.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"reports-db": "", "downloads-dir": "/tmp/dl"}`), 0o600))

	_, v := newFlags(t)
	cfg, err := LoadConfig(v, file)
	require.NoError(t, err)

	assert.Equal(t, "", cfg.ReportsDB)
	assert.Equal(t, "/tmp/dl", cfg.DownloadsDir)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, v := newFlags(t)
	_, err := LoadConfig(v, filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	fs, v := newFlags(t)
	require.NoError(t, fs.Parse([]string{"--compress", "zstd"}))
	_, err = LoadConfig(v, "")
	require.ErrorContains(t, err, "zstd")

	fs, v = newFlags(t)
	require.NoError(t, fs.Parse([]string{"--repeat", "0"}))
	_, err = LoadConfig(v, "")
	require.ErrorContains(t, err, "repeat")
}
