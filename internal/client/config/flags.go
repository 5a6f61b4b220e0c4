package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable the client reads.
const EnvPrefix = "TRANSFERBENCH"

// BindFlags declares the persistent client flags on fs and binds them to v
// together with their TRANSFERBENCH_* environment variables.
func BindFlags(fs *pflag.FlagSet, v *viper.Viper) error {
	var d Config
	d.LoadDefaults()

	fs.String(KeyGRPCAddr, d.GRPCAddr, "gRPC server address")
	fs.String(KeyHTTPAddr, d.HTTPAddr, "REST server address")
	fs.String(KeyToken, "", "access token for payroll RPCs")
	fs.String(KeyCompress, "", "gRPC compressor (lz4)")
	fs.String(KeyDownloadsDir, d.DownloadsDir, "directory for downloaded files")
	fs.String(KeyReportsDB, d.ReportsDB, "SQLite file for benchmark reports (empty disables)")
	fs.Duration(KeyTimeout, 0, "deadline for the whole command (0 means none)")
	fs.Bool(KeyProgress, d.Progress, "show transfer progress on a terminal")
	fs.Int(KeyRepeat, d.Repeat, "run each benchmarked call this many times")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, key := range []string{KeyGRPCAddr, KeyHTTPAddr, KeyToken, KeyCompress, KeyDownloadsDir, KeyReportsDB, KeyTimeout, KeyProgress, KeyRepeat} {
		if err := v.BindPFlag(key, fs.Lookup(key)); err != nil {
			return err
		}
	}
	return nil
}
