package config

import "github.com/spf13/pflag"

// Flags are the command-line settings. Values only override the JSON file
// when the flag was given explicitly.
type Flags struct {
	ConfigPath string

	fs     *pflag.FlagSet
	values Config
}

// RegisterFlags defines the configuration flags on fs, typically a cobra
// command's persistent flag set.
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	var d Config
	d.LoadDefaults()

	f := &Flags{fs: fs}
	fs.StringVarP(&f.ConfigPath, "config", "c", "", "path to JSON config file")
	fs.StringVarP(&f.values.ServerBaseURL, "server", "s", d.ServerBaseURL, "base URL of the authentication API")
	fs.StringVar(&f.values.DatabasePath, "db", d.DatabasePath, "path to the local token database")
	fs.DurationVar(&f.values.RequestTimeout, "timeout", d.RequestTimeout, "API request timeout")
	fs.StringVar(&f.values.LogLevel, "log-level", d.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&f.values.LogBackend, "log-backend", d.LogBackend, "log backend: slog or zap")
	fs.BoolVar(&f.values.Ephemeral, "ephemeral", d.Ephemeral, "keep the token in memory only")
	return f
}

func (f *Flags) apply(cfg *Config) {
	if f.fs.Changed("server") {
		cfg.ServerBaseURL = f.values.ServerBaseURL
	}
	if f.fs.Changed("db") {
		cfg.DatabasePath = f.values.DatabasePath
	}
	if f.fs.Changed("timeout") {
		cfg.RequestTimeout = f.values.RequestTimeout
	}
	if f.fs.Changed("log-level") {
		cfg.LogLevel = f.values.LogLevel
	}
	if f.fs.Changed("log-backend") {
		cfg.LogBackend = f.values.LogBackend
	}
	if f.fs.Changed("ephemeral") {
		cfg.Ephemeral = f.values.Ephemeral
	}
}
