package config

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix namespaces environment overrides, e.g. GH_UNRESOLVED_COMMENTS_LOG_LEVEL
	EnvPrefix = "GH_UNRESOLVED_COMMENTS"

	// LogLevelKey is both the flag name and the viper key for the log level
	LogLevelKey = "log-level"
	// DefaultLogLevel keeps stderr quiet unless something goes wrong
	DefaultLogLevel = "warn"
)

// Config holds the command's runtime settings
type Config struct {
	LogLevel string
}

// Load resolves settings from flags, then the environment, then defaults.
// flags may be nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault(LogLevelKey, DefaultLogLevel)

	if flags != nil {
		if f := flags.Lookup(LogLevelKey); f != nil {
			if err := v.BindPFlag(LogLevelKey, f); err != nil {
				return nil, errors.Wrap(err, "failed to bind log-level flag")
			}
		}
	}

	cfg := &Config{LogLevel: strings.ToLower(strings.TrimSpace(v.GetString(LogLevelKey)))}
	if _, err := cfg.Level(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Level parses LogLevel for the charmbracelet logger
func (c *Config) Level() (log.Level, error) {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid log level %q", c.LogLevel)
	}
	return level, nil
}
