package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/blackwell-systems/argpath/internal/pathargs"
)

// Config is the top-level argpath configuration.
type Config struct {
	CwdEnv          string `mapstructure:"cwd_env"`
	Goto            bool   `mapstructure:"goto"`
	CaseSensitivity string `mapstructure:"case_sensitivity"`
	Output          Output `mapstructure:"output"`
}

// Output defines output preferences.
type Output struct {
	Color  bool   `mapstructure:"color"`
	Format string `mapstructure:"format"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a validated Config with all defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("cwd_env", DefaultCwdEnv)
	v.SetDefault("goto", DefaultGoto)
	v.SetDefault("case_sensitivity", DefaultCaseSensitivity)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.format", DefaultOutput.Format)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile == "" {
		cfgFile = filepath.Join(ConfigDir(), DefaultConfigFile)
	}
	v.SetConfigFile(expandPath(cfgFile))

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.CaseSensitivity = strings.ToLower(strings.TrimSpace(cfg.CaseSensitivity))
	cfg.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.CaseSensitivity {
	case CaseAuto, CaseSensitive, CaseInsensitive:
	default:
		return fmt.Errorf("invalid case_sensitivity %q (want %s, %s or %s)",
			c.CaseSensitivity, CaseAuto, CaseSensitive, CaseInsensitive)
	}

	switch c.Output.Format {
	case FormatLines, FormatJSON, FormatNull:
	default:
		return fmt.Errorf("invalid output.format %q (want %s, %s or %s)",
			c.Output.Format, FormatLines, FormatJSON, FormatNull)
	}
	return nil
}

// Platform returns the host platform with the configured case
// sensitivity applied.
func (c *Config) Platform() pathargs.Platform {
	p := pathargs.HostPlatform()
	switch c.CaseSensitivity {
	case CaseSensitive:
		p.CaseInsensitive = false
	case CaseInsensitive:
		p.CaseInsensitive = true
	}
	return p
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
