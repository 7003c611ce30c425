// Package config provides configuration loading and defaults for argpath.
package config

import "github.com/blackwell-systems/argpath/internal/pathargs"

// DefaultConfigDir is the default location for argpath configuration.
const DefaultConfigDir = "~/.config/argpath"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// EnvPrefix prefixes environment overrides for config keys, e.g.
// ARGPATH_GOTO=true or ARGPATH_OUTPUT_FORMAT=json.
const EnvPrefix = "ARGPATH"

// DefaultCwdEnv is the environment variable consulted for the working
// directory before the process directory.
const DefaultCwdEnv = pathargs.DefaultEnvVar

// DefaultGoto is whether goto mode is on when --goto is not given.
const DefaultGoto = false

// Case sensitivity modes for deduplication.
const (
	CaseAuto        = "auto"
	CaseSensitive   = "sensitive"
	CaseInsensitive = "insensitive"
)

// Output formats.
const (
	FormatLines = "lines"
	FormatJSON  = "json"
	FormatNull  = "null"
)

// DefaultCaseSensitivity follows the host filesystem.
const DefaultCaseSensitivity = CaseAuto

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color:  true,
	Format: FormatLines,
}
