package app

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/argpath/internal/config"
	"github.com/blackwell-systems/argpath/internal/output"
	"github.com/blackwell-systems/argpath/internal/pathargs"
)

// cfg is loaded once per invocation by setup.
var cfg *config.Config

// logger receives resolution details; debug level only with --verbose.
var logger = slog.Default()

// setup loads configuration and wires logging and color for every command.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg = loaded

	level := slog.LevelWarn
	if flagVerbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	colorOn := !flagNoColor && cfg.Output.Color
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		colorOn = output.ColorEnabled(f, colorOn)
	} else {
		colorOn = false
	}
	output.SetNoColor(!colorOn)
	return nil
}

// newNormalizer builds a Normalizer from config and flags.
func newNormalizer() (*pathargs.Normalizer, error) {
	opts := []pathargs.Option{
		pathargs.WithPlatform(cfg.Platform()),
		pathargs.WithEnvVar(cfg.CwdEnv),
		pathargs.WithLogger(logger),
	}

	if flagCwd != "" {
		dir, err := filepath.Abs(flagCwd)
		if err != nil {
			return nil, fmt.Errorf("resolving --cwd: %w", err)
		}
		opts = append(opts, pathargs.WithWorkingDir(dir))
	}

	return pathargs.New(opts...), nil
}

// gotoMode returns --goto when given, else the configured default.
func gotoMode(cmd *cobra.Command) bool {
	if cmd.Flags().Changed("goto") {
		return flagGoto
	}
	return cfg.Goto
}

// outputFormat resolves --json and --null against the configured format.
func outputFormat() string {
	switch {
	case flagJSON:
		return config.FormatJSON
	case flagNull:
		return config.FormatNull
	default:
		return cfg.Output.Format
	}
}

// expandStdin replaces a lone "-" argument with the lines read from stdin.
// Blank lines are skipped and trailing carriage returns removed.
func expandStdin(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) != 1 || args[0] != "-" {
		return args, nil
	}

	var lines []string
	sc := bufio.NewScanner(cmd.InOrStdin())
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading arguments from stdin: %w", err)
	}
	return lines, nil
}
