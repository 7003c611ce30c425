package pathargs

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// DefaultEnvVar is the environment variable that overrides the process
// working directory for relative arguments.
const DefaultEnvVar = "ARGPATH_CWD"

// Status is the outcome of normalizing a single argument.
type Status int

const (
	// StatusKept means the argument appears in the normalized result.
	StatusKept Status = iota
	// StatusInvalid means the resolved file name is not valid on the platform.
	StatusInvalid
	// StatusDuplicate means an earlier argument resolved to the same entry.
	StatusDuplicate
)

func (s Status) String() string {
	switch s {
	case StatusKept:
		return "kept"
	case StatusInvalid:
		return "invalid"
	case StatusDuplicate:
		return "duplicate"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Entry records how one input argument was normalized.
type Entry struct {
	Input    string
	Location Location
	Status   Status

	// Exists is false when the filesystem could not resolve the path and
	// the lexical fallback was used.
	Exists bool

	gotoLine bool
}

// Value returns the normalized argument and whether it is part of the
// result. In goto mode the locator suffix is included.
func (e Entry) Value() (string, bool) {
	if e.Status != StatusKept {
		return "", false
	}
	return e.text(), true
}

func (e Entry) text() string {
	if e.gotoLine {
		return e.Location.String()
	}
	return e.Location.Path
}

// Normalizer converts raw path arguments into canonical paths. A
// Normalizer holds no mutable state and may be used concurrently.
type Normalizer struct {
	Platform Platform
	Resolver Resolver

	// EnvVar names the working directory override. Empty disables it.
	EnvVar string
	Getenv func(string) string
	Getwd  func() (string, error)

	Logger *slog.Logger
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithPlatform overrides the host platform descriptor.
func WithPlatform(p Platform) Option {
	return func(n *Normalizer) { n.Platform = p }
}

// WithResolver sets the canonicalization backend.
func WithResolver(r Resolver) Option {
	return func(n *Normalizer) { n.Resolver = r }
}

// WithEnvVar sets the name of the working directory override variable.
func WithEnvVar(name string) Option {
	return func(n *Normalizer) { n.EnvVar = name }
}

// WithGetenv sets the environment lookup.
func WithGetenv(fn func(string) string) Option {
	return func(n *Normalizer) { n.Getenv = fn }
}

// WithWorkingDir pins the working directory, ignoring the environment
// and the process directory.
func WithWorkingDir(dir string) Option {
	return func(n *Normalizer) {
		n.EnvVar = ""
		n.Getwd = func() (string, error) { return dir, nil }
	}
}

// WithLogger sets the debug logger.
func WithLogger(l *slog.Logger) Option {
	return func(n *Normalizer) { n.Logger = l }
}

// New returns a Normalizer for the host platform and filesystem.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		Platform: HostPlatform(),
		Resolver: OSResolver{},
		EnvVar:   DefaultEnvVar,
		Getenv:   os.Getenv,
		Getwd:    os.Getwd,
		Logger:   discardLogger,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// WorkingDir returns the directory relative arguments resolve against.
func (n *Normalizer) WorkingDir() (string, error) {
	if n.EnvVar != "" && n.Getenv != nil {
		if dir := n.Getenv(n.EnvVar); dir != "" {
			return dir, nil
		}
	}
	if n.Getwd == nil {
		return os.Getwd()
	}
	return n.Getwd()
}

// Normalize returns the canonical form of args, with invalid file names
// dropped and duplicates collapsed in order of first occurrence. When
// gotoLine is set each argument may carry a :line[:column] suffix, which
// is preserved in the output.
//
// The only error caused by argument content is a *FormatError for a goto
// argument without a path.
func (n *Normalizer) Normalize(args []string, gotoLine bool) ([]string, error) {
	entries, err := n.Explain(args, gotoLine)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if v, ok := e.Value(); ok {
			out = append(out, v)
		}
	}
	return out, nil
}

// Explain runs the same pipeline as Normalize but reports one Entry per
// argument, including the ones Normalize drops.
func (n *Normalizer) Explain(args []string, gotoLine bool) ([]Entry, error) {
	cwd, err := n.WorkingDir()
	if err != nil {
		return nil, fmt.Errorf("resolving working directory: %w", err)
	}

	entries := make([]Entry, 0, len(args))
	for _, arg := range args {
		e, err := n.normalizeOne(cwd, arg, gotoLine)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	seen := make(map[string]bool, len(entries))
	for i := range entries {
		if entries[i].Status != StatusKept {
			continue
		}
		key := n.dedupeKey(entries[i].text())
		if seen[key] {
			entries[i].Status = StatusDuplicate
			n.logger().Debug("duplicate argument dropped", "arg", entries[i].Input)
			continue
		}
		seen[key] = true
	}
	return entries, nil
}

func (n *Normalizer) normalizeOne(cwd, arg string, gotoLine bool) (Entry, error) {
	e := Entry{Input: arg, gotoLine: gotoLine}

	candidate := arg
	if gotoLine {
		loc, err := ParseLocation(arg)
		if err != nil {
			return Entry{}, err
		}
		e.Location = loc
		candidate = loc.Path
	}

	if candidate != "" {
		candidate = n.preparePath(cwd, candidate)
	}

	e.Location.Path, e.Exists = n.canonicalize(cwd, candidate)

	if name := basename(e.Location.Path); name != "" && !n.Platform.ValidBasename(name) {
		e.Status = StatusInvalid
		n.logger().Debug("invalid file name dropped", "arg", arg, "name", name)
	}
	return e, nil
}

// preparePath strips quoting and whitespace artifacts from a raw path.
func (n *Normalizer) preparePath(cwd, p string) string {
	if n.Platform.Windows {
		// cmd.exe leaves a trailing quote on arguments like "C:\dir\".
		p = strings.TrimRight(p, `"`)
	}

	p = strings.Trim(strings.Trim(p, " "), "\t")

	if n.Platform.Windows {
		p = strings.TrimRight(resolveAgainst(cwd, p), ".")
	}
	return p
}

// canonicalize resolves p through the filesystem, falling back to lexical
// normalization so arguments may name files that do not exist yet.
func (n *Normalizer) canonicalize(cwd, p string) (string, bool) {
	abs := resolveAgainst(cwd, p)

	if p != "" {
		resolved, err := n.resolver().Realpath(abs)
		if err == nil {
			return resolved, true
		}
		n.logger().Debug("path not resolved, using lexical form", "path", p, "err", err)
	}
	return abs, false
}

func (n *Normalizer) dedupeKey(s string) string {
	if n.Platform.NormalizationInsensitive {
		s = norm.NFC.String(s)
	}
	if n.Platform.CaseInsensitive {
		s = strings.ToLower(s)
	}
	return s
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func (n *Normalizer) logger() *slog.Logger {
	if n.Logger == nil {
		return discardLogger
	}
	return n.Logger
}

func (n *Normalizer) resolver() Resolver {
	if n.Resolver == nil {
		return OSResolver{}
	}
	return n.Resolver
}
