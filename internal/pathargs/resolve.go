package pathargs

import "path/filepath"

// Resolver turns a path into its canonical, symlink-free absolute form.
// It returns an error when the path cannot be resolved, typically because
// it does not exist.
type Resolver interface {
	Realpath(path string) (string, error)
}

// OSResolver resolves paths against the local filesystem.
type OSResolver struct{}

// Realpath resolves symlinks and relative elements in path.
func (OSResolver) Realpath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", err
	}
	return filepath.Clean(resolved), nil
}

// ResolverFunc adapts a plain function to the Resolver interface.
type ResolverFunc func(path string) (string, error)

// Realpath calls f(path).
func (f ResolverFunc) Realpath(path string) (string, error) {
	return f(path)
}
