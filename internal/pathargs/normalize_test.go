package pathargs

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tempRoot returns a symlink-free temporary directory (macOS puts
// t.TempDir under a /var -> /private/var link).
func tempRoot(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return dir
}

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

// missingResolver never finds anything, forcing the lexical fallback.
var missingResolver = ResolverFunc(func(string) (string, error) {
	return "", os.ErrNotExist
})

func TestNormalize_AbsoluteExistingPath(t *testing.T) {
	root := tempRoot(t)
	file := filepath.Join(root, "main.go")
	touch(t, file)

	n := New(WithWorkingDir(root))
	got, err := n.Normalize([]string{file}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{file}, got)
}

func TestNormalize_RelativeResolvesAgainstWorkingDir(t *testing.T) {
	root := tempRoot(t)
	touch(t, filepath.Join(root, "src", "a.txt"))

	n := New(WithWorkingDir(root))
	got, err := n.Normalize([]string{filepath.Join("src", ".", "..", "src", "a.txt")}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "src", "a.txt")}, got)
}

func TestNormalize_MissingPathFallsBack(t *testing.T) {
	root := tempRoot(t)

	n := New(WithWorkingDir(root))
	got, err := n.Normalize([]string{
		"does-not-exist-xyz",
		filepath.Join(root, "new", "..", "later.txt"),
	}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "does-not-exist-xyz"),
		filepath.Join(root, "later.txt"),
	}, got)
}

func TestNormalize_ResolvesSymlinks(t *testing.T) {
	root := tempRoot(t)
	target := filepath.Join(root, "real", "file.txt")
	touch(t, target)

	link := filepath.Join(root, "link")
	if err := os.Symlink(filepath.Join(root, "real"), link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	n := New(WithWorkingDir(root))
	got, err := n.Normalize([]string{filepath.Join("link", "file.txt"), target}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{target}, got, "link and target should collapse into one entry")
}

func TestNormalize_GotoMode(t *testing.T) {
	root := tempRoot(t)
	touch(t, filepath.Join(root, "main.go"))

	n := New(WithWorkingDir(root))
	got, err := n.Normalize([]string{"main.go:10:3", "main.go:7", "main.go"}, true)
	require.NoError(t, err)

	file := filepath.Join(root, "main.go")
	assert.Equal(t, []string{file + ":10:3", file + ":7:1", file}, got)
}

func TestNormalize_GotoFormatError(t *testing.T) {
	n := New(WithWorkingDir(tempRoot(t)))

	_, err := n.Normalize([]string{"ok.txt", ":::"}, true)
	require.Error(t, err)

	var fe *FormatError
	assert.True(t, errors.As(err, &fe))
}

func TestNormalize_NumericArgumentWithoutGoto(t *testing.T) {
	root := tempRoot(t)

	n := New(WithWorkingDir(root))
	got, err := n.Normalize([]string{"5"}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "5")}, got)
}

func TestNormalize_DropsInvalidBasename(t *testing.T) {
	root := tempRoot(t)
	touch(t, filepath.Join(root, "good.txt"))

	n := New(WithWorkingDir(root))
	got, err := n.Normalize([]string{"bad\x00name", "good.txt"}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "good.txt")}, got)
}

func TestNormalize_DropsReservedNameOnWindows(t *testing.T) {
	root := tempRoot(t)

	n := New(
		WithWorkingDir(root),
		WithPlatform(Platform{Windows: true, CaseInsensitive: true}),
		WithResolver(missingResolver),
	)
	got, err := n.Normalize([]string{"CON", "notes.txt"}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "notes.txt")}, got)
}

func TestNormalize_RootPathIsKept(t *testing.T) {
	root := filepath.VolumeName(tempRoot(t)) + string(filepath.Separator)

	n := New(WithWorkingDir(root))
	got, err := n.Normalize([]string{root}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{root}, got)
}

func TestNormalize_EmptyArgumentIsWorkingDir(t *testing.T) {
	root := tempRoot(t)

	n := New(WithWorkingDir(root))
	got, err := n.Normalize([]string{""}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{root}, got)
}

func TestNormalize_Dedupe(t *testing.T) {
	root := tempRoot(t)

	tests := []struct {
		name     string
		platform Platform
		args     []string
		want     []string
	}{
		{
			name:     "case sensitive keeps both",
			platform: Platform{},
			args:     []string{"Foo", "foo"},
			want:     []string{filepath.Join(root, "Foo"), filepath.Join(root, "foo")},
		},
		{
			name:     "case insensitive keeps first",
			platform: Platform{CaseInsensitive: true},
			args:     []string{"Foo", "foo", "FOO"},
			want:     []string{filepath.Join(root, "Foo")},
		},
		{
			name:     "unicode forms stay distinct on windows",
			platform: Platform{Windows: true, CaseInsensitive: true},
			args:     []string{"caf\u00e9", "cafe\u0301"},
			want:     []string{filepath.Join(root, "caf\u00e9"), filepath.Join(root, "cafe\u0301")},
		},
		{
			name:     "unicode forms stay distinct when only case insensitive",
			platform: Platform{CaseInsensitive: true},
			args:     []string{"Caf\u00e9", "cafe\u0301"},
			want:     []string{filepath.Join(root, "Caf\u00e9"), filepath.Join(root, "cafe\u0301")},
		},
		{
			name:     "unicode forms collapse when normalization insensitive",
			platform: Platform{CaseInsensitive: true, NormalizationInsensitive: true},
			args:     []string{"Caf\u00e9", "cafe\u0301"},
			want:     []string{filepath.Join(root, "Caf\u00e9")},
		},
		{
			name:     "order of first occurrence",
			platform: Platform{},
			args:     []string{"b", "a", "b", "./a"},
			want:     []string{filepath.Join(root, "b"), filepath.Join(root, "a")},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n := New(WithWorkingDir(root), WithPlatform(tc.platform), WithResolver(missingResolver))
			got, err := n.Normalize(tc.args, false)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalize_GotoDedupeIncludesLocator(t *testing.T) {
	root := tempRoot(t)

	n := New(WithWorkingDir(root), WithResolver(missingResolver))
	got, err := n.Normalize([]string{"a.txt:1", "a.txt:1:1", "a.txt"}, true)
	require.NoError(t, err)

	file := filepath.Join(root, "a.txt")
	assert.Equal(t, []string{file + ":1:1", file}, got)
}

func TestNormalize_WindowsPreparation(t *testing.T) {
	root := tempRoot(t)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trailing quotes", `notes.txt""`, "notes.txt"},
		{"trailing dots", "notes.txt..", "notes.txt"},
		{"quote after space", "notes.txt.. \"", "notes.txt"},
		{"spaces around tabs", "  \tnotes.txt\t  ", "notes.txt"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n := New(
				WithWorkingDir(root),
				WithPlatform(Platform{Windows: true}),
				WithResolver(missingResolver),
			)
			got, err := n.Normalize([]string{tc.input}, false)
			require.NoError(t, err)
			assert.Equal(t, []string{filepath.Join(root, tc.want)}, got)
		})
	}
}

func TestNormalize_UnixKeepsTrailingDotsAndQuotes(t *testing.T) {
	root := tempRoot(t)

	n := New(WithWorkingDir(root), WithPlatform(Platform{}), WithResolver(missingResolver))
	got, err := n.Normalize([]string{"file.", `name"`, "  spaced  "}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "file."),
		filepath.Join(root, `name"`),
		filepath.Join(root, "spaced"),
	}, got)
}

func TestNormalize_Idempotent(t *testing.T) {
	root := tempRoot(t)
	touch(t, filepath.Join(root, "a", "b.txt"))

	for _, gotoLine := range []bool{false, true} {
		n := New(WithWorkingDir(root))
		args := []string{"a/b.txt", "a/./b.txt", "missing/../c.txt", "a"}
		if gotoLine {
			args = []string{"a/b.txt:3:4", "a/b.txt:9", "c.txt"}
		}

		first, err := n.Normalize(args, gotoLine)
		require.NoError(t, err)
		second, err := n.Normalize(first, gotoLine)
		require.NoError(t, err)
		assert.Equal(t, first, second, "gotoLine=%v", gotoLine)
	}
}

func TestWorkingDir(t *testing.T) {
	envDir := tempRoot(t)
	procDir := tempRoot(t)

	getenv := func(key string) string {
		if key == DefaultEnvVar {
			return envDir
		}
		return ""
	}
	getwd := func() (string, error) { return procDir, nil }

	t.Run("env override", func(t *testing.T) {
		n := New(WithGetenv(getenv))
		n.Getwd = getwd

		got, err := n.Normalize([]string{"x.txt"}, false)
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(envDir, "x.txt")}, got)
	})

	t.Run("custom variable name", func(t *testing.T) {
		n := New(WithGetenv(getenv), WithEnvVar("OTHER_CWD"))
		n.Getwd = getwd

		dir, err := n.WorkingDir()
		require.NoError(t, err)
		assert.Equal(t, procDir, dir)
	})

	t.Run("getwd failure", func(t *testing.T) {
		n := New(WithGetenv(func(string) string { return "" }))
		n.Getwd = func() (string, error) { return "", errors.New("gone") }

		_, err := n.Normalize([]string{"x"}, false)
		require.Error(t, err)
		var fe *FormatError
		assert.False(t, errors.As(err, &fe))
		assert.Contains(t, err.Error(), "working directory")
	})
}

func TestExplain(t *testing.T) {
	root := tempRoot(t)
	touch(t, filepath.Join(root, "Here.txt"))

	n := New(
		WithWorkingDir(root),
		WithPlatform(Platform{CaseInsensitive: true}),
	)
	args := []string{"Here.txt:4", "here.txt:4", "bad\x00", "later.txt"}
	entries, err := n.Explain(args, true)
	require.NoError(t, err)
	require.Len(t, entries, len(args))

	for i, e := range entries {
		assert.Equal(t, args[i], e.Input)
	}

	assert.Equal(t, StatusKept, entries[0].Status)
	assert.True(t, entries[0].Exists)
	assert.Equal(t, 4, entries[0].Location.Line)
	assert.Equal(t, 1, entries[0].Location.Column)

	assert.Equal(t, StatusDuplicate, entries[1].Status)
	assert.Equal(t, StatusInvalid, entries[2].Status)

	assert.Equal(t, StatusKept, entries[3].Status)
	assert.False(t, entries[3].Exists)

	v, ok := entries[3].Value()
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(root, "later.txt"), v)

	_, ok = entries[1].Value()
	assert.False(t, ok)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "kept", StatusKept.String())
	assert.Equal(t, "invalid", StatusInvalid.String())
	assert.Equal(t, "duplicate", StatusDuplicate.String())
	assert.Equal(t, "Status(9)", Status(9).String())
}

func TestNormalize_ConcurrentUse(t *testing.T) {
	root := tempRoot(t)
	n := New(WithWorkingDir(root), WithResolver(missingResolver))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := n.Normalize([]string{"a", "b", "a"}, false)
			assert.NoError(t, err)
			assert.Len(t, got, 2)
		}()
	}
	wg.Wait()
}
