// Package pathargs normalizes file path arguments passed to an editor.
//
// Each argument is trimmed, resolved against a working directory,
// canonicalized through the filesystem (or lexically when the file does
// not exist yet), checked for a valid filename, and deduplicated. In goto
// mode a trailing :line[:column] locator is parsed off and re-attached.
package pathargs

import (
	"os"
	"path/filepath"
	"strings"
)

// Platform describes the host behaviors the normalizer branches on.
type Platform struct {
	// Windows enables trailing quote and dot trimming, resolution against
	// the working directory during preparation, and Windows filename rules.
	Windows bool

	// CaseInsensitive makes deduplication ignore case.
	CaseInsensitive bool

	// NormalizationInsensitive makes deduplication treat NFC and NFD
	// spellings of a name as the same file, as APFS and HFS+ do.
	NormalizationInsensitive bool
}

// resolveAgainst makes p absolute relative to cwd. A path rooted without a
// volume (`\proj\a.txt`) takes the volume of cwd; a volume-relative path
// (`D:notes.txt`) resolves against cwd when it names the same volume and
// against that volume's current directory otherwise.
func resolveAgainst(cwd, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}

	vol := filepath.VolumeName(p)
	switch {
	case vol != "":
		if strings.EqualFold(vol, filepath.VolumeName(cwd)) {
			return filepath.Join(cwd, p[len(vol):])
		}
		if abs, err := filepath.Abs(p); err == nil {
			return abs
		}
		return filepath.Join(vol+string(filepath.Separator), p[len(vol):])
	case p != "" && os.IsPathSeparator(p[0]):
		return filepath.VolumeName(cwd) + filepath.Clean(p)
	default:
		return filepath.Join(cwd, p)
	}
}

// HostPlatform returns the Platform for the running operating system.
func HostPlatform() Platform {
	return hostPlatform
}
