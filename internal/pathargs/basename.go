package pathargs

import (
	"path/filepath"
	"strings"
)

// windowsReservedNames are device names that cannot be used as a file name
// on Windows, compared case-insensitively.
var windowsReservedNames = map[string]bool{
	"con": true, "prn": true, "aux": true, "nul": true, "clock$": true,
	"com0": true, "com1": true, "com2": true, "com3": true, "com4": true,
	"com5": true, "com6": true, "com7": true, "com8": true, "com9": true,
	"lpt0": true, "lpt1": true, "lpt2": true, "lpt3": true, "lpt4": true,
	"lpt5": true, "lpt6": true, "lpt7": true, "lpt8": true, "lpt9": true,
}

const (
	unixInvalidChars    = "\x00/\\"
	windowsInvalidChars = "\x00/\\:*?\"<>|"
)

// ValidBasename reports whether name can be used as a file name on p.
func (p Platform) ValidBasename(name string) bool {
	if strings.Trim(name, " \t\r\n\v\f") == "" {
		return false
	}
	if name == "." || name == ".." {
		return false
	}

	if !p.Windows {
		return !strings.ContainsAny(name, unixInvalidChars)
	}

	if strings.ContainsAny(name, windowsInvalidChars) {
		return false
	}
	for i := 0; i < len(name); i++ {
		if name[i] < 0x20 {
			return false
		}
	}
	if windowsReservedNames[strings.ToLower(name)] {
		return false
	}
	if strings.HasSuffix(name, ".") {
		return false
	}
	return strings.TrimSpace(name) == name
}

// basename returns the last element of path, or "" when path is a
// filesystem root.
func basename(path string) string {
	clean := filepath.Clean(path)
	if filepath.Dir(clean) == clean {
		return ""
	}
	return filepath.Base(clean)
}
