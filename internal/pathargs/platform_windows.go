//go:build windows

package pathargs

var hostPlatform = Platform{Windows: true, CaseInsensitive: true}
