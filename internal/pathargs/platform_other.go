//go:build !darwin && !windows

package pathargs

var hostPlatform = Platform{}
