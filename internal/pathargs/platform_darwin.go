//go:build darwin

package pathargs

var hostPlatform = Platform{CaseInsensitive: true, NormalizationInsensitive: true}
