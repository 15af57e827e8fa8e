package keys

import (
	"strings"
)

const (
	// PfxHealthCheck is used for prefixing health check cache keys
	PfxHealthCheck = "healthcheck"
	// PfxHttpCache is used for prefixing cached http responses
	PfxHttpCache = "httpCacheMiddleware"
)

// CustomKey is used to join the customized key by componets with specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// CacheKey is used to join a cache key by components
func CacheKey(components ...string) string {
	return CustomKey(":", components...)
}
