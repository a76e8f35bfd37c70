package creds

import (
	"context"
	"fmt"
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel/attribute"

	"github.com/slipway/slipway/tracing"
	"github.com/slipway/slipway/yard/db"
)

type SecretCacheConfig struct {
	Enabled          bool          `long:"secret-cache-enabled" description:"Enable in-memory cache for secret rows"`
	Duration         time.Duration `long:"secret-cache-duration" default:"1m" description:"If the cache is enabled, secret rows will be cached for this duration"`
	DurationNotFound time.Duration `long:"secret-cache-duration-notfound" default:"10s" description:"If the cache is enabled, secret not found responses will be cached for this duration"`
	PurgeInterval    time.Duration `long:"secret-cache-purge-interval" default:"10m" description:"If the cache is enabled, expired items will be removed on this interval"`
}

// CachedSecrets memoises secret rows in front of another reader. Only
// ciphertext is cached; plaintext exists solely inside per-build bundles.
type CachedSecrets struct {
	reader      SecretReader
	cacheConfig SecretCacheConfig
	cache       *gocache.Cache
}

type cacheEntry struct {
	ciphertext string
	nonce      *string
	found      bool
}

func NewCachedSecrets(reader SecretReader, cacheConfig SecretCacheConfig) *CachedSecrets {
	return &CachedSecrets{
		reader:      reader,
		cacheConfig: cacheConfig,
		cache:       gocache.New(cacheConfig.Duration, cacheConfig.PurgeInterval),
	}
}

func (cs *CachedSecrets) ReadSecret(project db.Project, name string) (string, *string, bool, error) {
	_, span := tracing.StartSpan(context.Background(), "creds.lookup", tracing.Attrs{
		"secret.name": name,
	})

	key := cacheKey(project.ID(), name)

	entry, exists := cs.cache.Get(key)
	if exists {
		result := entry.(cacheEntry)
		span.SetAttributes(attribute.String("cache.hit", "true"))
		span.End()
		return result.ciphertext, result.nonce, result.found, nil
	}

	span.SetAttributes(attribute.String("cache.hit", "false"))

	ciphertext, nonce, found, err := cs.reader.ReadSecret(project, name)
	if err != nil {
		tracing.End(span, err)
		return "", nil, false, err
	}

	span.SetAttributes(attribute.String("secret.found", strconv.FormatBool(found)))
	span.End()

	// Cache hits and misses, but not errors.
	duration := cs.cacheConfig.Duration
	if !found {
		duration = cs.cacheConfig.DurationNotFound
	}
	cs.cache.Set(key, cacheEntry{ciphertext: ciphertext, nonce: nonce, found: found}, duration)

	return ciphertext, nonce, found, nil
}

func (cs *CachedSecrets) Invalidate(projectID int, name string) {
	cs.cache.Delete(cacheKey(projectID, name))
}

func cacheKey(projectID int, name string) string {
	return fmt.Sprintf("%d:%s", projectID, name)
}
