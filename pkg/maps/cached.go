package maps

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode"

	"logiflow/pkg/cache"
	"logiflow/pkg/metrics"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/unicode/norm"
)

// CachedProvider memoizes provider answers in redis. Cache failures fall through to the provider.
type CachedProvider struct {
	next DirectionsProvider
	rdb  *redis.Client
	ttl  time.Duration
}

func NewCachedProvider(next DirectionsProvider, rdb *redis.Client, ttl time.Duration) *CachedProvider {
	return &CachedProvider{next: next, rdb: rdb, ttl: ttl}
}

func (c *CachedProvider) Optimize(ctx context.Context, origin string, stops []string) (Result, error) {
	key := CacheKey(origin, stops)

	var cached Result
	err := cache.GetJSON(ctx, c.rdb, key, &cached)
	if err == nil {
		metrics.DirectionsRequests.WithLabelValues("cache").Inc()
		return cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		log.WithError(err).WithField("key", key).Warn("erro ao recuperar rota do cache")
	}

	result, err := c.next.Optimize(ctx, origin, stops)
	if err != nil {
		metrics.DirectionsRequests.WithLabelValues("error").Inc()
		return Result{}, err
	}
	metrics.DirectionsRequests.WithLabelValues("provider").Inc()

	// simulated distances are random; caching them would freeze one draw
	if result.Source != SourceSimulated {
		if err := cache.SetJSON(ctx, c.rdb, key, result, c.ttl); err != nil {
			log.WithError(err).WithField("key", key).Warn("erro ao salvar rota no cache")
		}
	}

	return result, nil
}

func CacheKey(origin string, stops []string) string {
	normalized := make([]string, 0, len(stops))
	for _, s := range stops {
		normalized = append(normalized, normalizeAddress(s))
	}
	return "directions:" + normalizeAddress(origin) + ":" + strings.Join(normalized, "|")
}

func normalizeAddress(address string) string {
	decomposed := norm.NFD.String(address)
	var result strings.Builder
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		result.WriteRune(r)
	}
	return strings.ToLower(strings.Join(strings.Fields(result.String()), " "))
}
