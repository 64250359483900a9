package exercises

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymcoach/internal/telemetry/metrics"
	"github.com/2beens/gymcoach/internal/telemetry/tracing"
	"github.com/2beens/gymcoach/pkg/recommend"

	"github.com/coocood/freecache"
	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	facetsCacheKey = "catalog::facets"
	megabyte       = 1024 * 1024
)

type facetsSource interface {
	ListFacetValues(ctx context.Context) (recommend.FacetValues, error)
}

// FacetsCache serves facet values from process memory, then redis, then the catalog itself.
type FacetsCache struct {
	source         facetsSource
	local          *freecache.Cache
	redisClient    *redis.Client
	ttl            time.Duration
	metricsManager *metrics.Manager
}

func NewFacetsCache(
	source facetsSource,
	redisClient *redis.Client,
	ttl time.Duration,
	localSizeMB int,
	metricsManager *metrics.Manager,
) *FacetsCache {
	if localSizeMB <= 0 {
		localSizeMB = 1
	}
	return &FacetsCache{
		source:         source,
		local:          freecache.NewCache(localSizeMB * megabyte),
		redisClient:    redisClient,
		ttl:            ttl,
		metricsManager: metricsManager,
	}
}

func (c *FacetsCache) Get(ctx context.Context) (_ recommend.FacetValues, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.exercises.facets.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if facetsBytes, err := c.local.Get([]byte(facetsCacheKey)); err == nil {
		var facets recommend.FacetValues
		if err := json.Unmarshal(facetsBytes, &facets); err == nil {
			span.SetAttributes(attribute.String("cache.level", "local"))
			c.countHit("local")
			return facets, nil
		} else {
			log.Errorf("unmarshal facets from local cache: %s", err)
		}
	}

	if c.redisClient != nil {
		facetsBytes, err := c.redisClient.Get(ctx, facetsCacheKey).Bytes()
		switch {
		case err == nil:
			var facets recommend.FacetValues
			if err := json.Unmarshal(facetsBytes, &facets); err == nil {
				span.SetAttributes(attribute.String("cache.level", "redis"))
				c.countHit("redis")
				c.setLocal(facetsBytes)
				return facets, nil
			} else {
				log.Errorf("unmarshal facets from redis: %s", err)
			}
		case errors.Is(err, redis.Nil):
			log.Tracef("facets not found in redis")
		default:
			log.Errorf("get facets from redis: %s", err)
		}
	}

	facets, err := c.source.ListFacetValues(ctx)
	if err != nil {
		return recommend.FacetValues{}, fmt.Errorf("list facet values: %w", err)
	}
	span.SetAttributes(attribute.String("cache.level", "source"))
	c.countHit("source")

	facetsBytes, err := json.Marshal(facets)
	if err != nil {
		log.Errorf("marshal facets for cache: %s", err)
		return facets, nil
	}
	c.setLocal(facetsBytes)
	if c.redisClient != nil {
		if err := c.redisClient.Set(ctx, facetsCacheKey, facetsBytes, c.ttl).Err(); err != nil {
			log.Errorf("set facets in redis: %s", err)
		}
	}

	return facets, nil
}

// ListFacetValues lets the cache stand in for the catalog's own facet lookup.
func (c *FacetsCache) ListFacetValues(ctx context.Context) (recommend.FacetValues, error) {
	return c.Get(ctx)
}

// Invalidate drops both cache levels; the next Get goes to the catalog.
func (c *FacetsCache) Invalidate(ctx context.Context) error {
	c.local.Del([]byte(facetsCacheKey))
	if c.redisClient == nil {
		return nil
	}
	if err := c.redisClient.Del(ctx, facetsCacheKey).Err(); err != nil {
		return fmt.Errorf("delete facets from redis: %w", err)
	}
	return nil
}

func (c *FacetsCache) setLocal(facetsBytes []byte) {
	if err := c.local.Set([]byte(facetsCacheKey), facetsBytes, int(c.ttl.Seconds())); err != nil {
		log.Errorf("set facets in local cache: %s", err)
	}
}

func (c *FacetsCache) countHit(level string) {
	if c.metricsManager == nil {
		return
	}
	c.metricsManager.CounterFacetsCache.WithLabelValues(level).Inc()
}
