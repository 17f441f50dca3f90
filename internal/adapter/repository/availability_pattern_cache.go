package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/johnquangdev/meeting-scheduler/internal/domain/entities"
	"github.com/johnquangdev/meeting-scheduler/internal/domain/repositories"
)

// patternNotFoundMarker caches "no pattern" lookups so repeated scheduling
// calls for the same participants skip the database either way.
const patternNotFoundMarker = "__none__"

// patternCache is the slice of the redis client the cache layer needs.
// *redis.Client satisfies it.
type patternCache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// CachedAvailabilityPatternRepository is a read-through redis cache in front
// of the availability pattern store. Patterns change rarely and are read on
// every scheduling call for every registered participant.
type CachedAvailabilityPatternRepository struct {
	inner repositories.AvailabilityPatternRepository
	redis patternCache
	ttl   time.Duration
}

// NewCachedAvailabilityPatternRepository wraps a pattern repository with a
// redis cache
func NewCachedAvailabilityPatternRepository(
	inner repositories.AvailabilityPatternRepository,
	redisClient patternCache,
	ttl time.Duration,
) *CachedAvailabilityPatternRepository {
	return &CachedAvailabilityPatternRepository{
		inner: inner,
		redis: redisClient,
		ttl:   ttl,
	}
}

// FindByUserID returns a cached pattern when present, otherwise falls through
// to the store and populates the cache. Cache failures degrade to the store;
// they are never fatal.
func (r *CachedAvailabilityPatternRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entities.AvailabilityPattern, error) {
	key := r.cacheKey(userID)

	if raw, err := r.redis.Get(ctx, key).Result(); err == nil {
		if raw == patternNotFoundMarker {
			return nil, entities.ErrPatternNotFound
		}
		var pattern entities.AvailabilityPattern
		if err := json.Unmarshal([]byte(raw), &pattern); err == nil {
			return &pattern, nil
		}
		// fall through on corrupt cache entries
	}

	pattern, err := r.inner.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, entities.ErrPatternNotFound) {
			r.redis.Set(ctx, key, patternNotFoundMarker, r.ttl)
		}
		return nil, err
	}

	if raw, err := json.Marshal(pattern); err == nil {
		r.redis.Set(ctx, key, string(raw), r.ttl)
	}
	return pattern, nil
}

// Upsert writes through to the store and invalidates the cache entry
func (r *CachedAvailabilityPatternRepository) Upsert(ctx context.Context, pattern *entities.AvailabilityPattern) error {
	if err := r.inner.Upsert(ctx, pattern); err != nil {
		return err
	}
	r.redis.Del(ctx, r.cacheKey(pattern.UserID))
	return nil
}

func (r *CachedAvailabilityPatternRepository) cacheKey(userID uuid.UUID) string {
	return fmt.Sprintf("scheduler:pattern:%s", userID)
}
