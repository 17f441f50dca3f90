package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/johnquangdev/meeting-scheduler/internal/domain/entities"
)

type fakePatternCache struct {
	values map[string]string
}

func newFakePatternCache() *fakePatternCache {
	return &fakePatternCache{values: make(map[string]string)}
}

func (f *fakePatternCache) Get(ctx context.Context, key string) *redis.StringCmd {
	if v, ok := f.values[key]; ok {
		return redis.NewStringResult(v, nil)
	}
	return redis.NewStringResult("", redis.Nil)
}

func (f *fakePatternCache) Set(ctx context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case string:
		f.values[key] = v
	case []byte:
		f.values[key] = string(v)
	}
	return redis.NewStatusResult("OK", nil)
}

func (f *fakePatternCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := f.values[k]; ok {
			delete(f.values, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

type fakePatternStore struct {
	patterns map[uuid.UUID]*entities.AvailabilityPattern
	finds    int
}

func newFakePatternStore() *fakePatternStore {
	return &fakePatternStore{patterns: make(map[uuid.UUID]*entities.AvailabilityPattern)}
}

func (f *fakePatternStore) FindByUserID(ctx context.Context, userID uuid.UUID) (*entities.AvailabilityPattern, error) {
	f.finds++
	pattern, ok := f.patterns[userID]
	if !ok {
		return nil, entities.ErrPatternNotFound
	}
	return pattern, nil
}

func (f *fakePatternStore) Upsert(ctx context.Context, pattern *entities.AvailabilityPattern) error {
	f.patterns[pattern.UserID] = pattern
	return nil
}

func TestCachedPatternRepository_ReadThrough(t *testing.T) {
	store := newFakePatternStore()
	userID := uuid.New()
	store.patterns[userID] = &entities.AvailabilityPattern{
		ID:        uuid.New(),
		UserID:    userID,
		WorkStart: "09:00",
		WorkEnd:   "17:00",
	}
	repo := NewCachedAvailabilityPatternRepository(store, newFakePatternCache(), time.Minute)
	ctx := context.Background()

	first, err := repo.FindByUserID(ctx, userID)
	if err != nil {
		t.Fatalf("first find: %v", err)
	}
	second, err := repo.FindByUserID(ctx, userID)
	if err != nil {
		t.Fatalf("second find: %v", err)
	}
	if second.WorkStart != first.WorkStart || second.WorkEnd != first.WorkEnd {
		t.Fatalf("cached pattern differs: %+v vs %+v", second, first)
	}
	if store.finds != 1 {
		t.Fatalf("store finds = %d, want 1 (second read should be cached)", store.finds)
	}
}

func TestCachedPatternRepository_CachesNotFound(t *testing.T) {
	store := newFakePatternStore()
	repo := NewCachedAvailabilityPatternRepository(store, newFakePatternCache(), time.Minute)
	ctx := context.Background()
	userID := uuid.New()

	for i := 0; i < 2; i++ {
		if _, err := repo.FindByUserID(ctx, userID); !errors.Is(err, entities.ErrPatternNotFound) {
			t.Fatalf("find %d: err = %v, want ErrPatternNotFound", i, err)
		}
	}
	if store.finds != 1 {
		t.Fatalf("store finds = %d, want 1 (miss should be cached)", store.finds)
	}
}

func TestCachedPatternRepository_UpsertInvalidates(t *testing.T) {
	store := newFakePatternStore()
	userID := uuid.New()
	store.patterns[userID] = &entities.AvailabilityPattern{
		ID:        uuid.New(),
		UserID:    userID,
		WorkStart: "09:00",
		WorkEnd:   "17:00",
	}
	repo := NewCachedAvailabilityPatternRepository(store, newFakePatternCache(), time.Minute)
	ctx := context.Background()

	if _, err := repo.FindByUserID(ctx, userID); err != nil {
		t.Fatalf("warm-up find: %v", err)
	}

	updated := &entities.AvailabilityPattern{
		ID:        uuid.New(),
		UserID:    userID,
		WorkStart: "08:00",
		WorkEnd:   "16:00",
	}
	if err := repo.Upsert(ctx, updated); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := repo.FindByUserID(ctx, userID)
	if err != nil {
		t.Fatalf("find after upsert: %v", err)
	}
	if got.WorkStart != "08:00" || got.WorkEnd != "16:00" {
		t.Fatalf("stale pattern served after upsert: %+v", got)
	}
	if store.finds != 2 {
		t.Fatalf("store finds = %d, want 2 (upsert should evict the cache entry)", store.finds)
	}
}
