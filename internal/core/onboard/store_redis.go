package onboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/artistly/internal/platform/apperr"
	"github.com/taibuivan/artistly/internal/platform/constants"
)

// RedisStore keeps drafts as JSON strings under [constants.RedisPrefixDraft].
type RedisStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRedisStore(client redis.UniversalClient, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// DraftKey is the Redis key holding the draft with the given id.
func DraftKey(id string) string {
	return constants.RedisPrefixDraft + id
}

func (store *RedisStore) Get(ctx context.Context, id string) (Draft, error) {
	raw, err := store.client.Get(ctx, DraftKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return Draft{}, apperr.NotFound("Draft")
	}
	if err != nil {
		return Draft{}, fmt.Errorf("onboard: get draft %s: %w", id, err)
	}

	var draft Draft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		return Draft{}, fmt.Errorf("onboard: decode draft %s: %w", id, err)
	}
	return draft, nil
}

func (store *RedisStore) Save(ctx context.Context, draft Draft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("onboard: encode draft %s: %w", draft.ID, err)
	}

	if err := store.client.Set(ctx, DraftKey(draft.ID), string(payload), store.ttl).Err(); err != nil {
		return fmt.Errorf("onboard: save draft %s: %w", draft.ID, err)
	}
	return nil
}

func (store *RedisStore) Delete(ctx context.Context, id string) error {
	if err := store.client.Del(ctx, DraftKey(id)).Err(); err != nil {
		return fmt.Errorf("onboard: delete draft %s: %w", id, err)
	}
	return nil
}
