package drafts

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/incorpora/onboarding-api/internal/domain/onboarding"
	apperr "github.com/incorpora/onboarding-api/internal/errors"
)

const (
	draftKeyPrefix = "onboarding:draft:"

	// Drafts live as long as a browser session reasonably can.
	defaultDraftTTL = 24 * time.Hour
)

// RedisRepoConfig holds configuration for the Redis draft repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
	TTL    time.Duration
}

type redisRepository struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisRepository creates a Redis-backed draft repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg.Client == nil {
		panic("redis client is required")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultDraftTTL
	}

	return &redisRepository{
		client: cfg.Client,
		ttl:    ttl,
	}
}

func draftKey(id string) string {
	return draftKeyPrefix + id
}

func (r *redisRepository) Get(ctx context.Context, id string) (*onboarding.Draft, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("draft ID is required")
	}

	data, err := r.client.Get(ctx, draftKey(id)).Result()
	if err == redis.Nil {
		return nil, apperr.NotFoundf("draft '%s' not found", id).
			WithMeta("draft_id", id)
	}
	if err != nil {
		return nil, apperr.Persistence(err, "failed to read draft from Redis")
	}

	var draft onboarding.Draft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, apperr.Persistence(err, fmt.Sprintf("failed to deserialize draft '%s'", id))
	}

	return &draft, nil
}

func (r *redisRepository) Save(ctx context.Context, draft *onboarding.Draft) error {
	if draft == nil {
		return apperr.InvalidArgument("draft cannot be nil")
	}
	if draft.ID == "" {
		return apperr.InvalidArgument("draft ID is required")
	}

	draft.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(draft)
	if err != nil {
		return apperr.Persistence(err, "failed to serialize draft")
	}

	// Every save refreshes the TTL; an active session never expires
	// under the user.
	if err := r.client.Set(ctx, draftKey(draft.ID), string(data), r.ttl).Err(); err != nil {
		return apperr.Persistence(err, "failed to write draft to Redis")
	}

	return nil
}

func (r *redisRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperr.InvalidArgument("draft ID is required")
	}

	if err := r.client.Del(ctx, draftKey(id)).Err(); err != nil {
		return apperr.Persistence(err, "failed to delete draft from Redis")
	}

	return nil
}
