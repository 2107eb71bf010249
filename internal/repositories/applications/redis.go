package applications

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	apperr "github.com/incorpora/onboarding-api/internal/errors"
	"github.com/incorpora/onboarding-api/internal/uuid"
)

const (
	applicationKeyPrefix = "application:"
	leadEmailKeyPrefix   = "application:lead_email:"
)

// RedisRepoConfig holds configuration for the Redis application repository
type RedisRepoConfig struct {
	Client        redis.UniversalClient
	UUIDGenerator uuid.Generator
}

type redisRepository struct {
	client        redis.UniversalClient
	uuidGenerator uuid.Generator
}

// NewRedisRepository creates a Redis-backed application repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg.Client == nil {
		panic("redis client is required")
	}

	generator := cfg.UUIDGenerator
	if generator == nil {
		generator = uuid.NewGoogleUUIDGenerator()
	}

	return &redisRepository{
		client:        cfg.Client,
		uuidGenerator: generator,
	}
}

func applicationKey(id string) string {
	return applicationKeyPrefix + id
}

func leadEmailKey(email string) string {
	return leadEmailKeyPrefix + email
}

func (r *redisRepository) Create(ctx context.Context, app *Application) (*Application, error) {
	if app == nil {
		return nil, apperr.InvalidArgument("application cannot be nil")
	}
	if app.Email == "" {
		return nil, apperr.InvalidArgument("application email is required")
	}

	if app.ID == "" {
		app.ID = r.uuidGenerator.New()
	}
	now := time.Now().UTC()
	app.CreatedAt = now
	app.UpdatedAt = now

	data, err := json.Marshal(app)
	if err != nil {
		return nil, apperr.Persistence(err, "failed to serialize application")
	}

	// Records are durable; no TTL. The lead email index lets finalize
	// find a previously saved lead without a record id.
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, applicationKey(app.ID), string(data), 0)
	if app.Status == StatusLead {
		pipe.Set(ctx, leadEmailKey(app.Email), app.ID, 0)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, apperr.Persistence(err, "failed to write application to Redis")
	}

	return app, nil
}

func (r *redisRepository) Get(ctx context.Context, id string) (*Application, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("application ID is required")
	}

	data, err := r.client.Get(ctx, applicationKey(id)).Result()
	if err == redis.Nil {
		return nil, apperr.NotFoundf("application '%s' not found", id).
			WithMeta("application_id", id)
	}
	if err != nil {
		return nil, apperr.Persistence(err, "failed to read application from Redis")
	}

	var app Application
	if err := json.Unmarshal([]byte(data), &app); err != nil {
		return nil, apperr.Persistence(err, "failed to deserialize application")
	}

	return &app, nil
}

func (r *redisRepository) Update(ctx context.Context, app *Application) (*Application, error) {
	if app == nil {
		return nil, apperr.InvalidArgument("application cannot be nil")
	}
	if app.ID == "" {
		return nil, apperr.InvalidArgument("application ID is required")
	}

	existing, err := r.Get(ctx, app.ID)
	if err != nil {
		return nil, err
	}

	app.CreatedAt = existing.CreatedAt
	app.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(app)
	if err != nil {
		return nil, apperr.Persistence(err, "failed to serialize application")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, applicationKey(app.ID), string(data), 0)
	switch app.Status {
	case StatusLead:
		pipe.Set(ctx, leadEmailKey(app.Email), app.ID, 0)
	case StatusCompleted:
		// A completed application is no longer a lead match target.
		pipe.Del(ctx, leadEmailKey(app.Email))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, apperr.Persistence(err, "failed to update application in Redis")
	}

	return app, nil
}

func (r *redisRepository) GetLeadByEmail(ctx context.Context, email string) (*Application, error) {
	if email == "" {
		return nil, apperr.InvalidArgument("email is required")
	}

	id, err := r.client.Get(ctx, leadEmailKey(email)).Result()
	if err == redis.Nil {
		return nil, apperr.NotFoundf("no lead found for email '%s'", email)
	}
	if err != nil {
		return nil, apperr.Persistence(err, "failed to read lead index from Redis")
	}

	app, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if app.Status != StatusLead {
		return nil, apperr.NotFoundf("no lead found for email '%s'", email)
	}

	return app, nil
}
