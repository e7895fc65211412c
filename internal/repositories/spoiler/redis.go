package spoiler

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/zone-rando/internal/entities"
	"github.com/KirkDiggler/zone-rando/internal/errors"
	redisclient "github.com/KirkDiggler/zone-rando/internal/redis"
)

const (
	// Key patterns: spoiler:{id} and spoiler_seed:{seed}
	spoilerKeyPrefix = "spoiler:"
	seedIndexPrefix  = "spoiler_seed:"

	errSpoilerNil = "spoiler cannot be nil"
	errIDEmpty    = "spoiler ID cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	// TTL expires records after the given duration. Zero keeps them forever.
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis repository for spoilers
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		ttl:    cfg.TTL,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Create stores a new spoiler and indexes it by seed
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Spoiler == nil {
		return nil, errors.InvalidArgument(errSpoilerNil)
	}
	if input.Spoiler.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	key := spoilerKey(input.Spoiler.ID)
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("spoiler with ID %s already exists", input.Spoiler.ID)
	}

	data, err := json.Marshal(input.Spoiler)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal spoiler")
	}

	indexKey := seedIndexKey(input.Spoiler.Seed)
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, r.ttl)
	pipe.SAdd(ctx, indexKey, input.Spoiler.ID)
	if r.ttl > 0 {
		pipe.Expire(ctx, indexKey, r.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create spoiler")
	}

	return &CreateOutput{Spoiler: input.Spoiler.Clone()}, nil
}

// Get retrieves a spoiler by id
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	s, err := r.get(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Spoiler: s}, nil
}

// ListBySeed returns every spoiler recorded for a seed. Index entries whose
// record expired are skipped.
func (r *redisRepository) ListBySeed(ctx context.Context, input ListBySeedInput) (*ListBySeedOutput, error) {
	indexKey := seedIndexKey(input.Seed)
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get spoilers from index %s", indexKey)
	}
	sort.Strings(ids)

	out := &ListBySeedOutput{Spoilers: make([]*entities.Spoiler, 0, len(ids))}
	for _, id := range ids {
		s, err := r.get(ctx, id)
		if err != nil {
			if errors.IsNotFound(err) {
				continue
			}
			return nil, errors.Wrapf(err, "failed to get spoiler %s", id)
		}
		out.Spoilers = append(out.Spoilers, s)
	}
	return out, nil
}

// Delete removes a spoiler and its index entry
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	s, err := r.get(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, spoilerKey(input.ID))
	pipe.SRem(ctx, seedIndexKey(s.Seed), input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete spoiler")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) get(ctx context.Context, id string) (*entities.Spoiler, error) {
	data, err := r.client.Get(ctx, spoilerKey(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("spoiler with ID %s not found", id)
		}
		return nil, errors.Wrapf(err, "failed to get spoiler")
	}

	var s entities.Spoiler
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal spoiler")
	}
	return &s, nil
}

func spoilerKey(id string) string {
	return spoilerKeyPrefix + id
}

func seedIndexKey(seed int64) string {
	return fmt.Sprintf("%s%d", seedIndexPrefix, seed)
}
