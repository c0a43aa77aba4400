package character

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/KirkDiggler/rpg-party/internal/errors"
	"github.com/KirkDiggler/rpg-party/internal/entities"
	redisclient "github.com/KirkDiggler/rpg-party/internal/redis"
)

// Redis key layout: records live under RedisKeyPrefix+<id>, RedisIndexKey is
// a list of IDs in creation order.
const (
	RedisKeyPrefix = "character:"
	RedisIndexKey  = "character:index"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis character repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed character repository. Records are
// stored as JSON under character:<id>; character:index keeps creation order.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateRecord(input.Character); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Character)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character data")
	}

	created, err := redisclient.CreateIndexed(ctx, r.client, RedisKeyPrefix+input.Character.ID, RedisIndexKey, data, input.Character.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create character")
	}
	if !created {
		return nil, errors.AlreadyExistsf("character with ID %s already exists", input.Character.ID)
	}

	slog.DebugContext(ctx, "character created", "character_id", input.Character.ID)

	return &CreateOutput{Character: input.Character.Clone()}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	result, err := r.client.Get(ctx, RedisKeyPrefix+input.ID).Result()
	if err != nil {
		if redisclient.IsNil(err) {
			return nil, errors.NotFoundf("character with ID %s not found", input.ID).
				WithMeta("character_id", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get character")
	}

	var record entities.Character
	if err := json.Unmarshal([]byte(result), &record); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal character data")
	}

	return &GetOutput{Character: &record}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateRecord(input.Character); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Character)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character data")
	}

	// SET XX skips missing keys; !ok means the record does not exist.
	ok, err := r.client.SetXX(ctx, RedisKeyPrefix+input.Character.ID, data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update character")
	}
	if !ok {
		return nil, errors.NotFoundf("character with ID %s not found", input.Character.ID).
			WithMeta("character_id", input.Character.ID)
	}

	return &UpdateOutput{Character: input.Character.Clone()}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.LRange(ctx, RedisIndexKey, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read character index")
	}
	if len(ids) == 0 {
		return &ListOutput{Characters: []*entities.Character{}}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = RedisKeyPrefix + id
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load characters")
	}

	characters := make([]*entities.Character, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			slog.WarnContext(ctx, "indexed character missing, skipping",
				"character_id", ids[i])
			continue
		}

		var record entities.Character
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal character %s", ids[i])
		}
		characters = append(characters, &record)
	}

	return &ListOutput{Characters: characters}, nil
}
