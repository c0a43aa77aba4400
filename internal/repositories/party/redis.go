package party

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/KirkDiggler/rpg-party/internal/entities"
	"github.com/KirkDiggler/rpg-party/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-party/internal/redis"
)

// Redis key layout: records live under RedisKeyPrefix+<id>, RedisIndexKey is
// a list of IDs in creation order.
const (
	RedisKeyPrefix = "party:"
	RedisIndexKey  = "party:index"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis party repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if cfg == nil {
		vb.RequiredField("config")
		return vb.Build()
	}
	if cfg.Client == nil {
		vb.RequiredField("Client")
	}
	return vb.Build()
}

// NewRedis creates a new Redis-backed party repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateRecord(input.Party); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Party)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal party data")
	}

	created, err := redisclient.CreateIndexed(ctx, r.client, RedisKeyPrefix+input.Party.ID, RedisIndexKey, data, input.Party.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create party")
	}
	if !created {
		return nil, errors.AlreadyExistsf("party with ID %s already exists", input.Party.ID)
	}

	slog.DebugContext(ctx, "party created", "party_id", input.Party.ID, "name", input.Party.Name)

	return &CreateOutput{Party: input.Party.Clone()}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errPartyIDEmpty)
	}

	result, err := r.client.Get(ctx, RedisKeyPrefix+input.ID).Result()
	if err != nil {
		if redisclient.IsNil(err) {
			return nil, notFound(input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get party")
	}

	var record entities.Party
	if err := json.Unmarshal([]byte(result), &record); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal party data")
	}

	return &GetOutput{Party: &record}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateRecord(input.Party); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Party)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal party data")
	}

	ok, err := r.client.SetXX(ctx, RedisKeyPrefix+input.Party.ID, data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update party")
	}
	if !ok {
		return nil, notFound(input.Party.ID)
	}

	return &UpdateOutput{Party: input.Party.Clone()}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.LRange(ctx, RedisIndexKey, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read party index")
	}

	parties := make([]*entities.Party, 0, len(ids))
	for _, id := range ids {
		out, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "indexed party missing, skipping", "party_id", id)
				continue
			}
			return nil, err
		}
		parties = append(parties, out.Party)
	}

	return &ListOutput{Parties: parties}, nil
}
