package character

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-party/internal/entities"
	"github.com/KirkDiggler/rpg-party/internal/errors"
)

// InMemoryRepository implements Repository in process memory. It stores and
// returns copies so callers never share a record with the registry.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*entities.Character
	order []string
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*entities.Character),
	}
}

// Create stores a character
func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateRecord(input.Character); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Character.ID]; exists {
		return nil, errors.AlreadyExistsf("character with ID %s already exists", input.Character.ID)
	}

	r.store[input.Character.ID] = input.Character.Clone()
	r.order = append(r.order, input.Character.ID)

	return &CreateOutput{Character: input.Character.Clone()}, nil
}

// Get retrieves a character by ID
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.store[input.ID]
	if !exists {
		return nil, errors.NotFoundf("character with ID %s not found", input.ID).
			WithMeta("character_id", input.ID)
	}

	return &GetOutput{Character: record.Clone()}, nil
}

// Update replaces a stored character
func (r *InMemoryRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateRecord(input.Character); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Character.ID]; !exists {
		return nil, errors.NotFoundf("character with ID %s not found", input.Character.ID).
			WithMeta("character_id", input.Character.ID)
	}

	r.store[input.Character.ID] = input.Character.Clone()

	return &UpdateOutput{Character: input.Character.Clone()}, nil
}

// List returns every character in creation order
func (r *InMemoryRepository) List(_ context.Context, _ ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	characters := make([]*entities.Character, 0, len(r.order))
	for _, id := range r.order {
		characters = append(characters, r.store[id].Clone())
	}

	return &ListOutput{Characters: characters}, nil
}
