package party

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-party/internal/entities"
	"github.com/KirkDiggler/rpg-party/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*entities.Party
	order []string
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*entities.Party),
	}
}

// Create stores a party
func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateRecord(input.Party); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Party.ID]; exists {
		return nil, errors.AlreadyExistsf("party with ID %s already exists", input.Party.ID)
	}

	r.store[input.Party.ID] = input.Party.Clone()
	r.order = append(r.order, input.Party.ID)

	return &CreateOutput{Party: input.Party.Clone()}, nil
}

// Get retrieves a party by ID
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errPartyIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	record, exists := r.store[input.ID]
	if !exists {
		return nil, notFound(input.ID)
	}

	return &GetOutput{Party: record.Clone()}, nil
}

// Update replaces a stored party
func (r *InMemoryRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateRecord(input.Party); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Party.ID]; !exists {
		return nil, notFound(input.Party.ID)
	}

	r.store[input.Party.ID] = input.Party.Clone()

	return &UpdateOutput{Party: input.Party.Clone()}, nil
}

// List returns every party in creation order
func (r *InMemoryRepository) List(_ context.Context, _ ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	parties := make([]*entities.Party, 0, len(r.order))
	for _, id := range r.order {
		parties = append(parties, r.store[id].Clone())
	}

	return &ListOutput{Parties: parties}, nil
}
