// Package party provides the registry of stored party definitions
package party

//go:generate mockgen -destination=mock/mock_repository.go -package=partymock github.com/KirkDiggler/rpg-party/internal/repositories/party Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-party/internal/entities"
	"github.com/KirkDiggler/rpg-party/internal/errors"
)

// Repository defines the interface for party persistence.
// It stores member references only; it does not check that they resolve or
// that the party graph is acyclic.
type Repository interface {
	// Create stores a new party
	// Returns errors.AlreadyExists if a party with the same ID exists
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a party by ID
	// Returns errors.NotFound if the party doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces a stored party
	// Returns errors.NotFound if the party doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// List returns every party in creation order
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for creating a party
type CreateInput struct {
	Party *entities.Party
}

// CreateOutput defines the output for creating a party
type CreateOutput struct {
	Party *entities.Party
}

// GetInput defines the input for getting a party
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a party
type GetOutput struct {
	Party *entities.Party
}

// UpdateInput defines the input for updating a party
type UpdateInput struct {
	Party *entities.Party
}

// UpdateOutput defines the output for updating a party
type UpdateOutput struct {
	Party *entities.Party
}

// ListInput defines the input for listing parties
type ListInput struct{}

// ListOutput defines the output for listing parties
type ListOutput struct {
	Parties []*entities.Party
}

const (
	errPartyNil     = "party cannot be nil"
	errPartyIDEmpty = "party ID cannot be empty"
)

func validateRecord(p *entities.Party) error {
	if p == nil {
		return errors.InvalidArgument(errPartyNil)
	}
	if p.ID == "" {
		return errors.InvalidArgument(errPartyIDEmpty)
	}
	return nil
}

func notFound(id string) error {
	return errors.NotFoundf("party with ID %s not found", id).WithMeta("party_id", id)
}
