package roster

//go:generate mockgen -destination=mock/mock_service.go -package=rostermock github.com/KirkDiggler/rpg-party/internal/orchestrators/roster Service

import (
	"context"
)

// Service manages character and party records and builds their views
type Service interface {
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error)
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	EnhanceCharacter(ctx context.Context, input *EnhanceCharacterInput) (*EnhanceCharacterOutput, error)
	GetCharacterView(ctx context.Context, input *GetCharacterViewInput) (*GetCharacterViewOutput, error)

	CreateParty(ctx context.Context, input *CreatePartyInput) (*CreatePartyOutput, error)
	AddPartyMember(ctx context.Context, input *AddPartyMemberInput) (*AddPartyMemberOutput, error)
	RemovePartyMember(ctx context.Context, input *RemovePartyMemberInput) (*RemovePartyMemberOutput, error)
	ListParties(ctx context.Context, input *ListPartiesInput) (*ListPartiesOutput, error)
	GetPartyView(ctx context.Context, input *GetPartyViewInput) (*GetPartyViewOutput, error)

	Undo(ctx context.Context, input *UndoInput) (*UndoOutput, error)
	Redo(ctx context.Context, input *RedoInput) (*RedoOutput, error)
	Attack(ctx context.Context, input *AttackInput) (*AttackOutput, error)
}
