package roster

import (
	"github.com/KirkDiggler/rpg-party/internal/composition"
	"github.com/KirkDiggler/rpg-party/internal/entities"
)

// Event types published on the event bus
const (
	EventCharacterCreated   = "character.created"
	EventCharacterEnhanced  = "character.enhanced"
	EventPartyCreated       = "party.created"
	EventPartyMemberAdded   = "party.member_added"
	EventPartyMemberRemoved = "party.member_removed"
	EventCharacterAttacked  = "character.attacked"
	EventChangeUndone       = "roster.change_undone"
	EventChangeRedone       = "roster.change_redone"
)

// Level bounds accepted at character creation
const (
	MinLevel = 1
	MaxLevel = 100
)

// CreateCharacterInput defines the request for creating a character
type CreateCharacterInput struct {
	Class     entities.Class
	Name      string
	Level     int
	Equipment map[string]string
}

// CreateCharacterOutput defines the response for creating a character
type CreateCharacterOutput struct {
	Character *entities.Character
}

// GetCharacterInput defines the request for loading a character record
type GetCharacterInput struct {
	CharacterID string
}

// GetCharacterOutput defines the response for loading a character record
type GetCharacterOutput struct {
	Character *entities.Character
}

// ListCharactersInput defines the request for listing characters
type ListCharactersInput struct{}

// ListCharactersOutput defines the response for listing characters
type ListCharactersOutput struct {
	Characters []*entities.Character
}

// EnhanceCharacterInput defines the request for enhancing a character
type EnhanceCharacterInput struct {
	CharacterID string
	Enhancement composition.EnhancementRequest
}

// EnhanceCharacterOutput defines the response for enhancing a character.
// Applied is zero when the request named only halves of an enhancement.
type EnhanceCharacterOutput struct {
	Character *entities.Character
	Applied   composition.Applied
	View      composition.Component
}

// GetCharacterViewInput defines the request for a decorated character view
type GetCharacterViewInput struct {
	CharacterID string
}

// GetCharacterViewOutput defines the response for a decorated character view
type GetCharacterViewOutput struct {
	View composition.Component
}

// CreatePartyInput defines the request for creating a party
type CreatePartyInput struct {
	Name string
}

// CreatePartyOutput defines the response for creating a party
type CreatePartyOutput struct {
	Party *entities.Party
}

// AddPartyMemberInput defines the request for appending a member to a party
type AddPartyMemberInput struct {
	PartyID string
	Member  entities.PartyMember
}

// AddPartyMemberOutput defines the response for appending a member
type AddPartyMemberOutput struct {
	Party *entities.Party
}

// RemovePartyMemberInput defines the request for removing a member
type RemovePartyMemberInput struct {
	PartyID string
	Member  entities.PartyMember
}

// RemovePartyMemberOutput defines the response for removing a member
type RemovePartyMemberOutput struct {
	Party   *entities.Party
	Removed bool
}

// ListPartiesInput defines the request for listing parties
type ListPartiesInput struct{}

// ListPartiesOutput defines the response for listing parties
type ListPartiesOutput struct {
	Parties []*entities.Party
}

// GetPartyViewInput defines the request for a resolved party view
type GetPartyViewInput struct {
	PartyID string
}

// GetPartyViewOutput defines the response for a resolved party view
type GetPartyViewOutput struct {
	View *composition.Party
}

// UndoInput defines the request for reverting the last change
type UndoInput struct{}

// UndoOutput defines the response for an undo. Undone is false when there
// was nothing to revert.
type UndoOutput struct {
	Undone      bool
	Description string
}

// RedoInput defines the request for replaying the last undone change
type RedoInput struct{}

// RedoOutput defines the response for a redo. Redone is false when there
// was nothing to replay.
type RedoOutput struct {
	Redone      bool
	Description string
}

// AttackInput defines the request for scoring an attack. An empty Strategy
// is balanced.
type AttackInput struct {
	AttackerID string
	TargetID   string
	Strategy   string
}

// AttackOutput defines the result of an attack
type AttackOutput struct {
	Attacker           *entities.Character
	Target             *entities.Character
	Strategy           string
	Damage             int
	Critical           bool
	TargetHealthBefore int
	TargetHealthAfter  int
}
