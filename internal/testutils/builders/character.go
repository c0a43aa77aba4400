// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-party/internal/entities"
)

// CharacterBuilder provides a fluent interface for building test Character records
type CharacterBuilder struct {
	character *entities.Character
}

// NewCharacterBuilder creates a level 1 warrior with fixed stats and no equipment
func NewCharacterBuilder() *CharacterBuilder {
	return &CharacterBuilder{
		character: &entities.Character{
			ID:        "char-test-123",
			Name:      "Test Hero",
			Class:     entities.ClassWarrior,
			Level:     1,
			Health:    100,
			Strength:  15,
			Equipment: map[string]string{},
			CreatedAt: 1700000000,
		},
	}
}

// WithID sets the character ID
func (b *CharacterBuilder) WithID(id string) *CharacterBuilder {
	b.character.ID = id
	return b
}

// WithName sets the character name
func (b *CharacterBuilder) WithName(name string) *CharacterBuilder {
	b.character.Name = name
	return b
}

// WithClass sets the character class
func (b *CharacterBuilder) WithClass(class entities.Class) *CharacterBuilder {
	b.character.Class = class
	return b
}

// WithLevel sets the character level
func (b *CharacterBuilder) WithLevel(level int) *CharacterBuilder {
	b.character.Level = level
	return b
}

// WithStats sets base health and strength
func (b *CharacterBuilder) WithStats(health, strength int) *CharacterBuilder {
	b.character.Health = health
	b.character.Strength = strength
	return b
}

// WithEquipment puts item in slot
func (b *CharacterBuilder) WithEquipment(slot, item string) *CharacterBuilder {
	b.character.Equipment[slot] = item
	return b
}

// WithWeapon stores weapon enhancement metadata without touching equipment
func (b *CharacterBuilder) WithWeapon(name string, strengthBonus int) *CharacterBuilder {
	b.character.Enhancement.WeaponName = &name
	b.character.Enhancement.StrengthBonus = &strengthBonus
	return b
}

// WithArmor stores armor enhancement metadata without touching equipment
func (b *CharacterBuilder) WithArmor(name string, healthBonus int) *CharacterBuilder {
	b.character.Enhancement.ArmorName = &name
	b.character.Enhancement.HealthBonus = &healthBonus
	return b
}

// Build returns the built character
func (b *CharacterBuilder) Build() *entities.Character {
	return b.character
}

// PartyBuilder builds stored party definitions for tests
type PartyBuilder struct {
	party *entities.Party
}

// NewPartyBuilder creates an empty party record
func NewPartyBuilder() *PartyBuilder {
	return &PartyBuilder{
		party: &entities.Party{
			ID:        "party-test-123",
			Name:      "Test Party",
			CreatedAt: 1700000000,
		},
	}
}

// WithID sets the party ID
func (b *PartyBuilder) WithID(id string) *PartyBuilder {
	b.party.ID = id
	return b
}

// WithName sets the party name
func (b *PartyBuilder) WithName(name string) *PartyBuilder {
	b.party.Name = name
	return b
}

// WithCharacter appends a character member reference
func (b *PartyBuilder) WithCharacter(id string) *PartyBuilder {
	b.party.Members = append(b.party.Members, entities.PartyMember{Kind: entities.MemberKindCharacter, ID: id})
	return b
}

// WithSubParty appends a nested party member reference
func (b *PartyBuilder) WithSubParty(id string) *PartyBuilder {
	b.party.Members = append(b.party.Members, entities.PartyMember{Kind: entities.MemberKindParty, ID: id})
	return b
}

// Build returns the built party
func (b *PartyBuilder) Build() *entities.Party {
	return b.party
}
