// Package entities holds the records owned by the roster registries
package entities

import (
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Equipment slot names written by enhancements. Slots are free-form strings;
// these are the two the facade knows about.
const (
	SlotWeapon = "Weapon"
	SlotArmor  = "Armor"
)

// EntityTypeCharacter is the core.Entity type for character records
const EntityTypeCharacter = "character"

// Class identifies the archetype a character was created from
type Class string

// Supported classes
const (
	ClassWarrior Class = "warrior"
	ClassMage    Class = "mage"
	ClassArcher  Class = "archer"
)

// DisplayName returns the capitalized class name used in descriptions
func (c Class) DisplayName() string {
	switch c {
	case ClassWarrior:
		return "Warrior"
	case ClassMage:
		return "Mage"
	case ClassArcher:
		return "Archer"
	default:
		return string(c)
	}
}

// ParseClass accepts a class name (any case) or its menu number
func ParseClass(s string) (Class, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "warrior", "1":
		return ClassWarrior, true
	case "mage", "2":
		return ClassMage, true
	case "archer", "3":
		return ClassArcher, true
	default:
		return "", false
	}
}

// Character is the base record for a game character.
// Health and Strength are base values; enhancement bonuses are applied only
// when a view is built, never written back here.
type Character struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Class       Class             `json:"class"`
	Level       int               `json:"level"`
	Health      int               `json:"health"`
	Strength    int               `json:"strength"`
	Equipment   map[string]string `json:"equipment"`
	Enhancement Enhancement       `json:"enhancement"`
	CreatedAt   int64             `json:"created_at"`
}

// GetID implements core.Entity
func (c *Character) GetID() string {
	return c.ID
}

// GetType implements core.Entity
func (c *Character) GetType() string {
	return EntityTypeCharacter
}

// Enhancement records which decorators to apply on the next view build.
// A kind is active only when both its name and bonus are set.
type Enhancement struct {
	WeaponName    *string `json:"weapon_name,omitempty"`
	StrengthBonus *int    `json:"strength_bonus,omitempty"`
	ArmorName     *string `json:"armor_name,omitempty"`
	HealthBonus   *int    `json:"health_bonus,omitempty"`
}

// HasWeapon reports whether a weapon enhancement is active
func (e Enhancement) HasWeapon() bool {
	return e.WeaponName != nil && *e.WeaponName != "" && e.StrengthBonus != nil
}

// HasArmor reports whether an armor enhancement is active
func (e Enhancement) HasArmor() bool {
	return e.ArmorName != nil && *e.ArmorName != "" && e.HealthBonus != nil
}

// HasEnhancements reports whether any enhancement is active
func (e Enhancement) HasEnhancements() bool {
	return e.HasWeapon() || e.HasArmor()
}

// Clone returns a deep copy so stored records and callers never share maps or pointers
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}

	out := *c
	if c.Equipment != nil {
		out.Equipment = make(map[string]string, len(c.Equipment))
		for slot, item := range c.Equipment {
			out.Equipment[slot] = item
		}
	}
	out.Enhancement = Enhancement{
		WeaponName:    clonePtr(c.Enhancement.WeaponName),
		StrengthBonus: clonePtr(c.Enhancement.StrengthBonus),
		ArmorName:     clonePtr(c.Enhancement.ArmorName),
		HealthBonus:   clonePtr(c.Enhancement.HealthBonus),
	}
	return &out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Compile-time check that records can be used as event sources
var (
	_ core.Entity = (*Character)(nil)
	_ core.Entity = (*Party)(nil)
)
