package composition

import (
	"fmt"

	"github.com/KirkDiggler/rpg-party/internal/entities"
)

// characterAdapter is the leaf of every tree. It reads the record on each
// call and never writes to it.
type characterAdapter struct {
	record *entities.Character
}

func newCharacterAdapter(record *entities.Character) *characterAdapter {
	return &characterAdapter{record: record}
}

func (a *characterAdapter) Description() string {
	return fmt.Sprintf("%s (%s) - Level %d", a.record.Name, a.record.Class.DisplayName(), a.record.Level)
}

func (a *characterAdapter) TotalHealth() int {
	return a.record.Health
}

func (a *characterAdapter) TotalStrength() int {
	return a.record.Strength
}

func (a *characterAdapter) Equipment() map[string]string {
	return copyEquipment(a.record.Equipment)
}

func (a *characterAdapter) Kind() Kind {
	return KindCharacter
}

func (a *characterAdapter) containsParty(*Party) bool { return false }

func (a *characterAdapter) component() {}
