package composition

import (
	"github.com/KirkDiggler/rpg-party/internal/entities"
)

// BuildView wraps record in the decorators named by its enhancement metadata.
// The weapon decorator always sits directly on the adapter and armor wraps the
// result, so armor's clause always follows the weapon's. Each call returns a
// new tree; nothing is cached.
func BuildView(record *entities.Character) Component {
	var view Component = newCharacterAdapter(record)

	enh := record.Enhancement
	if enh.HasWeapon() {
		view = &weaponDecorator{
			inner: view,
			name:  *enh.WeaponName,
			bonus: *enh.StrengthBonus,
		}
	}
	if enh.HasArmor() {
		view = &armorDecorator{
			inner: view,
			name:  *enh.ArmorName,
			bonus: *enh.HealthBonus,
		}
	}

	return view
}

// EnhancementRequest carries the optional fields for ApplyEnhancement.
// A kind is applied only when both its name and its bonus are given.
type EnhancementRequest struct {
	WeaponName    *string
	StrengthBonus *int
	ArmorName     *string
	HealthBonus   *int
}

// Applied reports which enhancement kinds ApplyEnhancement wrote
type Applied struct {
	Weapon bool
	Armor  bool
}

// Any reports whether anything was written
func (a Applied) Any() bool {
	return a.Weapon || a.Armor
}

// ApplyEnhancement records the requested enhancements on record. A kind given
// with only a name or only a bonus is skipped without error. Each applied
// item is also written into the record's equipment under its slot. Base
// health and strength are never touched.
func ApplyEnhancement(record *entities.Character, req EnhancementRequest) Applied {
	var applied Applied

	if req.WeaponName != nil && *req.WeaponName != "" && req.StrengthBonus != nil {
		name, bonus := *req.WeaponName, *req.StrengthBonus
		record.Enhancement.WeaponName = &name
		record.Enhancement.StrengthBonus = &bonus
		setSlot(record, entities.SlotWeapon, name)
		applied.Weapon = true
	}

	if req.ArmorName != nil && *req.ArmorName != "" && req.HealthBonus != nil {
		name, bonus := *req.ArmorName, *req.HealthBonus
		record.Enhancement.ArmorName = &name
		record.Enhancement.HealthBonus = &bonus
		setSlot(record, entities.SlotArmor, name)
		applied.Armor = true
	}

	return applied
}

func setSlot(record *entities.Character, slot, item string) {
	if record.Equipment == nil {
		record.Equipment = make(map[string]string)
	}
	record.Equipment[slot] = item
}
