package composition

import (
	"github.com/KirkDiggler/rpg-party/internal/entities"
)

// weaponDecorator adds a strength bonus and claims the weapon slot
type weaponDecorator struct {
	inner Component
	name  string
	bonus int
}

func (d *weaponDecorator) Description() string {
	return d.inner.Description() + ", Enhanced with " + d.name
}

func (d *weaponDecorator) TotalHealth() int {
	return d.inner.TotalHealth()
}

func (d *weaponDecorator) TotalStrength() int {
	return d.inner.TotalStrength() + d.bonus
}

// Equipment overwrites the weapon slot whatever the inner chain holds
func (d *weaponDecorator) Equipment() map[string]string {
	equipment := d.inner.Equipment()
	equipment[entities.SlotWeapon] = d.name
	return equipment
}

func (d *weaponDecorator) Kind() Kind {
	return KindWeapon
}

func (d *weaponDecorator) containsParty(target *Party) bool { return d.inner.containsParty(target) }

func (d *weaponDecorator) component() {}

// armorDecorator adds a health bonus and claims the armor slot
type armorDecorator struct {
	inner Component
	name  string
	bonus int
}

func (d *armorDecorator) Description() string {
	return d.inner.Description() + ", Protected by " + d.name
}

func (d *armorDecorator) TotalHealth() int {
	return d.inner.TotalHealth() + d.bonus
}

func (d *armorDecorator) TotalStrength() int {
	return d.inner.TotalStrength()
}

func (d *armorDecorator) Equipment() map[string]string {
	equipment := d.inner.Equipment()
	equipment[entities.SlotArmor] = d.name
	return equipment
}

func (d *armorDecorator) Kind() Kind {
	return KindArmor
}

func (d *armorDecorator) containsParty(target *Party) bool { return d.inner.containsParty(target) }

func (d *armorDecorator) component() {}
