// Package combat scores attacks. A Strategy turns an attacker's strength and
// level into damage; strategies are swappable per attack.
package combat

import (
	"sort"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-party/internal/errors"
)

// Strategy names accepted by ForName
const (
	StrategyBalanced   = "balanced"
	StrategyAggressive = "aggressive"
	StrategyDefensive  = "defensive"
	StrategySneak      = "sneak"
)

// sneakCritFaces is how many faces of a d10 turn a sneak attack critical
const sneakCritFaces = 3

// Hit is the outcome of one attack
type Hit struct {
	Damage   int
	Critical bool
}

// Strategy computes damage from base damage and attacker level
type Strategy interface {
	Name() string
	Description() string
	Attack(baseDamage, level int) (Hit, error)
}

// Balanced deals base damage plus level
type Balanced struct{}

// Name returns the strategy name
func (Balanced) Name() string { return StrategyBalanced }

// Description summarizes the damage formula
func (Balanced) Description() string {
	return "Standard damage (100% + level bonus), balanced approach"
}

// Attack returns base+level
func (Balanced) Attack(baseDamage, level int) (Hit, error) {
	return Hit{Damage: baseDamage + level}, nil
}

// Aggressive deals 150% base damage plus twice the level
type Aggressive struct{}

// Name returns the strategy name
func (Aggressive) Name() string { return StrategyAggressive }

// Description summarizes the damage formula
func (Aggressive) Description() string {
	return "High damage output (150% + double level bonus), but leaves the attacker open"
}

// Attack returns 3/2 base (truncated) plus 2*level
func (Aggressive) Attack(baseDamage, level int) (Hit, error) {
	return Hit{Damage: baseDamage*3/2 + level*2}, nil
}

// Defensive deals 80% base damage plus level
type Defensive struct{}

// Name returns the strategy name
func (Defensive) Name() string { return StrategyDefensive }

// Description summarizes the damage formula
func (Defensive) Description() string {
	return "Moderate damage (80% + level bonus), keeps the attacker guarded"
}

// Attack returns 8/10 base (truncated) plus level
func (Defensive) Attack(baseDamage, level int) (Hit, error) {
	return Hit{Damage: baseDamage*8/10 + level}, nil
}

// Sneak deals 70% base damage plus level and triples it on a critical.
// A d10 showing 1-3 is a critical.
type Sneak struct {
	Roller dice.Roller
}

// Name returns the strategy name
func (Sneak) Name() string { return StrategySneak }

// Description summarizes the damage formula
func (Sneak) Description() string {
	return "Low damage (70% + level bonus), with a 30% chance of a triple damage critical"
}

// Attack rolls for a critical and returns the resulting hit
func (s Sneak) Attack(baseDamage, level int) (Hit, error) {
	roller := s.Roller
	if roller == nil {
		roller = dice.DefaultRoller
	}

	roll, err := roller.Roll(10)
	if err != nil {
		return Hit{}, errors.Wrap(err, "failed to roll for critical")
	}

	hit := Hit{Damage: baseDamage*7/10 + level}
	if roll <= sneakCritFaces {
		hit.Damage *= 3
		hit.Critical = true
	}
	return hit, nil
}

// ForName looks up a strategy by name, case-insensitively. An empty name is
// Balanced. roller is used by strategies that roll dice.
func ForName(name string, roller dice.Roller) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", StrategyBalanced:
		return Balanced{}, nil
	case StrategyAggressive:
		return Aggressive{}, nil
	case StrategyDefensive:
		return Defensive{}, nil
	case StrategySneak:
		return Sneak{Roller: roller}, nil
	default:
		return nil, errors.InvalidArgumentf("unknown attack strategy %q", name).
			WithMeta("known", strings.Join(Names(), ","))
	}
}

// Names lists the known strategy names in sorted order
func Names() []string {
	names := []string{StrategyBalanced, StrategyAggressive, StrategyDefensive, StrategySneak}
	sort.Strings(names)
	return names
}
