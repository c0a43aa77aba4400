package roster

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-party/internal/entities"
	"github.com/KirkDiggler/rpg-party/internal/errors"
)

// statRange bounds are inclusive
type statRange struct {
	minHealth, maxHealth     int
	minStrength, maxStrength int
}

var classStats = map[entities.Class]statRange{
	entities.ClassWarrior: {minHealth: 90, maxHealth: 119, minStrength: 14, maxStrength: 19},
	entities.ClassMage:    {minHealth: 60, maxHealth: 79, minStrength: 6, maxStrength: 9},
	entities.ClassArcher:  {minHealth: 75, maxHealth: 94, minStrength: 10, maxStrength: 14},
}

// rollBaseStats rolls starting health and strength within the class range
func rollBaseStats(roller dice.Roller, class entities.Class) (health, strength int, err error) {
	r, ok := classStats[class]
	if !ok {
		return 0, 0, errors.InvalidArgumentf("unknown character class %q", class)
	}

	health, err = rollBetween(roller, r.minHealth, r.maxHealth)
	if err != nil {
		return 0, 0, errors.Wrap(err, "failed to roll health")
	}
	strength, err = rollBetween(roller, r.minStrength, r.maxStrength)
	if err != nil {
		return 0, 0, errors.Wrap(err, "failed to roll strength")
	}
	return health, strength, nil
}

// rollBetween rolls a single die sized to the range and shifts it onto lo..hi
func rollBetween(roller dice.Roller, lo, hi int) (int, error) {
	v, err := roller.Roll(hi - lo + 1)
	if err != nil {
		return 0, err
	}
	return lo + v - 1, nil
}
