package maintenance

import (
	"sort"

	"github.com/KirkDiggler/rpg-party/internal/entities"
)

// findCycles returns, sorted, the IDs of every party that reaches itself.
// Missing member parties are treated as leaves.
func findCycles(parties map[string]*entities.Party) []string {
	var onCycle []string
	for _, id := range sortedKeys(parties) {
		if reaches(parties, id, id, map[string]bool{}) {
			onCycle = append(onCycle, id)
		}
	}
	return onCycle
}

func reaches(parties map[string]*entities.Party, from, target string, seen map[string]bool) bool {
	p, ok := parties[from]
	if !ok || seen[from] {
		return false
	}
	seen[from] = true

	for _, m := range p.Members {
		if m.Kind != entities.MemberKindParty {
			continue
		}
		if m.ID == target || reaches(parties, m.ID, target, seen) {
			return true
		}
	}
	return false
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
