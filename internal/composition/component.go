// Package composition builds read-only views over character records.
//
// Every node in a view tree satisfies Component: the adapter wraps a bare
// record, weapon and armor decorators add a bonus on top of another node,
// and a Party aggregates any number of nodes, including other parties.
// Trees are rebuilt for each read and never mutate the records under them.
package composition

// Kind tags the closed set of node variants
type Kind string

// Node variants
const (
	KindCharacter Kind = "character"
	KindWeapon    Kind = "weapon"
	KindArmor     Kind = "armor"
	KindParty     Kind = "party"
)

// Component is the read contract shared by every node in a view tree
type Component interface {
	// Description is a human-readable identity for the node
	Description() string
	// TotalHealth is the aggregate health including bonuses
	TotalHealth() int
	// TotalStrength is the aggregate strength including bonuses
	TotalStrength() int
	// Equipment returns a fresh slot to item map owned by the caller
	Equipment() map[string]string
	// Kind reports which variant this node is
	Kind() Kind

	// containsParty reports whether target appears anywhere in this subtree
	containsParty(target *Party) bool
	component()
}

func copyEquipment(src map[string]string) map[string]string {
	out := make(map[string]string, len(src))
	for slot, item := range src {
		out[slot] = item
	}
	return out
}
