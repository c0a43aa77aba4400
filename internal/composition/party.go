package composition

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-party/internal/errors"
)

const memberSeparator = ", "

// Party aggregates an ordered list of components. Members may be characters,
// decorated characters, or other parties.
//
// The same component may be added more than once; each occurrence counts
// toward the totals. A party can never contain itself: AddMember rejects any
// member that already holds the receiver somewhere below it.
type Party struct {
	name    string
	members []Component
}

// NewParty creates an empty party
func NewParty(name string) *Party {
	return &Party{name: name}
}

// Name returns the party name
func (p *Party) Name() string {
	return p.name
}

// AddMember appends member to the end of the party
func (p *Party) AddMember(member Component) error {
	if member == nil {
		return errors.InvalidArgument("party member cannot be nil")
	}
	if member == Component(p) || member.containsParty(p) {
		return errors.StructuralCyclef("party %q cannot contain itself", p.name).
			WithMeta("party", p.name).
			WithMeta("member", member.Description())
	}

	p.members = append(p.members, member)
	return nil
}

// RemoveMember removes the first member that is the same instance as member.
// It reports whether anything was removed.
func (p *Party) RemoveMember(member Component) bool {
	for i, m := range p.members {
		if m == member {
			p.members = append(p.members[:i:i], p.members[i+1:]...)
			return true
		}
	}
	return false
}

// Members returns a copy of the member list in insertion order
func (p *Party) Members() []Component {
	return append([]Component(nil), p.members...)
}

// Len returns the number of members, counting duplicates
func (p *Party) Len() int {
	return len(p.members)
}

// Description prefixes the party name and member count to the joined member descriptions
func (p *Party) Description() string {
	descriptions := make([]string, len(p.members))
	for i, m := range p.members {
		descriptions[i] = m.Description()
	}
	return fmt.Sprintf("Party '%s' (%d members): %s", p.name, len(p.members), strings.Join(descriptions, memberSeparator))
}

// TotalHealth sums member health
func (p *Party) TotalHealth() int {
	total := 0
	for _, m := range p.members {
		total += m.TotalHealth()
	}
	return total
}

// TotalStrength sums member strength
func (p *Party) TotalStrength() int {
	total := 0
	for _, m := range p.members {
		total += m.TotalStrength()
	}
	return total
}

// Equipment unites member slots. When several members use the same slot
// their items are joined in member order, so a merged slot may name more
// than one item.
func (p *Party) Equipment() map[string]string {
	merged := make(map[string]string)
	for _, m := range p.members {
		for slot, item := range m.Equipment() {
			if existing, ok := merged[slot]; ok {
				merged[slot] = existing + memberSeparator + item
				continue
			}
			merged[slot] = item
		}
	}
	return merged
}

// Kind returns KindParty
func (p *Party) Kind() Kind {
	return KindParty
}

func (p *Party) containsParty(target *Party) bool {
	for _, m := range p.members {
		if m == Component(target) || m.containsParty(target) {
			return true
		}
	}
	return false
}

func (p *Party) component() {}
