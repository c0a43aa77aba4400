package entities

// EntityTypeParty is the core.Entity type for party records
const EntityTypeParty = "party"

// MemberKind says what a party member reference points at
type MemberKind string

// Member kinds
const (
	MemberKindCharacter MemberKind = "character"
	MemberKindParty     MemberKind = "party"
)

// PartyMember references a character or another party by ID
type PartyMember struct {
	Kind MemberKind `json:"kind"`
	ID   string     `json:"id"`
}

// Party is the stored definition of a party. Members keep insertion order and
// may repeat; the composite view is resolved from these references on read.
type Party struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Members   []PartyMember `json:"members"`
	CreatedAt int64         `json:"created_at"`
}

// GetID implements core.Entity
func (p *Party) GetID() string {
	return p.ID
}

// GetType implements core.Entity
func (p *Party) GetType() string {
	return EntityTypeParty
}

// Clone returns a copy with its own member slice
func (p *Party) Clone() *Party {
	if p == nil {
		return nil
	}

	out := *p
	if p.Members != nil {
		out.Members = append([]PartyMember(nil), p.Members...)
	}
	return &out
}

// RemoveMember drops the first reference equal to m and reports whether one was found
func (p *Party) RemoveMember(m PartyMember) bool {
	for i, existing := range p.Members {
		if existing == m {
			p.Members = append(p.Members[:i:i], p.Members[i+1:]...)
			return true
		}
	}
	return false
}
