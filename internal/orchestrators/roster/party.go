package roster

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-party/internal/composition"
	"github.com/KirkDiggler/rpg-party/internal/entities"
	"github.com/KirkDiggler/rpg-party/internal/errors"
	partyrepo "github.com/KirkDiggler/rpg-party/internal/repositories/party"
)

// CreateParty registers an empty party
func (o *Orchestrator) CreateParty(ctx context.Context, input *CreatePartyInput) (*CreatePartyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	record := &entities.Party{
		ID:        "party_" + o.idGen.Generate(),
		Name:      strings.TrimSpace(input.Name),
		Members:   []entities.PartyMember{},
		CreatedAt: o.clock.Now().Unix(),
	}

	out, err := o.partyRepo.Create(ctx, partyrepo.CreateInput{Party: record})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create party")
	}

	slog.InfoContext(ctx, "party created", "party_id", record.ID, "name", record.Name)
	o.publish(ctx, EventPartyCreated, out.Party, nil)

	return &CreatePartyOutput{Party: out.Party}, nil
}

// AddPartyMember appends a character or party reference. Repeats are allowed.
// Adding a party that already contains the target, directly or through its
// own members, fails with a structural cycle error.
func (o *Orchestrator) AddPartyMember(ctx context.Context, input *AddPartyMemberInput) (*AddPartyMemberOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateMember(input.PartyID, input.Member); err != nil {
		return nil, err
	}

	record, err := o.loadParty(ctx, input.PartyID)
	if err != nil {
		return nil, err
	}

	target, err := o.loadMemberEntity(ctx, record, input.Member)
	if err != nil {
		return nil, err
	}

	cmd := &membersCommand{
		o:       o,
		partyID: record.ID,
		name:    record.Name,
		member:  input.Member,
		add:     true,
		before:  append([]entities.PartyMember{}, record.Members...),
		after:   append(append([]entities.PartyMember{}, record.Members...), input.Member),
		loaded:  record,
	}
	if err := o.history.Execute(ctx, cmd); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "party member added",
		"party_id", record.ID,
		"member_kind", input.Member.Kind,
		"member_id", input.Member.ID,
		"size", len(record.Members))
	o.publish(ctx, EventPartyMemberAdded, record, target)

	return &AddPartyMemberOutput{Party: record}, nil
}

// RemovePartyMember drops the first matching reference
func (o *Orchestrator) RemovePartyMember(ctx context.Context, input *RemovePartyMemberInput) (*RemovePartyMemberOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateMember(input.PartyID, input.Member); err != nil {
		return nil, err
	}

	record, err := o.loadParty(ctx, input.PartyID)
	if err != nil {
		return nil, err
	}

	before := append([]entities.PartyMember{}, record.Members...)
	if !record.RemoveMember(input.Member) {
		return &RemovePartyMemberOutput{Party: record, Removed: false}, nil
	}

	cmd := &membersCommand{
		o:       o,
		partyID: record.ID,
		name:    record.Name,
		member:  input.Member,
		before:  before,
		after:   append([]entities.PartyMember{}, record.Members...),
		loaded:  record,
	}
	if err := o.history.Execute(ctx, cmd); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "party member removed",
		"party_id", record.ID,
		"member_kind", input.Member.Kind,
		"member_id", input.Member.ID)
	o.publish(ctx, EventPartyMemberRemoved, record, nil)

	return &RemovePartyMemberOutput{Party: record, Removed: true}, nil
}

// ListParties returns every stored party definition in creation order
func (o *Orchestrator) ListParties(ctx context.Context, _ *ListPartiesInput) (*ListPartiesOutput, error) {
	out, err := o.partyRepo.List(ctx, partyrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list parties")
	}
	return &ListPartiesOutput{Parties: out.Parties}, nil
}

// GetPartyView resolves a stored party into a composite view. Character
// members are built through the composition facade; member parties are
// resolved recursively. Within one call each ID resolves to a single node, so
// a repeated member is the same instance each time it appears.
func (o *Orchestrator) GetPartyView(ctx context.Context, input *GetPartyViewInput) (*GetPartyViewOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	r := &resolver{
		o:          o,
		characters: make(map[string]composition.Component),
		parties:    make(map[string]*composition.Party),
		inProgress: make(map[string]bool),
	}
	view, err := r.party(ctx, input.PartyID)
	if err != nil {
		return nil, err
	}

	return &GetPartyViewOutput{View: view}, nil
}

type resolver struct {
	o          *Orchestrator
	characters map[string]composition.Component
	parties    map[string]*composition.Party
	inProgress map[string]bool
}

func (r *resolver) party(ctx context.Context, id string) (*composition.Party, error) {
	if view, ok := r.parties[id]; ok {
		return view, nil
	}
	if r.inProgress[id] {
		return nil, errors.StructuralCyclef("party %s contains itself", id).WithMeta("party_id", id)
	}
	r.inProgress[id] = true
	defer delete(r.inProgress, id)

	record, err := r.o.loadParty(ctx, id)
	if err != nil {
		return nil, err
	}

	view := composition.NewParty(record.Name)
	for _, m := range record.Members {
		var member composition.Component
		switch m.Kind {
		case entities.MemberKindCharacter:
			member, err = r.character(ctx, m.ID)
		case entities.MemberKindParty:
			member, err = r.party(ctx, m.ID)
		default:
			err = errors.Internalf("party %s has member with unknown kind %q", id, m.Kind)
		}
		if err != nil {
			return nil, err
		}
		if err := view.AddMember(member); err != nil {
			return nil, errors.Wrapf(err, "failed to add member %s to party %s", m.ID, id)
		}
	}

	r.parties[id] = view
	return view, nil
}

func (r *resolver) character(ctx context.Context, id string) (composition.Component, error) {
	if view, ok := r.characters[id]; ok {
		return view, nil
	}

	record, err := r.o.loadCharacter(ctx, &GetCharacterInput{CharacterID: id})
	if err != nil {
		return nil, err
	}

	view := composition.BuildView(record)
	r.characters[id] = view
	return view, nil
}

func validateMember(partyID string, m entities.PartyMember) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("partyID", partyID, vb)
	errors.ValidateRequired("member.id", m.ID, vb)
	if m.Kind != entities.MemberKindCharacter && m.Kind != entities.MemberKindParty {
		vb.Fieldf("member.kind", "must be %q or %q", entities.MemberKindCharacter, entities.MemberKindParty)
	}
	return vb.Build()
}

func (o *Orchestrator) loadParty(ctx context.Context, id string) (*entities.Party, error) {
	out, err := o.partyRepo.Get(ctx, partyrepo.GetInput{ID: id})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get party %s", id)
	}
	return out.Party, nil
}

// loadMemberEntity checks the referenced member exists and, for parties, that
// adding it to owner would not close a loop.
func (o *Orchestrator) loadMemberEntity(ctx context.Context, owner *entities.Party, m entities.PartyMember) (core.Entity, error) {
	if m.Kind == entities.MemberKindCharacter {
		record, err := o.loadCharacter(ctx, &GetCharacterInput{CharacterID: m.ID})
		if err != nil {
			return nil, err
		}
		return record, nil
	}

	if m.ID == owner.ID {
		return nil, errors.StructuralCyclef("party %s cannot contain itself", owner.ID).
			WithMeta("party_id", owner.ID)
	}

	member, err := o.loadParty(ctx, m.ID)
	if err != nil {
		return nil, err
	}

	reaches, err := o.reachesParty(ctx, member, owner.ID, map[string]bool{})
	if err != nil {
		return nil, err
	}
	if reaches {
		return nil, errors.StructuralCyclef("party %s already contains party %s", member.ID, owner.ID).
			WithMeta("party_id", owner.ID).
			WithMeta("member_id", member.ID)
	}

	return member, nil
}

// reachesParty walks stored sub-party references from p looking for targetID
func (o *Orchestrator) reachesParty(ctx context.Context, p *entities.Party, targetID string, seen map[string]bool) (bool, error) {
	if seen[p.ID] {
		return false, nil
	}
	seen[p.ID] = true

	for _, m := range p.Members {
		if m.Kind != entities.MemberKindParty {
			continue
		}
		if m.ID == targetID {
			return true, nil
		}

		child, err := o.loadParty(ctx, m.ID)
		if err != nil {
			return false, err
		}
		found, err := o.reachesParty(ctx, child, targetID, seen)
		if err != nil || found {
			return found, err
		}
	}
	return false, nil
}
