// Package roster implements the roster orchestrator: it owns the character
// and party registries and turns stored records into composition views.
package roster

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-party/internal/composition"
	"github.com/KirkDiggler/rpg-party/internal/entities"
	"github.com/KirkDiggler/rpg-party/internal/errors"
	"github.com/KirkDiggler/rpg-party/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-party/internal/pkg/history"
	"github.com/KirkDiggler/rpg-party/internal/pkg/idgen"
	characterrepo "github.com/KirkDiggler/rpg-party/internal/repositories/character"
	partyrepo "github.com/KirkDiggler/rpg-party/internal/repositories/party"
)

// Config holds the dependencies for the roster orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	PartyRepo     partyrepo.Repository
	DiceRoller    dice.Roller
	IDGenerator   idgen.Generator

	// EventBus defaults to a fresh rpg-toolkit bus when nil
	EventBus events.EventBus
	// Clock defaults to the system clock when nil
	Clock clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c == nil {
		return vb.RequiredField("config").Build()
	}

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.PartyRepo == nil {
		vb.RequiredField("PartyRepo")
	}
	if c.DiceRoller == nil {
		vb.RequiredField("DiceRoller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Orchestrator implements Service
type Orchestrator struct {
	characterRepo characterrepo.Repository
	partyRepo     partyrepo.Repository
	diceRoller    dice.Roller
	idGen         idgen.Generator
	eventBus      events.EventBus
	clock         clock.Clock
	history       *history.History
}

// Ensure Orchestrator implements the Service interface
var _ Service = (*Orchestrator)(nil)

// New creates a new roster orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	bus := cfg.EventBus
	if bus == nil {
		bus = events.NewBus()
	}
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &Orchestrator{
		characterRepo: cfg.CharacterRepo,
		partyRepo:     cfg.PartyRepo,
		diceRoller:    cfg.DiceRoller,
		idGen:         cfg.IDGenerator,
		eventBus:      bus,
		clock:         c,
		history:       history.New(),
	}, nil
}

// EventBus exposes the bus so callers can subscribe to roster events
func (o *Orchestrator) EventBus() events.EventBus {
	return o.eventBus
}

// CreateCharacter rolls base stats for the class and registers the record
func (o *Orchestrator) CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	errors.ValidateRange("level", input.Level, MinLevel, MaxLevel, vb)
	if _, ok := classStats[input.Class]; !ok {
		vb.Fieldf("class", "unknown class %q", input.Class)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	health, strength, err := rollBaseStats(o.diceRoller, input.Class)
	if err != nil {
		return nil, err
	}

	record := &entities.Character{
		ID:        "char_" + o.idGen.Generate(),
		Name:      strings.TrimSpace(input.Name),
		Class:     input.Class,
		Level:     input.Level,
		Health:    health,
		Strength:  strength,
		Equipment: make(map[string]string, len(input.Equipment)),
		CreatedAt: o.clock.Now().Unix(),
	}
	for slot, item := range input.Equipment {
		record.Equipment[slot] = item
	}

	out, err := o.characterRepo.Create(ctx, characterrepo.CreateInput{Character: record})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create character")
	}

	slog.InfoContext(ctx, "character created",
		"character_id", record.ID,
		"class", record.Class,
		"health", record.Health,
		"strength", record.Strength)
	o.publish(ctx, EventCharacterCreated, out.Character, nil)

	return &CreateCharacterOutput{Character: out.Character}, nil
}

// GetCharacter loads a character record
func (o *Orchestrator) GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error) {
	record, err := o.loadCharacter(ctx, input)
	if err != nil {
		return nil, err
	}
	return &GetCharacterOutput{Character: record}, nil
}

// ListCharacters returns every registered character in creation order
func (o *Orchestrator) ListCharacters(ctx context.Context, _ *ListCharactersInput) (*ListCharactersOutput, error) {
	out, err := o.characterRepo.List(ctx, characterrepo.ListInput{})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list characters")
	}
	return &ListCharactersOutput{Characters: out.Characters}, nil
}

// EnhanceCharacter stores enhancement metadata on the record and returns the
// rebuilt view. A request that names only a weapon or only a bonus is a
// silent no-op for that kind; the record is saved only when something changed,
// and only a saved change can be undone.
func (o *Orchestrator) EnhanceCharacter(ctx context.Context, input *EnhanceCharacterInput) (*EnhanceCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	record, err := o.loadCharacter(ctx, &GetCharacterInput{CharacterID: input.CharacterID})
	if err != nil {
		return nil, err
	}

	before := record.Clone()
	applied := composition.ApplyEnhancement(record, input.Enhancement)
	if !applied.Any() {
		slog.DebugContext(ctx, "enhancement request incomplete, nothing applied",
			"character_id", record.ID)
		return &EnhanceCharacterOutput{
			Character: record,
			Applied:   applied,
			View:      composition.BuildView(record),
		}, nil
	}

	cmd := &enhanceCommand{
		o:      o,
		id:     record.ID,
		name:   record.Name,
		before: before,
		after:  record.Clone(),
		loaded: record,
	}
	if err := o.history.Execute(ctx, cmd); err != nil {
		return nil, errors.Wrapf(err, "failed to save enhancement")
	}

	slog.InfoContext(ctx, "character enhanced",
		"character_id", record.ID,
		"weapon", applied.Weapon,
		"armor", applied.Armor)
	o.publish(ctx, EventCharacterEnhanced, record, nil)

	return &EnhanceCharacterOutput{
		Character: record,
		Applied:   applied,
		View:      composition.BuildView(record),
	}, nil
}

// GetCharacterView builds a fresh decorated view of the character
func (o *Orchestrator) GetCharacterView(ctx context.Context, input *GetCharacterViewInput) (*GetCharacterViewOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	record, err := o.loadCharacter(ctx, &GetCharacterInput{CharacterID: input.CharacterID})
	if err != nil {
		return nil, err
	}

	return &GetCharacterViewOutput{View: composition.BuildView(record)}, nil
}

func (o *Orchestrator) loadCharacter(ctx context.Context, input *GetCharacterInput) (*entities.Character, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterID", input.CharacterID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character %s", input.CharacterID)
	}
	return out.Character, nil
}

// publish never fails the caller; a handler error is only logged
func (o *Orchestrator) publish(ctx context.Context, eventType string, source, target core.Entity) {
	if err := o.eventBus.Publish(ctx, events.NewGameEvent(eventType, source, target)); err != nil {
		slog.WarnContext(ctx, "event handler failed",
			"event", eventType,
			"source_id", source.GetID(),
			"error", err)
	}
}
