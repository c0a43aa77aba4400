// Package achievements unlocks one-time milestones from roster events
package achievements

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-party/internal/entities"
	"github.com/KirkDiggler/rpg-party/internal/orchestrators/roster"
)

// Achievement identifies a milestone
type Achievement string

// Known achievements
const (
	Level10       Achievement = "Level10"
	Level20       Achievement = "Level20"
	FirstParty    Achievement = "FirstParty"
	FullyEquipped Achievement = "FullyEquipped"
)

// Title returns the display text for the achievement
func (a Achievement) Title() string {
	switch a {
	case Level10:
		return "Reached Level 10"
	case Level20:
		return "Reached Level 20"
	case FirstParty:
		return "First Party Formed"
	case FullyEquipped:
		return "Fully Equipped"
	default:
		return string(a)
	}
}

// Unlock records which entity earned an achievement
type Unlock struct {
	Achievement Achievement
	EntityID    string
}

// Tracker subscribes to a bus and unlocks each achievement at most once
type Tracker struct {
	mu       sync.Mutex
	unlocked []Unlock
	seen     map[Achievement]bool
	subs     []string
}

// NewTracker returns a tracker with nothing unlocked
func NewTracker() *Tracker {
	return &Tracker{seen: make(map[Achievement]bool)}
}

// Subscribe registers the tracker's handlers on bus
func (t *Tracker) Subscribe(bus events.EventBus) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.subs = append(t.subs,
		bus.SubscribeFunc(roster.EventCharacterCreated, 10, t.onCharacterCreated),
		bus.SubscribeFunc(roster.EventCharacterEnhanced, 10, t.onCharacterEnhanced),
		bus.SubscribeFunc(roster.EventPartyMemberAdded, 10, t.onPartyMemberAdded),
	)
}

// Unsubscribe removes every handler registered by Subscribe
func (t *Tracker) Unsubscribe(bus events.EventBus) error {
	t.mu.Lock()
	subs := t.subs
	t.subs = nil
	t.mu.Unlock()

	for _, id := range subs {
		if err := bus.Unsubscribe(id); err != nil {
			return err
		}
	}
	return nil
}

// Unlocked returns achievements in the order they were earned
func (t *Tracker) Unlocked() []Unlock {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Unlock(nil), t.unlocked...)
}

// Has reports whether a has been unlocked
func (t *Tracker) Has(a Achievement) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.seen[a]
}

func (t *Tracker) onCharacterCreated(ctx context.Context, e events.Event) error {
	record, ok := e.Source().(*entities.Character)
	if !ok {
		return nil
	}
	if record.Level >= 10 {
		t.unlock(ctx, Level10, record.ID)
	}
	if record.Level >= 20 {
		t.unlock(ctx, Level20, record.ID)
	}
	return nil
}

func (t *Tracker) onCharacterEnhanced(ctx context.Context, e events.Event) error {
	record, ok := e.Source().(*entities.Character)
	if !ok {
		return nil
	}
	if record.Enhancement.HasWeapon() && record.Enhancement.HasArmor() {
		t.unlock(ctx, FullyEquipped, record.ID)
	}
	return nil
}

func (t *Tracker) onPartyMemberAdded(ctx context.Context, e events.Event) error {
	if e.Source() == nil {
		return nil
	}
	t.unlock(ctx, FirstParty, e.Source().GetID())
	return nil
}

func (t *Tracker) unlock(ctx context.Context, a Achievement, entityID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.seen[a] {
		return
	}
	t.seen[a] = true
	t.unlocked = append(t.unlocked, Unlock{Achievement: a, EntityID: entityID})

	slog.InfoContext(ctx, "achievement unlocked",
		"achievement", string(a),
		"title", a.Title(),
		"entity_id", entityID)
}
