package roster

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-party/internal/entities"
	"github.com/KirkDiggler/rpg-party/internal/errors"
	characterrepo "github.com/KirkDiggler/rpg-party/internal/repositories/character"
	partyrepo "github.com/KirkDiggler/rpg-party/internal/repositories/party"
)

// recordCommand is a history command that knows which record it last wrote
type recordCommand interface {
	record() core.Entity
}

// enhanceCommand switches a character between its enhancement and equipment
// before and after an EnhanceCharacter call. Other fields of the stored
// record are left as found.
type enhanceCommand struct {
	o      *Orchestrator
	id     string
	name   string
	before *entities.Character
	after  *entities.Character
	saved  *entities.Character

	// loaded is the record the caller already read; the first write uses it
	// instead of reading again
	loaded *entities.Character
}

func (c *enhanceCommand) Execute(ctx context.Context) error {
	return c.write(ctx, c.after)
}

func (c *enhanceCommand) Undo(ctx context.Context) error {
	return c.write(ctx, c.before)
}

func (c *enhanceCommand) Description() string {
	return fmt.Sprintf("enhance %s", c.name)
}

func (c *enhanceCommand) record() core.Entity {
	return c.saved
}

func (c *enhanceCommand) write(ctx context.Context, from *entities.Character) error {
	record := c.loaded
	c.loaded = nil
	if record == nil {
		var err error
		record, err = c.o.loadCharacter(ctx, &GetCharacterInput{CharacterID: c.id})
		if err != nil {
			return err
		}
	}

	snapshot := from.Clone()
	record.Enhancement = snapshot.Enhancement
	record.Equipment = snapshot.Equipment

	if _, err := c.o.characterRepo.Update(ctx, characterrepo.UpdateInput{Character: record}); err != nil {
		return errors.Wrapf(err, "failed to save character %s", c.id)
	}
	c.saved = record
	return nil
}

// membersCommand switches a party between its member list before and after
// an add or remove. Whenever the change puts member back into the party the
// reference is checked again, so a replayed add cannot close a cycle.
type membersCommand struct {
	o       *Orchestrator
	partyID string
	name    string
	member  entities.PartyMember
	add     bool
	before  []entities.PartyMember
	after   []entities.PartyMember
	saved   *entities.Party

	// loaded is the party the caller already read and checked member
	// against; the first write uses it as is
	loaded *entities.Party
}

func (c *membersCommand) Execute(ctx context.Context) error {
	return c.write(ctx, c.after, c.add)
}

func (c *membersCommand) Undo(ctx context.Context) error {
	return c.write(ctx, c.before, !c.add)
}

func (c *membersCommand) Description() string {
	if c.add {
		return fmt.Sprintf("add %s %s to %s", c.member.Kind, c.member.ID, c.name)
	}
	return fmt.Sprintf("remove %s %s from %s", c.member.Kind, c.member.ID, c.name)
}

func (c *membersCommand) record() core.Entity {
	return c.saved
}

func (c *membersCommand) write(ctx context.Context, members []entities.PartyMember, reintroduces bool) error {
	record := c.loaded
	c.loaded = nil
	if record == nil {
		var err error
		record, err = c.o.loadParty(ctx, c.partyID)
		if err != nil {
			return err
		}
		if reintroduces {
			if _, err := c.o.loadMemberEntity(ctx, record, c.member); err != nil {
				return err
			}
		}
	}

	record.Members = append([]entities.PartyMember{}, members...)
	if _, err := c.o.partyRepo.Update(ctx, partyrepo.UpdateInput{Party: record}); err != nil {
		return errors.Wrapf(err, "failed to save party %s", record.ID)
	}
	c.saved = record
	return nil
}
