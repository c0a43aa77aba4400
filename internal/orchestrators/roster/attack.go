package roster

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-party/internal/combat"
	"github.com/KirkDiggler/rpg-party/internal/composition"
	"github.com/KirkDiggler/rpg-party/internal/errors"
)

// Attack scores one attack between two characters with the named strategy.
// Base damage is the attacker's decorated strength. Nothing is written back:
// the target's health after the hit is reported, never stored.
func (o *Orchestrator) Attack(ctx context.Context, input *AttackInput) (*AttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("attackerID", input.AttackerID, vb)
	errors.ValidateRequired("targetID", input.TargetID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	strategy, err := combat.ForName(input.Strategy, o.diceRoller)
	if err != nil {
		return nil, err
	}

	attacker, err := o.loadCharacter(ctx, &GetCharacterInput{CharacterID: input.AttackerID})
	if err != nil {
		return nil, err
	}
	target, err := o.loadCharacter(ctx, &GetCharacterInput{CharacterID: input.TargetID})
	if err != nil {
		return nil, err
	}

	attackerView := composition.BuildView(attacker)
	targetView := composition.BuildView(target)

	hit, err := strategy.Attack(attackerView.TotalStrength(), attacker.Level)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to score %s attack", strategy.Name())
	}

	before := targetView.TotalHealth()
	after := before - hit.Damage
	if after < 0 {
		after = 0
	}

	slog.InfoContext(ctx, "attack scored",
		"attacker_id", attacker.ID,
		"target_id", target.ID,
		"strategy", strategy.Name(),
		"damage", hit.Damage,
		"critical", hit.Critical)
	o.publish(ctx, EventCharacterAttacked, attacker, target)

	return &AttackOutput{
		Attacker:           attacker,
		Target:             target,
		Strategy:           strategy.Name(),
		Damage:             hit.Damage,
		Critical:           hit.Critical,
		TargetHealthBefore: before,
		TargetHealthAfter:  after,
	}, nil
}
