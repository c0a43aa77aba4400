package roster

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-party/internal/errors"
	"github.com/KirkDiggler/rpg-party/internal/pkg/history"
)

// Undo reverts the most recent enhancement or membership change made through
// this orchestrator. History lives in process memory; it is empty after a
// restart even when the registries are persistent.
func (o *Orchestrator) Undo(ctx context.Context, input *UndoInput) (*UndoOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	cmd, err := o.history.Undo(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to undo")
	}
	if cmd == nil {
		slog.DebugContext(ctx, "nothing to undo")
		return &UndoOutput{}, nil
	}

	slog.InfoContext(ctx, "change undone", "change", cmd.Description())
	o.publishChange(ctx, EventChangeUndone, cmd)

	return &UndoOutput{Undone: true, Description: cmd.Description()}, nil
}

// Redo replays the most recently undone change. A replayed party add is
// checked for cycles again against the current registry.
func (o *Orchestrator) Redo(ctx context.Context, input *RedoInput) (*RedoOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	cmd, err := o.history.Redo(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to redo")
	}
	if cmd == nil {
		slog.DebugContext(ctx, "nothing to redo")
		return &RedoOutput{}, nil
	}

	slog.InfoContext(ctx, "change redone", "change", cmd.Description())
	o.publishChange(ctx, EventChangeRedone, cmd)

	return &RedoOutput{Redone: true, Description: cmd.Description()}, nil
}

func (o *Orchestrator) publishChange(ctx context.Context, eventType string, cmd history.Command) {
	rc, ok := cmd.(recordCommand)
	if !ok || rc.record() == nil {
		return
	}
	o.publish(ctx, eventType, rc.record(), nil)
}
