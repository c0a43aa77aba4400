package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-party/internal/achievements"
	"github.com/KirkDiggler/rpg-party/internal/composition"
	"github.com/KirkDiggler/rpg-party/internal/config"
	"github.com/KirkDiggler/rpg-party/internal/errors"
	"github.com/KirkDiggler/rpg-party/internal/orchestrators/roster"
	"github.com/KirkDiggler/rpg-party/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-party/internal/presentation"
	redisclient "github.com/KirkDiggler/rpg-party/internal/redis"
	characterrepo "github.com/KirkDiggler/rpg-party/internal/repositories/character"
	partyrepo "github.com/KirkDiggler/rpg-party/internal/repositories/party"
)

// serviceFactory builds the roster service for a resolved config. The
// returned cleanup releases any connections.
type serviceFactory func(ctx context.Context, cfg *config.Config) (roster.Service, func() error, error)

type cli struct {
	stdout io.Writer
	stderr io.Writer

	redisAddr string
	format    string
	logLevel  string

	cfg        *config.Config
	newService serviceFactory
	service    roster.Service
	formatter  presentation.Formatter
	cleanup    func() error

	achievements *achievements.Tracker
}

func newCLI(stdout, stderr io.Writer) *cli {
	c := &cli{
		stdout:       stdout,
		stderr:       stderr,
		achievements: achievements.NewTracker(),
	}
	c.newService = c.buildService
	return c
}

// setup resolves config (env, then flags), installs the logger, and builds
// the service before any subcommand runs
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("redis-addr") {
		cfg.RedisAddr = c.redisAddr
	}
	if flags.Changed("format") {
		cfg.Format = c.format
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = c.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(c.stderr, &slog.HandlerOptions{Level: level})))

	c.cfg = cfg
	c.formatter, err = presentation.ForName(cfg.Format)
	if err != nil {
		return err
	}

	service, cleanup, err := c.newService(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	c.service = service
	c.cleanup = cleanup
	return nil
}

func (c *cli) close() {
	if c.cleanup == nil {
		return
	}
	if err := c.cleanup(); err != nil {
		slog.Warn("cleanup failed", "error", err)
	}
	c.cleanup = nil
}

func (c *cli) render(view composition.Component) error {
	out, err := c.formatter.Format(view)
	if err != nil {
		return errors.Wrap(err, "failed to format view")
	}
	_, err = fmt.Fprintln(c.stdout, out)
	return err
}

// buildService wires the orchestrator against redis when an address is
// configured, otherwise against in-memory registries
func (c *cli) buildService(ctx context.Context, cfg *config.Config) (roster.Service, func() error, error) {
	var (
		characters characterrepo.Repository
		parties    partyrepo.Repository
		cleanup    = func() error { return nil }
	)

	if cfg.UseRedis() {
		client, err := openRedis(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}

		characters, err = characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client})
		if err != nil {
			return nil, nil, err
		}
		parties, err = partyrepo.NewRedis(&partyrepo.RedisConfig{Client: client})
		if err != nil {
			return nil, nil, err
		}
		cleanup = client.Close
		slog.Debug("using redis registries", "redis_addr", cfg.RedisAddr, "db", cfg.RedisDB)
	} else {
		characters = characterrepo.NewInMemory()
		parties = partyrepo.NewInMemory()
		slog.Debug("using in-memory registries")
	}

	orchestrator, err := roster.New(&roster.Config{
		CharacterRepo: characters,
		PartyRepo:     parties,
		DiceRoller:    dice.DefaultRoller,
		IDGenerator:   idgen.NewUUID(""),
	})
	if err != nil {
		return nil, nil, err
	}
	subscribeEventLog(orchestrator.EventBus())
	c.achievements.Subscribe(orchestrator.EventBus())

	return orchestrator, cleanup, nil
}

// openRedis connects and pings so an unreachable server fails before any work
func openRedis(ctx context.Context, cfg *config.Config) (redisclient.Client, error) {
	client, err := redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{
		DB:          cfg.RedisDB,
		DialTimeout: cfg.RedisDialTimeout,
		UseTLS:      cfg.RedisTLS,
	})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to create redis client")
	}
	if err := redisclient.Ping(ctx, client); err != nil {
		_ = client.Close() // nolint:errcheck // already failing
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "redis is not reachable").
			WithMeta("redis_addr", cfg.RedisAddr)
	}
	return client, nil
}

func subscribeEventLog(bus events.EventBus) {
	for _, eventType := range []string{
		roster.EventCharacterCreated,
		roster.EventCharacterEnhanced,
		roster.EventPartyCreated,
		roster.EventPartyMemberAdded,
		roster.EventPartyMemberRemoved,
		roster.EventCharacterAttacked,
		roster.EventChangeUndone,
		roster.EventChangeRedone,
	} {
		bus.SubscribeFunc(eventType, 0, func(ctx context.Context, e events.Event) error {
			attrs := []any{"event", e.Type(), "source_id", e.Source().GetID()}
			if target := e.Target(); target != nil {
				attrs = append(attrs, "target_id", target.GetID())
			}
			slog.DebugContext(ctx, "roster event", attrs...)
			return nil
		})
	}
}
