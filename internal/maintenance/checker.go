// Package maintenance checks the redis-backed registries for damage left by
// crashed writers or manual edits, and repairs what can be repaired safely.
package maintenance

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-party/internal/entities"
	"github.com/KirkDiggler/rpg-party/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-party/internal/redis"
	characterrepo "github.com/KirkDiggler/rpg-party/internal/repositories/character"
	partyrepo "github.com/KirkDiggler/rpg-party/internal/repositories/party"
)

// IssueKind classifies a registry problem
type IssueKind string

// Issue kinds
const (
	// IssueCorruptRecord is a record key whose value does not decode
	IssueCorruptRecord IssueKind = "corrupt_record"
	// IssueDanglingIndex is an index entry without a record
	IssueDanglingIndex IssueKind = "dangling_index"
	// IssueUnindexedRecord is a record missing from the index, so List skips it
	IssueUnindexedRecord IssueKind = "unindexed_record"
	// IssueMissingMember is a party member reference to a record that does not exist
	IssueMissingMember IssueKind = "missing_member"
	// IssueStoredCycle is a party that reaches itself through its members
	IssueStoredCycle IssueKind = "stored_cycle"
)

// Registry names which registry an issue belongs to
type Registry string

// Registries
const (
	RegistryCharacter Registry = "character"
	RegistryParty     Registry = "party"
)

// Issue is one problem found by Scan
type Issue struct {
	Kind     IssueKind
	Registry Registry
	ID       string
	// Member is set for IssueMissingMember
	Member *entities.PartyMember
	Detail string
}

// Repairable reports whether Repair knows how to fix the issue.
// Stored cycles need a human to decide which edge to drop.
func (i Issue) Repairable() bool {
	return i.Kind != IssueStoredCycle
}

// Report is the result of a scan
type Report struct {
	CheckedCharacters int
	CheckedParties    int
	Issues            []Issue
}

// Healthy reports whether the scan found nothing
func (r *Report) Healthy() bool {
	return len(r.Issues) == 0
}

// RepairResult counts what Repair did
type RepairResult struct {
	Fixed   int
	Skipped int
}

// Config holds the dependencies for a Checker
type Config struct {
	Client redisclient.Client
	// ScanCount is the SCAN batch hint; zero lets redis choose
	ScanCount int64
}

// Validate ensures the client is set
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c == nil {
		return vb.RequiredField("config").Build()
	}
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.ScanCount < 0 {
		vb.Field("ScanCount", "must not be negative")
	}
	return vb.Build()
}

// Checker scans and repairs the registries
type Checker struct {
	client    redisclient.Client
	scanCount int64
}

// New creates a Checker
func New(cfg *Config) (*Checker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Checker{client: cfg.Client, scanCount: cfg.ScanCount}, nil
}

// Scan walks both registries. It reads only.
func (c *Checker) Scan(ctx context.Context) (*Report, error) {
	report := &Report{}

	characters, err := scanRegistry[entities.Character](ctx, c, RegistryCharacter,
		characterrepo.RedisKeyPrefix, characterrepo.RedisIndexKey, report)
	if err != nil {
		return nil, err
	}
	report.CheckedCharacters = len(characters)

	parties, err := scanRegistry[entities.Party](ctx, c, RegistryParty,
		partyrepo.RedisKeyPrefix, partyrepo.RedisIndexKey, report)
	if err != nil {
		return nil, err
	}
	report.CheckedParties = len(parties)

	for _, id := range sortedKeys(parties) {
		for _, m := range parties[id].Members {
			var ok bool
			switch m.Kind {
			case entities.MemberKindCharacter:
				_, ok = characters[m.ID]
			case entities.MemberKindParty:
				_, ok = parties[m.ID]
			}
			if !ok {
				member := m
				report.Issues = append(report.Issues, Issue{
					Kind:     IssueMissingMember,
					Registry: RegistryParty,
					ID:       id,
					Member:   &member,
					Detail:   "member " + string(m.Kind) + " " + m.ID + " does not exist",
				})
			}
		}
	}

	for _, id := range findCycles(parties) {
		report.Issues = append(report.Issues, Issue{
			Kind:     IssueStoredCycle,
			Registry: RegistryParty,
			ID:       id,
			Detail:   "party reaches itself through its members",
		})
	}

	slog.InfoContext(ctx, "registry scan complete",
		"characters", report.CheckedCharacters,
		"parties", report.CheckedParties,
		"issues", len(report.Issues))
	return report, nil
}

// record is the decode target constraint for scanRegistry
type record interface {
	entities.Character | entities.Party
}

// scanRegistry decodes every record key under prefix and cross-checks the
// index list. It returns the records that decoded cleanly, keyed by ID.
func scanRegistry[T record](ctx context.Context, c *Checker, registry Registry, prefix, indexKey string, report *Report) (map[string]*T, error) {
	found := make(map[string]*T)
	corrupt := make(map[string]bool)

	iter := c.client.Scan(ctx, 0, prefix+"*", c.scanCount).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		if key == indexKey {
			continue
		}
		id := strings.TrimPrefix(key, prefix)

		data, err := c.client.Get(ctx, key).Result()
		if err != nil {
			if redisclient.IsNil(err) {
				// deleted between SCAN and GET
				continue
			}
			return nil, errors.Wrapf(err, "failed to read %s", key)
		}

		rec := new(T)
		if err := json.Unmarshal([]byte(data), rec); err != nil {
			corrupt[id] = true
			report.Issues = append(report.Issues, Issue{
				Kind: IssueCorruptRecord, Registry: registry, ID: id, Detail: err.Error(),
			})
			continue
		}
		if storedID := entityID(rec); storedID != id {
			corrupt[id] = true
			report.Issues = append(report.Issues, Issue{
				Kind: IssueCorruptRecord, Registry: registry, ID: id,
				Detail: "stored ID " + storedID + " does not match key",
			})
			continue
		}
		found[id] = rec
	}
	if err := iter.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to scan "+string(registry)+" keys")
	}

	indexed, err := c.client.LRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", indexKey)
	}

	inIndex := make(map[string]bool, len(indexed))
	for _, id := range indexed {
		inIndex[id] = true
		if _, ok := found[id]; !ok && !corrupt[id] {
			report.Issues = append(report.Issues, Issue{
				Kind: IssueDanglingIndex, Registry: registry, ID: id,
				Detail: "indexed but no record",
			})
		}
	}
	for _, id := range sortedKeys(found) {
		if !inIndex[id] {
			report.Issues = append(report.Issues, Issue{
				Kind: IssueUnindexedRecord, Registry: registry, ID: id,
				Detail: "record missing from index",
			})
		}
	}

	return found, nil
}

func entityID[T record](rec *T) string {
	switch r := any(rec).(type) {
	case *entities.Character:
		return r.ID
	case *entities.Party:
		return r.ID
	}
	return ""
}
