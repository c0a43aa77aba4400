package maintenance

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/KirkDiggler/rpg-party/internal/entities"
	"github.com/KirkDiggler/rpg-party/internal/errors"
	characterrepo "github.com/KirkDiggler/rpg-party/internal/repositories/character"
	partyrepo "github.com/KirkDiggler/rpg-party/internal/repositories/party"
)

// Repair fixes the repairable issues from a scan:
//   - corrupt records are deleted and dropped from the index
//   - dangling index entries are dropped
//   - unindexed records are appended to the index
//   - missing members are dropped from their party
//
// Stored cycles are skipped.
func (c *Checker) Repair(ctx context.Context, issues []Issue) (*RepairResult, error) {
	result := &RepairResult{}
	missing := make(map[string][]entities.PartyMember)

	for _, issue := range issues {
		if !issue.Repairable() {
			result.Skipped++
			continue
		}

		prefix, indexKey := keysFor(issue.Registry)
		var err error
		switch issue.Kind {
		case IssueCorruptRecord:
			pipe := c.client.TxPipeline()
			pipe.Del(ctx, prefix+issue.ID)
			pipe.LRem(ctx, indexKey, 0, issue.ID)
			_, err = pipe.Exec(ctx)
		case IssueDanglingIndex:
			err = c.client.LRem(ctx, indexKey, 0, issue.ID).Err()
		case IssueUnindexedRecord:
			err = c.client.RPush(ctx, indexKey, issue.ID).Err()
		case IssueMissingMember:
			if issue.Member != nil {
				missing[issue.ID] = append(missing[issue.ID], *issue.Member)
			}
			continue
		default:
			result.Skipped++
			continue
		}
		if err != nil {
			return result, errors.Wrapf(err, "failed to repair %s %s", issue.Kind, issue.ID)
		}

		slog.InfoContext(ctx, "repaired registry issue",
			"kind", issue.Kind, "registry", issue.Registry, "id", issue.ID)
		result.Fixed++
	}

	for _, partyID := range sortedKeys(missing) {
		dropped, err := c.dropMembers(ctx, partyID, missing[partyID])
		if err != nil {
			return result, err
		}
		result.Fixed += dropped
	}

	return result, nil
}

// dropMembers removes one occurrence of each listed member reference and
// returns how many were removed
func (c *Checker) dropMembers(ctx context.Context, partyID string, members []entities.PartyMember) (int, error) {
	key := partyrepo.RedisKeyPrefix + partyID
	data, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return 0, errors.Wrapf(err, "failed to read party %s", partyID)
	}

	var p entities.Party
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return 0, errors.Internalf("party %s no longer decodes: %v", partyID, err)
	}

	dropped := 0
	for _, m := range members {
		if p.RemoveMember(m) {
			dropped++
		}
	}
	if dropped == 0 {
		return 0, nil
	}

	updated, err := json.Marshal(&p)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to encode party %s", partyID)
	}
	if err := c.client.SetXX(ctx, key, updated, 0).Err(); err != nil {
		return 0, errors.Wrapf(err, "failed to save party %s", partyID)
	}

	slog.InfoContext(ctx, "dropped missing party members", "party_id", partyID, "count", dropped)
	return dropped, nil
}

func keysFor(registry Registry) (prefix, indexKey string) {
	if registry == RegistryParty {
		return partyrepo.RedisKeyPrefix, partyrepo.RedisIndexKey
	}
	return characterrepo.RedisKeyPrefix, characterrepo.RedisIndexKey
}
