// Package indexer maintains the permission-group search index: Redis sets
// mapping every group to its member accounts. The index is derived state,
// rebuilt entry by entry from account change events, and is the only thing
// the "which accounts are in group X" queries read.
package indexer

import (
	"context"
	"fmt"
	"sort"

	goredis "github.com/redis/go-redis/v9"
)

const (
	groupMembersKeyPrefix  = "index:group:"
	accountGroupsKeyPrefix = "index:account:"
)

// GroupIndex stores group membership in two directions: one set of account
// IDs per group, and one set of group IDs per account. The reverse set is
// what lets a reindex find and drop memberships the account no longer holds.
type GroupIndex struct {
	client *goredis.Client
}

func NewGroupIndex(client *goredis.Client) *GroupIndex {
	return &GroupIndex{client: client}
}

// ReindexAccount replaces the indexed group memberships for one account with
// the given set. The replacement is computed against the previously indexed
// set, so replaying the same event converges instead of corrupting the
// index; duplicate delivery is therefore harmless.
func (i *GroupIndex) ReindexAccount(ctx context.Context, accountID string, groups []string) error {
	reverseKey := accountGroupsKeyPrefix + accountID

	previous, err := i.client.SMembers(ctx, reverseKey).Result()
	if err != nil {
		return fmt.Errorf("failed to read indexed groups for account %s: %w", accountID, err)
	}

	current := make(map[string]bool, len(groups))
	for _, g := range groups {
		current[g] = true
	}

	pipe := i.client.TxPipeline()
	for _, g := range previous {
		if !current[g] {
			pipe.SRem(ctx, groupMembersKeyPrefix+g, accountID)
			pipe.SRem(ctx, reverseKey, g)
		}
	}
	for g := range current {
		pipe.SAdd(ctx, groupMembersKeyPrefix+g, accountID)
		pipe.SAdd(ctx, reverseKey, g)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to reindex account %s: %w", accountID, err)
	}
	return nil
}

// RemoveAccount drops every indexed membership for an account.
func (i *GroupIndex) RemoveAccount(ctx context.Context, accountID string) error {
	return i.ReindexAccount(ctx, accountID, nil)
}

// Members returns the sorted account IDs indexed under a group.
func (i *GroupIndex) Members(ctx context.Context, groupID string) ([]string, error) {
	members, err := i.client.SMembers(ctx, groupMembersKeyPrefix+groupID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read group members for %s: %w", groupID, err)
	}
	sort.Strings(members)
	return members, nil
}
