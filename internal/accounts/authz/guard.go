// Package authz decides whether an actor may change another record's
// permission-group memberships. The policy is deliberately strict: group
// membership is itself what confers permissions, so even self-service edits
// require an admin grant in the account's shop.
package authz

import (
	"context"
	"fmt"

	"github.com/juliavi/reaction/shared/cqrs"
	"github.com/juliavi/reaction/shared/models"
)

// Role names recognised by the guard.
const (
	RoleAdmin           = "admin"
	RoleAccountsManager = "accounts-manager"
)

// RoleStore is the grant lookup the guard runs its checks against.
type RoleStore interface {
	HasAnyRole(ctx context.Context, userID, shopID string, roles ...string) (bool, error)
}

// Guard evaluates the account-update authorization policy.
type Guard struct {
	roles RoleStore
}

func NewGuard(roles RoleStore) *Guard {
	return &Guard{roles: roles}
}

// CanUpdateGroups reports whether actor may change the group memberships of
// account. Both checks are scoped to the shop the stored account resolves to,
// not to any shop ID the caller supplied.
//
//  1. Internal platform calls are trusted and pass outright.
//  2. An actor editing an account that is not their own must hold a
//     management role in the account's shop.
//  3. In every case the actor must hold the admin role in the account's
//     shop. Self-service is not enough to grant yourself or strip away
//     permission groups.
//
// Returns cqrs.ErrForbidden when any required grant is missing, so callers
// abort before touching the store.
func (g *Guard) CanUpdateGroups(ctx context.Context, actor models.Actor, account *models.Account) error {
	if actor.Internal {
		return nil
	}

	if actor.UserID != account.ID {
		ok, err := g.roles.HasAnyRole(ctx, actor.UserID, account.ShopID, RoleAccountsManager, RoleAdmin)
		if err != nil {
			return fmt.Errorf("failed to check management grant: %w", err)
		}
		if !ok {
			return cqrs.ErrForbidden
		}
	}

	ok, err := g.roles.HasAnyRole(ctx, actor.UserID, account.ShopID, RoleAdmin)
	if err != nil {
		return fmt.Errorf("failed to check admin grant: %w", err)
	}
	if !ok {
		return cqrs.ErrForbidden
	}
	return nil
}
