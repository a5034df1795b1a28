package command

import (
	"context"
	"log"

	"github.com/juliavi/reaction/shared/cqrs"
	"github.com/juliavi/reaction/shared/events"
	"github.com/juliavi/reaction/shared/models"
)

// AccountStore is the write-side store contract the command service mutates
// accounts through. RemoveGroups and AddGroups must be atomic per account
// row: concurrent calls on the same account may interleave freely but never
// leave a partially applied group list behind.
type AccountStore interface {
	FetchAccount(ctx context.Context, accountID string) (*models.Account, error)
	RemoveGroups(ctx context.Context, accountID string, groupIDs []string) (*models.Account, error)
	AddGroups(ctx context.Context, accountID string, groupIDs []string) (*models.Account, error)
}

// AccountGuard authorizes group-membership changes. Implementations return
// cqrs.ErrForbidden to veto the mutation.
type AccountGuard interface {
	CanUpdateGroups(ctx context.Context, actor models.Actor, account *models.Account) error
}

// ViewCacher keeps the Redis read model in sync with committed writes.
type ViewCacher interface {
	CacheAccountView(ctx context.Context, view *models.AccountView)
}

// Notifier publishes change events for downstream consumers.
type Notifier interface {
	Publish(ctx context.Context, stream, eventType string, data any) error
}

// AccountCommandService orchestrates account group-membership mutations:
// validate, fetch, authorize, write, refresh the read model, notify. Each
// call is a single attempt; retry policy belongs to the caller.
type AccountCommandService struct {
	store     AccountStore
	guard     AccountGuard
	readRepo  ViewCacher
	publisher Notifier
}

func NewAccountCommandService(
	store AccountStore,
	guard AccountGuard,
	readRepo ViewCacher,
	publisher Notifier,
) *AccountCommandService {
	return &AccountCommandService{
		store:     store,
		guard:     guard,
		readRepo:  readRepo,
		publisher: publisher,
	}
}

// RemovePermissions removes the requested permission groups from an account.
// Removal is idempotent and commutative: IDs already absent are skipped, and
// an empty group list is a valid no-op that still publishes a change event.
// Nothing is written and nothing is published unless the actor passes the
// authorization policy.
func (s *AccountCommandService) RemovePermissions(ctx context.Context, cmd cqrs.RemovePermissionsCommand) (*models.AccountView, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	account, err := s.store.FetchAccount(ctx, cmd.AccountID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.CanUpdateGroups(ctx, cmd.Actor, account); err != nil {
		return nil, err
	}

	updated, err := s.store.RemoveGroups(ctx, cmd.AccountID, cmd.Groups)
	if err != nil {
		return nil, err
	}

	return s.finishGroupsMutation(ctx, updated, cmd.Actor.UserID), nil
}

// AddPermissions adds the requested permission groups to an account, under
// the same authorization policy and event contract as RemovePermissions.
func (s *AccountCommandService) AddPermissions(ctx context.Context, cmd cqrs.AddPermissionsCommand) (*models.AccountView, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	account, err := s.store.FetchAccount(ctx, cmd.AccountID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.CanUpdateGroups(ctx, cmd.Actor, account); err != nil {
		return nil, err
	}

	updated, err := s.store.AddGroups(ctx, cmd.AccountID, cmd.Groups)
	if err != nil {
		return nil, err
	}

	return s.finishGroupsMutation(ctx, updated, cmd.Actor.UserID), nil
}

// finishGroupsMutation runs the post-commit steps: refresh the read model and
// publish account.updated. The write has already committed, so the request
// context being cancelled must not suppress the notification attempt; the
// publish runs on a detached context. Publish failures are logged, never
// surfaced; subscribers own their own recovery.
func (s *AccountCommandService) finishGroupsMutation(ctx context.Context, updated *models.Account, updatedBy string) *models.AccountView {
	notifyCtx := context.WithoutCancel(ctx)

	view := accountToView(updated)
	s.readRepo.CacheAccountView(notifyCtx, view)

	err := s.publisher.Publish(notifyCtx, events.AccountEventsStream, events.AccountUpdated, events.AccountUpdatedEvent{
		Account: events.AccountPayload{
			ID:        updated.ID,
			UserID:    updated.UserID,
			ShopID:    updated.ShopID,
			Groups:    updated.Groups,
			UpdatedAt: updated.UpdatedAt,
		},
		UpdatedBy:     updatedBy,
		UpdatedFields: []string{"groups"},
	})
	if err != nil {
		log.Printf("Failed to publish account.updated event for %s: %v", updated.ID, err)
	}

	return view
}

// accountToView converts the PostgreSQL write model to the Redis read view model.
func accountToView(a *models.Account) *models.AccountView {
	return &models.AccountView{
		ID:        a.ID,
		UserID:    a.UserID,
		ShopID:    a.ShopID,
		Groups:    a.Groups,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
