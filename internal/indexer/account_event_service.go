package indexer

import (
	"context"
	"log"

	"github.com/juliavi/reaction/shared/events"
)

// AccountIndexer is the subset of GroupIndex the event service drives.
type AccountIndexer interface {
	ReindexAccount(ctx context.Context, accountID string, groups []string) error
	RemoveAccount(ctx context.Context, accountID string) error
}

// AccountEventService reacts to account change events delivered from the
// account.events stream and keeps the group search index current. It is the
// reactive half of the permission mutation path: the account service never
// calls it directly.
type AccountEventService struct {
	index AccountIndexer
}

func NewAccountEventService(index AccountIndexer) *AccountEventService {
	return &AccountEventService{index: index}
}

// HandleAccountEvent processes one delivered account event. Safe under
// duplicate delivery: every branch rewrites the index from the event's full
// account snapshot, so replays converge. Returning an error leaves the
// message un-ACKed for redelivery.
func (s *AccountEventService) HandleAccountEvent(ctx context.Context, event events.Event) error {
	switch event.Type {
	case events.AccountUpdated:
		var data events.AccountUpdatedEvent
		if err := event.DecodeData(&data); err != nil {
			return err
		}
		if !containsField(data.UpdatedFields, "groups") {
			// Some other account attribute changed; the index only cares
			// about group membership.
			return nil
		}
		log.Printf("Reindexing account %s: groups changed by %s", data.Account.ID, data.UpdatedBy)
		return s.index.ReindexAccount(ctx, data.Account.ID, data.Account.Groups)

	case events.AccountCreated:
		var data events.AccountCreatedEvent
		if err := event.DecodeData(&data); err != nil {
			return err
		}
		return s.index.ReindexAccount(ctx, data.Account.ID, data.Account.Groups)

	case events.AccountDeleted:
		var data events.AccountDeletedEvent
		if err := event.DecodeData(&data); err != nil {
			return err
		}
		return s.index.RemoveAccount(ctx, data.AccountID)
	}

	return nil
}

func containsField(fields []string, field string) bool {
	for _, f := range fields {
		if f == field {
			return true
		}
	}
	return false
}
