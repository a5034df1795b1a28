package projection

import (
	"context"
	"log"

	"github.com/juliavi/reaction/shared/events"
)

// ViewInvalidator is the slice of the read repository the projector needs:
// dropping one account's cached view.
type ViewInvalidator interface {
	InvalidateAccountView(ctx context.Context, accountID string)
}

// AccountViewProjector keeps the Redis account views consistent with account
// lifecycle events. Mutations made through the command service refresh their
// own view inline; deletions arrive only as account.deleted events, so the
// projector is what evicts the stale view.
type AccountViewProjector struct {
	views ViewInvalidator
}

func NewAccountViewProjector(views ViewInvalidator) *AccountViewProjector {
	return &AccountViewProjector{views: views}
}

// HandleAccountEvent processes one delivered account event. Eviction is
// idempotent, so duplicate delivery is harmless.
func (p *AccountViewProjector) HandleAccountEvent(ctx context.Context, event events.Event) error {
	if event.Type != events.AccountDeleted {
		return nil
	}
	var data events.AccountDeletedEvent
	if err := event.DecodeData(&data); err != nil {
		return err
	}
	log.Printf("Evicting view for deleted account %s", data.AccountID)
	p.views.InvalidateAccountView(ctx, data.AccountID)
	return nil
}
