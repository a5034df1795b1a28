package indexer

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/juliavi/reaction/shared/events"
)

type indexCall struct {
	accountID string
	groups    []string
	removed   bool
}

type fakeIndex struct {
	calls []indexCall
	err   error
}

func (f *fakeIndex) ReindexAccount(_ context.Context, accountID string, groups []string) error {
	if f.err != nil {
		return f.err
	}
	f.calls = append(f.calls, indexCall{accountID: accountID, groups: groups})
	return nil
}

func (f *fakeIndex) RemoveAccount(_ context.Context, accountID string) error {
	if f.err != nil {
		return f.err
	}
	f.calls = append(f.calls, indexCall{accountID: accountID, removed: true})
	return nil
}

func accountUpdatedEvent(updatedFields []string, groups ...string) events.Event {
	// Round-trip through the envelope the way the subscriber would see it:
	// Data arrives as a generic map after JSON transport.
	return events.Event{
		ID:        "evt-1",
		Type:      events.AccountUpdated,
		Timestamp: time.Now().UTC(),
		Data: map[string]any{
			"account": map[string]any{
				"id":     "acc-001",
				"userId": "acc-001",
				"shopId": "shop-001",
				"groups": groups,
			},
			"updatedBy":     "usr-admin",
			"updatedFields": updatedFields,
		},
	}
}

func TestHandleAccountEvent_GroupsChanged(t *testing.T) {
	index := &fakeIndex{}
	svc := NewAccountEventService(index)

	err := svc.HandleAccountEvent(context.Background(), accountUpdatedEvent([]string{"groups"}, "g1", "g3"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(index.calls) != 1 {
		t.Fatalf("expected 1 reindex call, got %d", len(index.calls))
	}
	call := index.calls[0]
	if call.accountID != "acc-001" || call.removed {
		t.Errorf("unexpected call %+v", call)
	}
	if want := []string{"g1", "g3"}; !reflect.DeepEqual(call.groups, want) {
		t.Errorf("expected groups %v, got %v", want, call.groups)
	}
}

func TestHandleAccountEvent_IgnoresNonGroupUpdates(t *testing.T) {
	index := &fakeIndex{}
	svc := NewAccountEventService(index)

	err := svc.HandleAccountEvent(context.Background(), accountUpdatedEvent([]string{"name"}, "g1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(index.calls) != 0 {
		t.Errorf("expected no reindex for non-group update, got %d calls", len(index.calls))
	}
}

func TestHandleAccountEvent_IgnoresUnknownEventTypes(t *testing.T) {
	index := &fakeIndex{}
	svc := NewAccountEventService(index)

	err := svc.HandleAccountEvent(context.Background(), events.Event{Type: "shop.updated"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(index.calls) != 0 {
		t.Errorf("expected no calls for unrelated events, got %d", len(index.calls))
	}
}

func TestHandleAccountEvent_AccountDeleted(t *testing.T) {
	index := &fakeIndex{}
	svc := NewAccountEventService(index)

	err := svc.HandleAccountEvent(context.Background(), events.Event{
		Type: events.AccountDeleted,
		Data: map[string]any{"accountId": "acc-001", "shopId": "shop-001"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(index.calls) != 1 || !index.calls[0].removed {
		t.Fatalf("expected 1 removal call, got %+v", index.calls)
	}
}

func TestHandleAccountEvent_IndexErrorPropagates(t *testing.T) {
	indexErr := errors.New("redis down")
	svc := NewAccountEventService(&fakeIndex{err: indexErr})

	// A failed reindex must surface so the message stays un-ACKed and gets
	// redelivered.
	err := svc.HandleAccountEvent(context.Background(), accountUpdatedEvent([]string{"groups"}, "g1"))
	if !errors.Is(err, indexErr) {
		t.Errorf("expected index error to propagate, got %v", err)
	}
}
