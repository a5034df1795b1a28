package events

import (
	"encoding/json"
	"fmt"
	"time"
)

// Event types
const (
	AccountCreated = "account.created"
	AccountUpdated = "account.updated"
	AccountDeleted = "account.deleted"
)

// Stream names
const (
	AccountEventsStream = "account.events"
)

// Event is the envelope every published message is wrapped in. ID is assigned
// by the publisher and lets consumers deduplicate under at-least-once
// delivery.
type Event struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

// DecodeData unmarshals the envelope's Data into v. After transport the
// payload arrives as a generic map, so it has to take a round trip through
// JSON to land in a typed struct.
func (e Event) DecodeData(v any) error {
	raw, err := json.Marshal(e.Data)
	if err != nil {
		return fmt.Errorf("failed to re-marshal event data: %w", err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("failed to unmarshal %s event data: %w", e.Type, err)
	}
	return nil
}

// AccountPayload is the account snapshot carried inside account events. It is
// the full post-mutation state, not a delta, so consumers can rebuild their
// projections from any single event without replaying history.
type AccountPayload struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ShopID    string    `json:"shopId"`
	Groups    []string  `json:"groups"`
	UpdatedAt time.Time `json:"updatedTimestamp"`
}

// AccountUpdatedEvent announces a committed change to an account record.
// UpdatedFields names the fields that changed; consumers such as the search
// indexer use it to decide whether they need to react at all.
type AccountUpdatedEvent struct {
	Account       AccountPayload `json:"account"`
	UpdatedBy     string         `json:"updatedBy"`
	UpdatedFields []string       `json:"updatedFields"`
}

// AccountCreatedEvent announces a newly provisioned account.
type AccountCreatedEvent struct {
	Account AccountPayload `json:"account"`
}

// AccountDeletedEvent announces a removed account.
type AccountDeletedEvent struct {
	AccountID string `json:"accountId"`
	ShopID    string `json:"shopId"`
}
