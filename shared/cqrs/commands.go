package cqrs

import (
	"strings"

	"github.com/juliavi/reaction/shared/models"
)

// RemovePermissionsCommand removes the given permission groups from an
// account. Removing a group the account is not a member of is a no-op, and an
// empty Groups slice is valid (the update still runs and still emits a change
// event). ShopID is the shop the caller is operating in; authorization is
// evaluated against the shop resolved from the stored account.
type RemovePermissionsCommand struct {
	AccountID string
	UserID    string
	ShopID    string
	Groups    []string
	Actor     models.Actor
}

// Validate checks the command's shape before any side effect occurs. It
// duplicates what HTTP-level binding already enforces so that the command
// service is safe to call from non-HTTP entry points (event handlers, jobs).
func (c RemovePermissionsCommand) Validate() error {
	return validatePermissionsInput(c.AccountID, c.UserID, c.Groups)
}

// AddPermissionsCommand adds the given permission groups to an account.
// Adding a group the account already belongs to is a no-op; the stored set
// never holds duplicates.
type AddPermissionsCommand struct {
	AccountID string
	UserID    string
	ShopID    string
	Groups    []string
	Actor     models.Actor
}

func (c AddPermissionsCommand) Validate() error {
	return validatePermissionsInput(c.AccountID, c.UserID, c.Groups)
}

func validatePermissionsInput(accountID, userID string, groups []string) error {
	if strings.TrimSpace(accountID) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(userID) == "" {
		return ErrInvalidInput
	}
	for _, g := range groups {
		if strings.TrimSpace(g) == "" {
			return ErrInvalidInput
		}
	}
	return nil
}
