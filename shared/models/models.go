package models

import "time"

// Account is a shop-scoped identity record. Groups holds the IDs of the
// permission groups the account currently belongs to; membership in a group
// is what confers its permissions, so Groups is the sensitive field here.
// The column-level update expressions in the repository keep it duplicate-free.
type Account struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ShopID    string    `json:"shopId"`
	Groups    []string  `json:"groups"`
	CreatedAt time.Time `json:"createdTimestamp"`
	UpdatedAt time.Time `json:"updatedTimestamp"`
}

// Actor is the authenticated identity performing a request. It is built once
// by the auth middleware from verified token claims and passed by value into
// the command/query layer; nothing mutates it afterwards.
//
// Internal marks calls originating from the platform's own services. Internal
// callers are exempt from the self-identity ownership check but not from the
// admin elevation requirement.
type Actor struct {
	UserID   string
	Internal bool
}

// RoleGrant assigns a named role to a user within one shop. Roles are flat
// strings ("admin", "accounts-manager"); shop scoping is the tenant boundary
// every authorization decision is evaluated against.
type RoleGrant struct {
	UserID    string    `json:"userId"`
	ShopID    string    `json:"shopId"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdTimestamp"`
}
