package models

import "time"

// AccountView is the read-optimised projection of an account, served from the
// Redis read model. UserID is populated for ownership checks but is also part
// of the API response here: callers legitimately need to know which user an
// account record belongs to when administering groups.
type AccountView struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ShopID    string    `json:"shopId"`
	Groups    []string  `json:"groups"`
	CreatedAt time.Time `json:"createdTimestamp"`
	UpdatedAt time.Time `json:"updatedTimestamp"`
}

// GroupMembersView lists the account IDs currently indexed as members of a
// permission group. Built from the search index, not the write store, so it
// is eventually consistent with recent mutations.
type GroupMembersView struct {
	GroupID  string   `json:"groupId"`
	Accounts []string `json:"accounts"`
}
