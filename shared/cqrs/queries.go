package cqrs

// GetAccountQuery fetches a single account view by ID.
type GetAccountQuery struct {
	AccountID string
}

// ListAccountsByShopQuery fetches all account views for one shop.
type ListAccountsByShopQuery struct {
	ShopID string
}

// ListGroupMembersQuery fetches the account IDs indexed under a permission
// group. Served from the search index, so results trail the write store by
// at most one event delivery.
type ListGroupMembersQuery struct {
	GroupID string
}
