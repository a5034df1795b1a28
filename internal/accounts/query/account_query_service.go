package query

import (
	"context"

	"github.com/juliavi/reaction/shared/cqrs"
	"github.com/juliavi/reaction/shared/models"
)

// AccountReader is the read-model access the query service is built on.
type AccountReader interface {
	GetByID(ctx context.Context, accountID string) (*models.AccountView, error)
	ListByShopID(ctx context.Context, shopID string) ([]models.AccountView, error)
}

// GroupMemberReader lists the account IDs indexed under a permission group.
type GroupMemberReader interface {
	Members(ctx context.Context, groupID string) ([]string, error)
}

// AccountQueryService serves account projections from the read model and
// group memberships from the search index. It never touches the write path.
type AccountQueryService struct {
	readRepo AccountReader
	index    GroupMemberReader
}

func NewAccountQueryService(readRepo AccountReader, index GroupMemberReader) *AccountQueryService {
	return &AccountQueryService{readRepo: readRepo, index: index}
}

// GetAccount fetches a single account view.
func (s *AccountQueryService) GetAccount(ctx context.Context, q cqrs.GetAccountQuery) (*models.AccountView, error) {
	return s.readRepo.GetByID(ctx, q.AccountID)
}

// ListAccountsByShop fetches every account view in one shop.
func (s *AccountQueryService) ListAccountsByShop(ctx context.Context, q cqrs.ListAccountsByShopQuery) ([]models.AccountView, error) {
	return s.readRepo.ListByShopID(ctx, q.ShopID)
}

// ListGroupMembers returns the accounts currently indexed as members of a
// group. The index is rebuilt from account.updated events, so this view is
// eventually consistent with the write store.
func (s *AccountQueryService) ListGroupMembers(ctx context.Context, q cqrs.ListGroupMembersQuery) (*models.GroupMembersView, error) {
	accounts, err := s.index.Members(ctx, q.GroupID)
	if err != nil {
		return nil, err
	}
	return &models.GroupMembersView{GroupID: q.GroupID, Accounts: accounts}, nil
}
