package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/juliavi/reaction/shared/cqrs"
	"github.com/juliavi/reaction/shared/models"
)

// AccountWriteRepository handles all state-mutating operations on account
// records. It operates exclusively against the PostgreSQL write store
// (source of truth); the Redis read model is refreshed by the command layer.
type AccountWriteRepository struct {
	db *sql.DB
}

func NewAccountWriteRepository(db *sql.DB) *AccountWriteRepository {
	return &AccountWriteRepository{db: db}
}

// FetchAccount returns the full write model for one account, including
// ShopID, which the authorization guard evaluates its checks against.
func (r *AccountWriteRepository) FetchAccount(ctx context.Context, accountID string) (*models.Account, error) {
	query := `
		SELECT id, user_id, shop_id, groups, created_at, updated_at
		FROM accounts
		WHERE id = $1 AND deleted_at IS NULL
	`
	var account models.Account
	err := r.db.QueryRowContext(ctx, query, accountID).Scan(
		&account.ID, &account.UserID, &account.ShopID,
		pq.Array(&account.Groups),
		&account.CreatedAt, &account.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, cqrs.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}
	return &account, nil
}

// RemoveGroups removes every ID in groupIDs from the account's groups set in
// a single UPDATE and returns the updated row. The set difference is computed
// inside the statement, so concurrent removals on the same account compose:
// each one only ever strips its own IDs, never overwrites the whole array.
// Removing an ID the account does not hold is a no-op.
func (r *AccountWriteRepository) RemoveGroups(ctx context.Context, accountID string, groupIDs []string) (*models.Account, error) {
	query := `
		UPDATE accounts
		SET groups = ARRAY(
			SELECT g FROM UNNEST(groups) AS g
			EXCEPT
			SELECT d FROM UNNEST($2::text[]) AS d
		),
		updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id, user_id, shop_id, groups, created_at, updated_at
	`
	return r.updateGroups(ctx, query, accountID, groupIDs)
}

// AddGroups adds every ID in groupIDs to the account's groups set in a single
// UPDATE and returns the updated row. DISTINCT keeps the stored array
// duplicate-free even when an ID is already present.
func (r *AccountWriteRepository) AddGroups(ctx context.Context, accountID string, groupIDs []string) (*models.Account, error) {
	query := `
		UPDATE accounts
		SET groups = ARRAY(
			SELECT DISTINCT g FROM UNNEST(groups || $2::text[]) AS g
		),
		updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING id, user_id, shop_id, groups, created_at, updated_at
	`
	return r.updateGroups(ctx, query, accountID, groupIDs)
}

func (r *AccountWriteRepository) updateGroups(ctx context.Context, query, accountID string, groupIDs []string) (*models.Account, error) {
	var account models.Account
	err := r.db.QueryRowContext(ctx, query, accountID, pq.Array(groupIDs)).Scan(
		&account.ID, &account.UserID, &account.ShopID,
		pq.Array(&account.Groups),
		&account.CreatedAt, &account.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		// The account existed at read time but is gone at write time.
		return nil, cqrs.ErrUpdateFailed
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update account groups: %w", err)
	}
	return &account, nil
}
