package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	goredis "github.com/redis/go-redis/v9"

	"github.com/juliavi/reaction/shared/cqrs"
	"github.com/juliavi/reaction/shared/models"
	sharedredis "github.com/juliavi/reaction/shared/redis"
)

const accountViewKeyPrefix = "account:view:"

// AccountReadRepository handles all read operations for accounts. It treats
// Redis as the primary read store (the CQRS read model) and falls back to
// PostgreSQL transparently, warming the cache on every cold read.
type AccountReadRepository struct {
	db    *sql.DB
	cache *sharedredis.ViewCache[models.AccountView]
}

func NewAccountReadRepository(db *sql.DB, redisClient *goredis.Client) *AccountReadRepository {
	return &AccountReadRepository{
		db:    db,
		cache: sharedredis.NewViewCache[models.AccountView](redisClient, 0),
	}
}

// GetByID returns an AccountView, trying Redis first then PostgreSQL.
func (r *AccountReadRepository) GetByID(ctx context.Context, accountID string) (*models.AccountView, error) {
	cacheKey := accountViewKeyPrefix + accountID

	if view, ok := r.cache.Get(ctx, cacheKey); ok {
		return view, nil
	}

	query := `
		SELECT id, user_id, shop_id, groups, created_at, updated_at
		FROM accounts
		WHERE id = $1 AND deleted_at IS NULL
	`
	view, err := scanAccountView(r.db.QueryRowContext(ctx, query, accountID))
	if err != nil {
		return nil, err
	}

	// Warm the cache
	r.CacheAccountView(ctx, view)
	return view, nil
}

// ListByShopID returns all AccountViews for one shop from PostgreSQL.
func (r *AccountReadRepository) ListByShopID(ctx context.Context, shopID string) ([]models.AccountView, error) {
	query := `
		SELECT id, user_id, shop_id, groups, created_at, updated_at
		FROM accounts
		WHERE shop_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, shopID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var views []models.AccountView
	for rows.Next() {
		view, err := scanAccountView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, rows.Err()
}

// CacheAccountView stores or refreshes the Redis read model for an account.
// Called by the command service after every committed mutation.
func (r *AccountReadRepository) CacheAccountView(ctx context.Context, view *models.AccountView) {
	r.cache.Set(ctx, accountViewKeyPrefix+view.ID, view)
}

// InvalidateAccountView removes the Redis read model entry for an account.
// Called by the view projector when an account.deleted event arrives.
func (r *AccountReadRepository) InvalidateAccountView(ctx context.Context, accountID string) {
	r.cache.Delete(ctx, accountViewKeyPrefix+accountID)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccountView(row rowScanner) (*models.AccountView, error) {
	var view models.AccountView
	err := row.Scan(
		&view.ID, &view.UserID, &view.ShopID,
		pq.Array(&view.Groups),
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, cqrs.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan account: %w", err)
	}
	return &view, nil
}
