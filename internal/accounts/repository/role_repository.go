package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

// RoleRepository reads shop-scoped role grants. Grants are written by the
// platform's group administration flows; this service only ever consults
// them for authorization decisions.
type RoleRepository struct {
	db *sql.DB
}

func NewRoleRepository(db *sql.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

// HasAnyRole reports whether the user holds at least one of the given roles
// within the given shop.
func (r *RoleRepository) HasAnyRole(ctx context.Context, userID, shopID string, roles ...string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM role_grants
			WHERE user_id = $1 AND shop_id = $2 AND role = ANY($3)
		)
	`
	var granted bool
	err := r.db.QueryRowContext(ctx, query, userID, shopID, pq.Array(roles)).Scan(&granted)
	if err != nil {
		return false, fmt.Errorf("failed to check role grants: %w", err)
	}
	return granted, nil
}
