package authz

import (
	"context"
	"errors"
	"testing"

	"github.com/juliavi/reaction/shared/cqrs"
	"github.com/juliavi/reaction/shared/models"
)

// grantKey is "userID/shopID".
type stubRoleStore struct {
	grants map[string][]string
	err    error
}

func (s *stubRoleStore) HasAnyRole(_ context.Context, userID, shopID string, roles ...string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	held := s.grants[userID+"/"+shopID]
	for _, want := range roles {
		for _, have := range held {
			if want == have {
				return true, nil
			}
		}
	}
	return false, nil
}

func TestCanUpdateGroups(t *testing.T) {
	account := &models.Account{ID: "A1", UserID: "A1", ShopID: "S1"}

	tests := []struct {
		name    string
		actor   models.Actor
		grants  map[string][]string
		wantErr error
	}{
		{
			name:    "internal call passes with no grants",
			actor:   models.Actor{UserID: "svc-core", Internal: true},
			wantErr: nil,
		},
		{
			name:    "self-service without admin grant is forbidden",
			actor:   models.Actor{UserID: "A1"},
			wantErr: cqrs.ErrForbidden,
		},
		{
			name:    "self-service with admin grant passes",
			actor:   models.Actor{UserID: "A1"},
			grants:  map[string][]string{"A1/S1": {RoleAdmin}},
			wantErr: nil,
		},
		{
			name:    "other account without any grant is forbidden",
			actor:   models.Actor{UserID: "U2"},
			wantErr: cqrs.ErrForbidden,
		},
		{
			name:  "other account with manager grant only still lacks admin",
			actor: models.Actor{UserID: "U2"},
			grants: map[string][]string{
				"U2/S1": {RoleAccountsManager},
			},
			wantErr: cqrs.ErrForbidden,
		},
		{
			name:    "other account with admin grant passes",
			actor:   models.Actor{UserID: "U2"},
			grants:  map[string][]string{"U2/S1": {RoleAdmin}},
			wantErr: nil,
		},
		{
			name:  "admin grant in the wrong shop is forbidden",
			actor: models.Actor{UserID: "U2"},
			grants: map[string][]string{
				"U2/S2": {RoleAdmin},
			},
			wantErr: cqrs.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guard := NewGuard(&stubRoleStore{grants: tt.grants})
			err := guard.CanUpdateGroups(context.Background(), tt.actor, account)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestCanUpdateGroups_RoleStoreError(t *testing.T) {
	storeErr := errors.New("db down")
	guard := NewGuard(&stubRoleStore{err: storeErr})

	err := guard.CanUpdateGroups(context.Background(),
		models.Actor{UserID: "A1"},
		&models.Account{ID: "A1", UserID: "A1", ShopID: "S1"})
	if !errors.Is(err, storeErr) {
		t.Errorf("expected wrapped store error, got %v", err)
	}
	if errors.Is(err, cqrs.ErrForbidden) {
		t.Errorf("store failures must not masquerade as authorization denials")
	}
}
