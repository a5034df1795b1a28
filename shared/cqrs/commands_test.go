package cqrs

import (
	"errors"
	"testing"
)

func TestRemovePermissionsCommandValidate(t *testing.T) {
	tests := []struct {
		name    string
		cmd     RemovePermissionsCommand
		wantErr error
	}{
		{
			name:    "valid with groups",
			cmd:     RemovePermissionsCommand{AccountID: "acc-1", UserID: "acc-1", Groups: []string{"g1", "g2"}},
			wantErr: nil,
		},
		{
			name:    "valid with empty groups",
			cmd:     RemovePermissionsCommand{AccountID: "acc-1", UserID: "acc-1"},
			wantErr: nil,
		},
		{
			name:    "missing account id",
			cmd:     RemovePermissionsCommand{UserID: "acc-1"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "blank account id",
			cmd:     RemovePermissionsCommand{AccountID: "   ", UserID: "acc-1"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missing user id",
			cmd:     RemovePermissionsCommand{AccountID: "acc-1"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "empty group element",
			cmd:     RemovePermissionsCommand{AccountID: "acc-1", UserID: "acc-1", Groups: []string{"g1", ""}},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "whitespace group element",
			cmd:     RemovePermissionsCommand{AccountID: "acc-1", UserID: "acc-1", Groups: []string{" "}},
			wantErr: ErrInvalidInput,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cmd.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestAddPermissionsCommandValidate(t *testing.T) {
	cmd := AddPermissionsCommand{AccountID: "acc-1", UserID: "acc-1", Groups: []string{""}}
	if err := cmd.Validate(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
	cmd.Groups = []string{"g1"}
	if err := cmd.Validate(); err != nil {
		t.Errorf("expected valid command, got %v", err)
	}
}
