package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"picstash/internal/auth"
	"picstash/internal/domain"
)

func newIdentityFixture(t *testing.T) (*IdentityService, *auth.Tokens) {
	t.Helper()
	tokens := auth.NewTokens("test-secret", time.Hour)
	return NewIdentityService(newFakeUserRepo(), tokens, testLogger()), tokens
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{name: "valid", username: "alice", password: "s3cret"},
		{name: "empty username", username: "", password: "s3cret", wantErr: domain.ErrValidation},
		{name: "empty password", username: "alice", password: "", wantErr: domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newIdentityFixture(t)
			user, err := svc.Register(context.Background(), &RegisterRequest{
				Username: tt.username,
				Password: tt.password,
			})

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Register() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Register() failed: %v", err)
			}
			if user.ID == "" {
				t.Error("Register() returned empty user ID")
			}
			if user.PasswordHash == tt.password {
				t.Error("password stored in plaintext")
			}
		})
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newIdentityFixture(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, &RegisterRequest{Username: "alice", Password: "one"}); err != nil {
		t.Fatalf("first Register() failed: %v", err)
	}

	_, err := svc.Register(ctx, &RegisterRequest{Username: "alice", Password: "two"})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("second Register() error = %v, want ErrConflict", err)
	}
}

func TestLogin(t *testing.T) {
	svc, tokens := newIdentityFixture(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, &RegisterRequest{Username: "alice", Password: "s3cret"})
	if err != nil {
		t.Fatalf("Register() failed: %v", err)
	}

	token, err := svc.Login(ctx, "alice", "s3cret")
	if err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	userID, err := tokens.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken() failed: %v", err)
	}
	if userID != user.ID {
		t.Errorf("token subject = %q, want %q", userID, user.ID)
	}

	// Wrong password and unknown username are indistinguishable
	if _, err := svc.Login(ctx, "alice", "wrong"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("Login(wrong password) error = %v, want ErrUnauthorized", err)
	}
	if _, err := svc.Login(ctx, "nobody", "s3cret"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("Login(unknown user) error = %v, want ErrUnauthorized", err)
	}
}
