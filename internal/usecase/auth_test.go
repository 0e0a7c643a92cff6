package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"golang.org/x/crypto/bcrypt"

	domainErrors "github.com/polkiloo/mentorcrm/internal/domain/errors"
	"github.com/polkiloo/mentorcrm/internal/domain/model"
	"github.com/polkiloo/mentorcrm/internal/override"
	pkgAuth "github.com/polkiloo/mentorcrm/internal/pkg/auth"
	"github.com/polkiloo/mentorcrm/internal/state"
	"github.com/polkiloo/mentorcrm/internal/test"
)

func newAuthUseCase(t *testing.T, operators ...model.Operator) *AuthUseCase {
	t.Helper()
	st := state.New(override.New(0, model.OrderStatus.Equal), slog.New(slog.NewJSONHandler(io.Discard, nil)))
	st.ApplySnapshot(model.Snapshot{Operators: operators})
	return NewAuthUseCase(st, pkgAuth.NewBcryptVerifier(bcrypt.MinCost), pkgAuth.NewHMACStrategy("secret", pkgAuth.Options{}))
}

func TestLoginPlaintextPassword(t *testing.T) {
	uc := newAuthUseCase(t, operator)

	logged, token, err := uc.Login(context.Background(), "  OP@School.uz ", "123456")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logged.ID != operator.ID || token == "" {
		t.Fatalf("unexpected login result %+v %q", logged, token)
	}

	actor, err := uc.Authenticate(context.Background(), token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if actor.Email != operator.Email {
		t.Fatalf("expected token to resolve to the operator, got %+v", actor)
	}
}

func TestLoginHashedPassword(t *testing.T) {
	password := test.RandomASCIIString(10, 10)
	hash, err := pkgAuth.NewBcryptVerifier(bcrypt.MinCost).Hash(password)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	hashed := admin
	hashed.Password = hash
	uc := newAuthUseCase(t, hashed)

	if _, _, err := uc.Login(context.Background(), admin.Email, password); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := uc.Login(context.Background(), admin.Email, hash); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected the hash itself to be rejected, got %v", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	uc := newAuthUseCase(t, operator)

	cases := map[string][2]string{
		"wrong password": {operator.Email, "654321"},
		"unknown email":  {"ghost@school.uz", "123456"},
		"empty password": {operator.Email, ""},
		"empty email":    {"", "123456"},
	}
	for name, creds := range cases {
		t.Run(name, func(t *testing.T) {
			if _, _, err := uc.Login(context.Background(), creds[0], creds[1]); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestAuthenticateRejectsInvalidTokens(t *testing.T) {
	uc := newAuthUseCase(t, operator)

	if _, err := uc.Authenticate(context.Background(), ""); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if _, err := uc.Authenticate(context.Background(), "garbage"); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}

	token, err := pkgAuth.NewHMACStrategy("secret", pkgAuth.Options{}).IssueToken("gone@school.uz")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if _, err := uc.Authenticate(context.Background(), token); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected operators missing from the snapshot to be rejected, got %v", err)
	}
}
