package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/polkiloo/mentorcrm/internal/domain/errors"
	"github.com/polkiloo/mentorcrm/internal/domain/model"
	pkgAuth "github.com/polkiloo/mentorcrm/internal/pkg/auth"
	"github.com/polkiloo/mentorcrm/internal/state"
)

// AuthUseCase checks operator credentials against the current snapshot.
type AuthUseCase struct {
	state     *state.State
	passwords pkgAuth.PasswordVerifier
	tokens    pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(st *state.State, passwords pkgAuth.PasswordVerifier, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{state: st, passwords: passwords, tokens: strategy}
}

// Login validates credentials and returns the operator with an auth token.
// The token subject is the operator email, which stays stable across resyncs.
func (u *AuthUseCase) Login(ctx context.Context, email, password string) (model.Operator, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return model.Operator{}, "", domainErrors.ErrInvalidCredentials
	}

	operator, ok := u.lookup(email)
	if !ok {
		return model.Operator{}, "", domainErrors.ErrInvalidCredentials
	}
	if err := u.passwords.Verify(operator.Password, password); err != nil {
		return model.Operator{}, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(operator.Email)
	if err != nil {
		return model.Operator{}, "", err
	}
	return operator, token, nil
}

// Authenticate resolves a token to the operator as currently known.
func (u *AuthUseCase) Authenticate(ctx context.Context, token string) (model.Operator, error) {
	if token == "" {
		return model.Operator{}, pkgAuth.ErrInvalidToken
	}
	email, err := u.tokens.ParseToken(token)
	if err != nil {
		return model.Operator{}, err
	}
	operator, ok := u.lookup(email)
	if !ok {
		return model.Operator{}, domainErrors.ErrInvalidCredentials
	}
	return operator, nil
}

func (u *AuthUseCase) lookup(email string) (model.Operator, bool) {
	for _, operator := range u.state.Snapshot().Operators {
		if strings.EqualFold(operator.Email, email) {
			return operator, true
		}
	}
	return model.Operator{}, false
}
