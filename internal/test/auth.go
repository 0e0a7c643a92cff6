package test

import (
	"context"
	"errors"

	"github.com/polkiloo/mentorcrm/internal/domain/model"
	pkgAuth "github.com/polkiloo/mentorcrm/internal/pkg/auth"
)

// PasswordVerifierStub compares passwords verbatim unless overridden.
type PasswordVerifierStub struct {
	VerifyFn func(stored, password string) error
}

// Verify checks password against stored.
func (v PasswordVerifierStub) Verify(stored, password string) error {
	if v.VerifyFn != nil {
		return v.VerifyFn(stored, password)
	}
	if stored != password {
		return errors.New("mismatch")
	}
	return nil
}

// StrategyStub issues and parses tokens via function overrides.
type StrategyStub struct {
	IssueFn func(string) (string, error)
	ParseFn func(string) (string, error)
	NameVal string
}

// IssueToken returns "token:<subject>" unless overridden.
func (s StrategyStub) IssueToken(subject string) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(subject)
	}
	return "token:" + subject, nil
}

// ParseToken reverses IssueToken unless overridden.
func (s StrategyStub) ParseToken(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	const prefix = "token:"
	if len(token) <= len(prefix) || token[:len(prefix)] != prefix {
		return "", pkgAuth.ErrInvalidToken
	}
	return token[len(prefix):], nil
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

// AuthenticatorStub resolves tokens for middleware tests.
type AuthenticatorStub struct {
	Operator model.Operator
	Err      error
	Fn       func(context.Context, string) (model.Operator, error)
}

// Authenticate returns the configured operator or error.
func (a AuthenticatorStub) Authenticate(ctx context.Context, token string) (model.Operator, error) {
	if a.Fn != nil {
		return a.Fn(ctx, token)
	}
	return a.Operator, a.Err
}

var _ pkgAuth.PasswordVerifier = PasswordVerifierStub{}
var _ pkgAuth.Strategy = StrategyStub{}
