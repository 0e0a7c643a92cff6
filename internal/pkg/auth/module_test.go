package auth

import (
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/polkiloo/mentorcrm/internal/config"
)

func TestNewPasswordVerifier(t *testing.T) {
	verifier, ok := newPasswordVerifier().(*BcryptVerifier)
	if !ok {
		t.Fatalf("expected *BcryptVerifier")
	}
	if verifier.cost != bcrypt.DefaultCost {
		t.Fatalf("unexpected cost: %d", verifier.cost)
	}
}

func TestNewTokenStrategy(t *testing.T) {
	strategy := newTokenStrategy(strategyParams{Config: &config.Config{JWTSecret: "top-secret"}})
	hmacStrategy, ok := strategy.(*HMACStrategy)
	if !ok {
		t.Fatalf("expected *HMACStrategy, got %T", strategy)
	}
	if string(hmacStrategy.secret) != "top-secret" {
		t.Fatalf("unexpected secret: %q", string(hmacStrategy.secret))
	}
	if hmacStrategy.ttl != 24*time.Hour {
		t.Fatalf("unexpected ttl: %s", hmacStrategy.ttl)
	}
}
