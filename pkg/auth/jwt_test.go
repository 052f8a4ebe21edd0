package auth_test

import (
	"testing"
	"time"

	"github.com/growthops/checkin-api/pkg/auth"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := auth.NewSessionToken("u-1", "staff@example.com", "general", "secret", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	claims, err := auth.Parse(token, "secret")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if claims.Sub != "u-1" || claims.Email != "staff@example.com" || claims.Role != "general" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := auth.NewSessionToken("u-1", "staff@example.com", "general", "secret", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := auth.Parse(token, "other-secret"); err == nil {
		t.Error("expected error for wrong secret")
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	token, err := auth.NewSessionToken("u-1", "staff@example.com", "general", "secret", -time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := auth.Parse(token, "secret"); err == nil {
		t.Error("expected error for expired token")
	}
}
