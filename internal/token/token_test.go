package token

import (
	"testing"
	"time"
)

func TestCreateValidateRoundTrip(t *testing.T) {
	svc := New("test-secret", "relata", time.Hour)

	signed, err := svc.Create("u1")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	claims, err := svc.Validate(signed)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims.UserID != "u1" {
		t.Fatalf("expected uid u1 got %s", claims.UserID)
	}
	if claims.Issuer != "relata" {
		t.Fatalf("expected issuer relata got %s", claims.Issuer)
	}
}

func TestValidateRejectsExpired(t *testing.T) {
	svc := New("test-secret", "relata", -time.Minute)

	signed, err := svc.Create("u1")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Validate(signed); err == nil {
		t.Fatalf("expected expired token to be rejected")
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	signed, err := New("secret-a", "relata", time.Hour).Create("u1")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := New("secret-b", "relata", time.Hour).Validate(signed); err == nil {
		t.Fatalf("expected signature mismatch to be rejected")
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	if _, err := New("secret", "relata", time.Hour).Validate("not.a.jwt"); err == nil {
		t.Fatalf("expected malformed token to be rejected")
	}
}
