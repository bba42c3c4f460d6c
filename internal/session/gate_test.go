package session_test

import (
	"testing"
	"time"

	"fitness-planner/internal/session"
)

func TestGate_VerifyCorrectCode(t *testing.T) {
	gate := session.NewGate("111222")

	if !gate.Verify("111222") {
		t.Fatal("expected verify to succeed for the shared code")
	}
	if !gate.Authenticated() {
		t.Error("expected gate to be authenticated")
	}
	if gate.ErrorMessage() != "" {
		t.Errorf("expected no error message, got %q", gate.ErrorMessage())
	}
}

func TestGate_VerifyWrongCode(t *testing.T) {
	gate := session.NewGate("111222")

	for _, candidate := range []string{"", "111223", "password", "1112220"} {
		if gate.Verify(candidate) {
			t.Fatalf("expected verify(%q) to fail", candidate)
		}
		if gate.Authenticated() {
			t.Error("expected gate to stay locked")
		}
		if gate.ErrorMessage() == "" {
			t.Error("expected a non-empty error message")
		}
	}
}

func TestGate_ErrorClearedAfterSuccess(t *testing.T) {
	gate := session.NewGate("111222")

	gate.Verify("wrong")
	if gate.ErrorMessage() == "" {
		t.Fatal("expected error message after failed verify")
	}

	gate.Verify("111222")
	if gate.ErrorMessage() != "" {
		t.Errorf("expected error cleared after success, got %q", gate.ErrorMessage())
	}
}

func TestTokenIssuer_IssueAndCheck(t *testing.T) {
	issuer := session.NewTokenIssuer("secret", time.Hour)

	token, err := issuer.Issue()
	if err != nil {
		t.Fatalf("issuing token: %v", err)
	}
	if !issuer.Check(token) {
		t.Error("expected issued token to check out")
	}
	if issuer.Check(token + "x") {
		t.Error("expected tampered token to fail")
	}

	other := session.NewTokenIssuer("different-secret", time.Hour)
	if other.Check(token) {
		t.Error("expected token signed with another secret to fail")
	}
}
