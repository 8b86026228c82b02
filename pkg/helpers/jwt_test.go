package helpers

import (
	"strings"
	"testing"
	"time"
)

func TestJWTGenerateAndParse(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("super-secret", 7*24*time.Hour)
	tok, exp, err := m.Generate("user-123")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if !exp.After(time.Now().Add(6 * 24 * time.Hour)) {
		t.Fatalf("expiry %v not ~7 days out", exp)
	}

	uid, err := m.Parse(tok)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if uid != "user-123" {
		t.Fatalf("userID mismatch: got %q want %q", uid, "user-123")
	}
}

func TestJWTParse_Expired(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("secret", -time.Second)
	tok, _, err := m.Generate("u1")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if _, err := m.Parse(tok); err != ErrExpiredToken {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestJWTParse_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, _, err := NewJWTManager("right-secret", time.Hour).Generate("u2")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if _, err := NewJWTManager("wrong-secret", time.Hour).Parse(tok); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTParse_Tampered(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("secret", time.Hour)
	tok, _, err := m.Generate("u3")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	// Flip a byte in the payload segment.
	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", tok)
	}
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]
	if _, err := m.Parse(tampered); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTParse_Malformed(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("secret", time.Hour)
	if _, err := m.Parse("not.a.jwt"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
