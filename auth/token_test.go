package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/user/todo-go/config"
)

func newTestTokenService(t *testing.T) *TokenService {
	t.Helper()
	return NewTokenService(&config.AuthConfig{
		SecretKey: "test-secret",
		TokenTTL:  time.Hour,
	})
}

func TestTokenRoundtrip(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.Issue("alice", time.Hour)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if len(strings.Split(token, ".")) != 3 {
		t.Fatalf("token %q is not a compact three-segment encoding", token)
	}

	subject, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if subject != "alice" {
		t.Errorf("subject: got %q, want %q", subject, "alice")
	}
}

func TestTokenExpiry(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.Issue("alice", -time.Minute)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if _, err := svc.Validate(token); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("Validate of expired token: got %v, want ErrExpiredToken", err)
	}
}

func TestTokenTampering(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.Issue("alice", time.Hour)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	// Flip the first byte of the signature segment. The trailing characters
	// carry base64 padding bits a lenient decoder ignores, so the leading
	// one is the reliable spot to corrupt.
	parts := strings.Split(token, ".")
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, err := svc.Validate(tampered); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Validate of tampered token: got %v, want ErrInvalidToken", err)
	}
}

func TestTokenWrongKey(t *testing.T) {
	svc := newTestTokenService(t)
	other := NewTokenService(&config.AuthConfig{SecretKey: "other-secret", TokenTTL: time.Hour})

	token, err := other.Issue("alice", time.Hour)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if _, err := svc.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Validate of foreign-key token: got %v, want ErrInvalidToken", err)
	}
}

func TestTokenAlgorithmConfusion(t *testing.T) {
	svc := newTestTokenService(t)

	claims := jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("signing with none failed: %v", err)
	}
	if _, err := svc.Validate(unsigned); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Validate of alg=none token: got %v, want ErrInvalidToken", err)
	}
}

func TestTokenMissingSubject(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.Issue("", time.Hour)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if _, err := svc.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Validate of subject-less token: got %v, want ErrInvalidToken", err)
	}
}

func TestTokenMalformed(t *testing.T) {
	svc := newTestTokenService(t)

	for _, token := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		if _, err := svc.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Validate(%q): got %v, want ErrInvalidToken", token, err)
		}
	}
}
