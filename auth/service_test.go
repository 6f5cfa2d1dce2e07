package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/user/todo-go/apperror"
	"github.com/user/todo-go/config"
)

// fakeProvisioner records which usernames were provisioned.
type fakeProvisioner struct {
	ensured []string
}

func (f *fakeProvisioner) Ensure(username string) {
	f.ensured = append(f.ensured, username)
}

func newTestService(t *testing.T) (*Service, *fakeProvisioner) {
	t.Helper()
	tokens := NewTokenService(&config.AuthConfig{
		SecretKey: "test-secret",
		TokenTTL:  time.Hour,
	})
	prov := &fakeProvisioner{}
	return NewService(NewCredentialStore(), NewHasher(), tokens, prov), prov
}

func TestRegisterThenLogin(t *testing.T) {
	svc, prov := newTestService(t)

	user, err := svc.Register("alice", "password1")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.Username != "alice" {
		t.Errorf("Username: got %q, want %q", user.Username, "alice")
	}
	if len(prov.ensured) != 1 || prov.ensured[0] != "alice" {
		t.Errorf("todo collection provisioned for %v, want [alice]", prov.ensured)
	}

	resp, err := svc.Login("alice", "password1")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.TokenType != "bearer" {
		t.Errorf("TokenType: got %q, want %q", resp.TokenType, "bearer")
	}

	subject, err := svc.Resolve(resp.AccessToken)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if subject != "alice" {
		t.Errorf("Resolve subject: got %q, want %q", subject, "alice")
	}
}

func TestRegisterTrimsUsername(t *testing.T) {
	svc, _ := newTestService(t)

	user, err := svc.Register("  alice  ", "password1")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.Username != "alice" {
		t.Errorf("Username: got %q, want trimmed %q", user.Username, "alice")
	}

	// The padded variant now collides with the stored name.
	if _, err := svc.Register("alice", "password2"); !apperror.IsConflictError(err) {
		t.Errorf("Register duplicate: got %v, want ConflictError", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
	}{
		{"username too short", "ab", "password1"},
		{"username whitespace only", "    ", "password1"},
		{"username too long", strings.Repeat("a", 51), "password1"},
		{"password too short", "alice", "abc"},
		{"password too long", "alice", strings.Repeat("p", 129)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(t)
			if _, err := svc.Register(tt.username, tt.password); !apperror.IsValidationError(err) {
				t.Errorf("Register(%q, %q): got %v, want ValidationError", tt.username, tt.password, err)
			}
		})
	}
}

func TestRegisterBoundaryLengths(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.Register("abc", "abcd"); err != nil {
		t.Errorf("Register at minimum lengths failed: %v", err)
	}
	if _, err := svc.Register(strings.Repeat("u", 50), strings.Repeat("p", 128)); err != nil {
		t.Errorf("Register at maximum lengths failed: %v", err)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.Register("alice", "password1"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, wrongPassword := svc.Login("alice", "not-the-password")
	_, unknownUser := svc.Login("bob", "password1")

	if !apperror.IsAuthError(wrongPassword) {
		t.Fatalf("wrong password: got %v, want AuthError", wrongPassword)
	}
	if !apperror.IsAuthError(unknownUser) {
		t.Fatalf("unknown user: got %v, want AuthError", unknownUser)
	}
	if wrongPassword.Error() != unknownUser.Error() {
		t.Errorf("login failures differ: %q vs %q", wrongPassword.Error(), unknownUser.Error())
	}
}

func TestResolveRejectsUnknownSubject(t *testing.T) {
	svc, _ := newTestService(t)

	// A structurally valid token whose subject was never registered.
	token, err := svc.tokens.Issue("ghost", time.Hour)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if _, err := svc.Resolve(token); !apperror.IsAuthError(err) {
		t.Errorf("Resolve: got %v, want AuthError", err)
	}
}

func TestResolveRejectsExpiredToken(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.Register("alice", "password1"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	token, err := svc.tokens.Issue("alice", -time.Minute)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if _, err := svc.Resolve(token); !apperror.IsAuthError(err) {
		t.Errorf("Resolve of expired token: got %v, want AuthError", err)
	}
}

func TestResolveRejectsGarbage(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.Resolve("not-a-token"); !apperror.IsAuthError(err) {
		t.Errorf("Resolve: got %v, want AuthError", err)
	}
}
