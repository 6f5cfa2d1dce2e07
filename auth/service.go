package auth

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/user/todo-go/apperror"
)

// Username and password bounds. The HTTP layer validates request payloads
// against the same bounds, but the service enforces them again so the
// contract holds even when the boundary is bypassed (tests, future
// transports).
const (
	minUsernameLen = 3
	maxUsernameLen = 50
	minPasswordLen = 4
	maxPasswordLen = 128
)

// TodoProvisioner creates the empty todo collection for a newly registered
// account.
type TodoProvisioner interface {
	Ensure(username string)
}

// Service composes the credential store, the password hasher and the token
// service into the register, login and resolve operations that the HTTP
// layer exposes.
type Service struct {
	store  *CredentialStore
	hasher *Hasher
	tokens *TokenService
	todos  TodoProvisioner
}

// NewService creates a new auth Service. Dependencies are injected so tests
// can build a fresh, isolated instance per case.
func NewService(store *CredentialStore, hasher *Hasher, tokens *TokenService, todos TodoProvisioner) *Service {
	return &Service{
		store:  store,
		hasher: hasher,
		tokens: tokens,
		todos:  todos,
	}
}

// Register creates a new account. The username is trimmed before the length
// check so padded submissions cannot smuggle short or colliding names.
func (s *Service) Register(username, password string) (*User, error) {
	username = strings.TrimSpace(username)
	if n := utf8.RuneCountInString(username); n < minUsernameLen || n > maxUsernameLen {
		return nil, apperror.NewValidationError(
			fmt.Sprintf("username must be between %d and %d characters", minUsernameLen, maxUsernameLen), nil)
	}
	if n := utf8.RuneCountInString(password); n < minPasswordLen || n > maxPasswordLen {
		return nil, apperror.NewValidationError(
			fmt.Sprintf("password must be between %d and %d characters", minPasswordLen, maxPasswordLen), nil)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, apperror.NewInternalError("failed to hash password", err)
	}

	if err := s.store.Register(username, hash); err != nil {
		if errors.Is(err, ErrUserExists) {
			return nil, apperror.NewConflictError("username already exists", nil)
		}
		return nil, apperror.NewInternalError("failed to store credentials", err)
	}

	if s.todos != nil {
		s.todos.Ensure(username)
	}
	return &User{Username: username}, nil
}

// Login authenticates an account and issues a bearer token with the default
// TTL. Unknown username and wrong password produce the same error so the
// response cannot be used for account enumeration.
func (s *Service) Login(username, password string) (*TokenResponse, error) {
	username = strings.TrimSpace(username)

	cred, err := s.store.Lookup(username)
	if err != nil || !s.hasher.Verify(password, cred.PasswordHash) {
		return nil, apperror.NewAuthError("invalid username or password", nil)
	}

	token, err := s.tokens.Issue(cred.Username, s.tokens.DefaultTTL())
	if err != nil {
		return nil, apperror.NewInternalError("failed to issue token", err)
	}
	return &TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

// Resolve maps a bearer token back to the authenticated username. Invalid
// tokens, expired tokens and tokens whose subject is no longer registered
// all collapse into the same AuthError, so callers cannot distinguish
// tampering from expiry from a vanished account.
func (s *Service) Resolve(token string) (string, error) {
	subject, err := s.tokens.Validate(token)
	if err != nil {
		return "", apperror.NewAuthError("could not validate credentials", err)
	}
	if _, err := s.store.Lookup(subject); err != nil {
		return "", apperror.NewAuthError("could not validate credentials", nil)
	}
	return subject, nil
}
