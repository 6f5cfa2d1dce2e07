package auth

import (
	"errors"
	"sync"
	"time"
)

// Sentinel errors returned by the credential store. The service layer
// translates these into apperror values.
var (
	ErrUserExists   = errors.New("username already exists")
	ErrUserNotFound = errors.New("user not found")
)

// Credential is the stored record for one account. It is immutable after
// insertion; there is no password-change operation.
type Credential struct {
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// CredentialStore maps usernames to credential records in memory. All access
// goes through the mutex so the uniqueness check stays atomic with the
// insert under concurrent registration.
type CredentialStore struct {
	mu    sync.RWMutex
	users map[string]Credential
}

// NewCredentialStore creates an empty CredentialStore.
func NewCredentialStore() *CredentialStore {
	return &CredentialStore{users: make(map[string]Credential)}
}

// Register inserts a new credential record. Usernames are matched
// case-sensitively; a duplicate returns ErrUserExists and leaves the
// existing record untouched.
func (s *CredentialStore) Register(username, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[username]; exists {
		return ErrUserExists
	}
	s.users[username] = Credential{
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	return nil
}

// Lookup returns the credential record for username, or ErrUserNotFound.
func (s *CredentialStore) Lookup(username string) (Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cred, ok := s.users[username]
	if !ok {
		return Credential{}, ErrUserNotFound
	}
	return cred, nil
}
