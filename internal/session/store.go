package session

import (
	"encoding/json"
	"time"

	"github.com/mjholt/deckhand/pkg/domain"
)

// Storage keys. Three independent values, written separately; there is no
// partial-write recovery beyond GetSession treating an incomplete set as
// logged out.
const (
	tokenKey  = "auth_token"
	expiryKey = "token_expiry"
	userKey   = "user_data"
)

// sessionTTL is how long a stored token stays usable.
const sessionTTL = 7 * 24 * time.Hour

// Session is the locally cached proof of authentication.
type Session struct {
	Token  string
	Expiry time.Time
	User   domain.User
}

// Store persists the session in a KV and answers validity questions.
type Store struct {
	kv  KV
	now func() time.Time
}

// NewStore creates a session store over kv.
func NewStore(kv KV) *Store {
	return &Store{kv: kv, now: time.Now}
}

// SetSession stores token, a fresh 7-day expiry, and the user profile.
func (s *Store) SetSession(token string, user domain.User) error {
	expiry := s.now().Add(sessionTTL)
	if err := s.kv.Set(tokenKey, token); err != nil {
		return err
	}
	if err := s.kv.Set(expiryKey, expiry.Format(time.RFC3339)); err != nil {
		return err
	}
	userData, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.kv.Set(userKey, string(userData))
}

// GetSession returns the stored session, or nil when there is none.
// An expired session is cleared on read so the next call is cheap; a
// malformed stored profile degrades to nil rather than an error.
func (s *Store) GetSession() *Session {
	token, ok := s.kv.Get(tokenKey)
	if !ok || token == "" {
		return nil
	}
	expiryRaw, ok := s.kv.Get(expiryKey)
	if !ok {
		return nil
	}
	expiry, err := time.Parse(time.RFC3339, expiryRaw)
	if err != nil {
		return nil
	}
	if s.now().After(expiry) {
		s.ClearSession()
		return nil
	}

	userRaw, ok := s.kv.Get(userKey)
	if !ok {
		return nil
	}
	var user domain.User
	if err := json.Unmarshal([]byte(userRaw), &user); err != nil {
		return nil
	}

	return &Session{Token: token, Expiry: expiry, User: user}
}

// ClearSession removes all stored session state. Safe to call repeatedly.
func (s *Store) ClearSession() {
	// Removal of missing keys is a no-op, so errors here carry no signal.
	s.kv.Delete(tokenKey)  //nolint:errcheck
	s.kv.Delete(expiryKey) //nolint:errcheck
	s.kv.Delete(userKey)   //nolint:errcheck
}

// IsValid reports whether a usable session is stored.
func (s *Store) IsValid() bool {
	return s.GetSession() != nil
}
