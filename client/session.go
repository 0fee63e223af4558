package client

import (
	"encoding/json"

	"loomorro/goal-api/internal/model"
)

const (
	tokenKey = "token"
	userKey  = "user"
)

// Session holds the caller's auth state behind a Store.
type Session struct {
	store Store
}

func NewSession(store Store) *Session {
	if store == nil {
		store = NewMemoryStore()
	}

	return &Session{store: store}
}

func (s *Session) Token() string {
	t, _ := s.store.Get(tokenKey)
	return t
}

func (s *Session) SetToken(t string) error {
	return s.store.Set(tokenKey, t)
}

func (s *Session) User() (model.PublicUser, bool) {
	raw, ok := s.store.Get(userKey)
	if !ok {
		return model.PublicUser{}, false
	}

	var u model.PublicUser
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return model.PublicUser{}, false
	}

	return u, true
}

func (s *Session) SetUser(u model.PublicUser) error {
	buf, err := json.Marshal(u)
	if err != nil {
		return err
	}

	return s.store.Set(userKey, string(buf))
}

func (s *Session) LoggedIn() bool {
	return s.Token() != ""
}

// Clear drops both the token and the cached user, a logout.
func (s *Session) Clear() {
	s.store.Delete(tokenKey)
	s.store.Delete(userKey)
}
