// Package client is a Go client for the Loomorro REST API. It does
// what the web frontend does: every call carries the bearer token,
// and the token plus the signed-in user live in a pluggable store so
// sessions can survive restarts.
package client

import (
	"encoding/json"
	"os"
	"sync"
)

// Store is the persistence abstraction behind a Session, the
// equivalent of the browser's localStorage.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

type MemoryStore struct {
	mu sync.Mutex
	m  map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{m: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.m[key]
	return v, ok
}

func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.m[key] = value
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.m, key)
	return nil
}

// FileStore persists values as one JSON object on disk.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.read()
	if err != nil {
		return "", false
	}

	v, ok := m[key]
	return v, ok
}

func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.read()
	if err != nil {
		return err
	}

	m[key] = value
	return s.write(m)
}

func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.read()
	if err != nil {
		return err
	}

	delete(m, key)
	return s.write(m)
}

func (s *FileStore) read() (map[string]string, error) {
	buf, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, err
	}

	m := map[string]string{}
	if err := json.Unmarshal(buf, &m); err != nil {
		return nil, err
	}

	return m, nil
}

func (s *FileStore) write(m map[string]string) error {
	buf, err := json.Marshal(m)
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, buf, 0o600)
}
