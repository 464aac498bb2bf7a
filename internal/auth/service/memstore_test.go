package service

import (
	"context"
	"sync"

	"github.com/aussiebroadwan/notedesk/internal/auth/domain"
	"github.com/aussiebroadwan/notedesk/internal/auth/store"
)

// memStore is a map-backed store.Store so tests can change a user between
// calls. Transactions run directly against the map.
type memStore struct {
	mu    sync.Mutex
	users map[string]domain.User
	err   error // returned by every lookup when set
}

func newMemStore(users ...domain.User) *memStore {
	s := &memStore{users: map[string]domain.User{}}
	for _, u := range users {
		s.users[u.Username] = u
	}
	return s
}

func (s *memStore) put(u domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.Username] = u
}

func (s *memStore) remove(username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, username)
}

func (s *memStore) Users() store.Users                                      { return s }
func (s *memStore) ApplyMigrations() error                                  { return nil }
func (s *memStore) Close() error                                            { return nil }
func (s *memStore) Ping(context.Context) error                              { return s.err }
func (s *memStore) Tx(context.Context) (store.Tx, error)                    { return memTx{s}, nil }
func (s *memStore) WithTx(_ context.Context, fn func(store.Tx) error) error { return fn(memTx{s}) }

func (s *memStore) GetUserByID(_ context.Context, id string) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return domain.User{}, s.err
	}
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, store.ErrNotFound
}

func (s *memStore) GetUserByUsername(_ context.Context, username string) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return domain.User{}, s.err
	}
	u, ok := s.users[username]
	if !ok {
		return domain.User{}, store.ErrNotFound
	}
	return u, nil
}

func (s *memStore) CreateUser(_ context.Context, u domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[u.Username]; ok {
		return store.ErrAlreadyExists
	}
	s.users[u.Username] = u
	return nil
}

func (s *memStore) IsEmpty(context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users) == 0, s.err
}

type memTx struct{ *memStore }

func (memTx) Commit() error   { return nil }
func (memTx) Rollback() error { return nil }
