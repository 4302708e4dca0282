// Package session holds the current identity for a process-wide session
// (the CLI's "tab") and mirrors every change into a persisted store.
package session

import (
	"github.com/kwanchai/cleanbook/internal/model"
)

// Store is the persistence side-effect target for session changes.
// identity.FileStore satisfies it; web requests use the cookie variant
// through middleware instead.
type Store interface {
	Write(id *model.Identity) error
	Read() *model.Identity
	Clear() error
}

// State is the single source of truth for "who is logged in right now".
// It is explicitly constructed and passed to consumers; it is never a
// package-level global. Created at process start, reset only via Clear.
type State struct {
	store       Store
	current     *model.Identity
	subscribers []func(*model.Identity)
}

// New creates a State backed by the given store, seeding the current
// identity from whatever the store holds
func New(store Store) *State {
	s := &State{store: store}
	if store != nil {
		s.current = store.Read()
	}
	return s
}

// Current returns the current identity, or nil when signed out
func (s *State) Current() *model.Identity {
	return s.current
}

// Credential returns the current credential, or "" when signed out
func (s *State) Credential() string {
	if s.current.Authenticated() {
		return s.current.Credential
	}
	return ""
}

// Set replaces the current identity. Identities without a credential are
// ignored: callers only invoke Set after a successful login or
// registration, which always carries one.
func (s *State) Set(id *model.Identity) error {
	if !id.Authenticated() {
		return nil
	}
	s.current = id
	err := s.sync()
	s.notify()
	return err
}

// Clear signs the session out and removes the persisted record
func (s *State) Clear() error {
	s.current = nil
	err := s.sync()
	s.notify()
	return err
}

// Subscribe registers a function called after every identity change
func (s *State) Subscribe(fn func(*model.Identity)) {
	s.subscribers = append(s.subscribers, fn)
}

func (s *State) sync() error {
	if s.store == nil {
		return nil
	}
	if s.current == nil {
		return s.store.Clear()
	}
	return s.store.Write(s.current)
}

func (s *State) notify() {
	for _, fn := range s.subscribers {
		fn(s.current)
	}
}
