// Package session holds the client's current authentication state and
// notifies interested parts of the application when it changes.
//
// A Store is created together with its Publisher. The Publisher is handed to
// the auth service, which is therefore the only writer; everybody else reads
// snapshots and subscribes.
package session

import (
	"errors"
	"sync"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
)

// ErrIncompleteSession is returned when publishing a user without a token or
// a token without a user.
var ErrIncompleteSession = errors.New("session requires both user and token")

// Session is the client-held pair of current user and bearer token.
// The zero value is the anonymous session.
type Session struct {
	User  *models.User
	Token string
}

// Authenticated reports whether both user and token are present.
func (s Session) Authenticated() bool {
	return s.User != nil && s.Token != ""
}

func (s Session) clone() Session {
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}

func (s Session) equal(o Session) bool {
	if s.Token != o.Token || (s.User == nil) != (o.User == nil) {
		return false
	}
	if s.User == nil {
		return true
	}
	a, b := s.User, o.User
	return a.ID == b.ID && a.Email == b.Email && a.Username == b.Username &&
		a.IsActive == b.IsActive && a.CreatedAt.Equal(b.CreatedAt)
}

// Listener receives the new session after every change.
type Listener func(Session)

type subscription struct {
	id int
	fn Listener
}

type Store struct {
	mu        sync.Mutex
	current   Session
	nextID    int
	listeners []subscription
}

// Publisher is the write side of a Store.
type Publisher struct {
	store *Store
}

// NewStore returns an anonymous Store and its Publisher.
func NewStore() (*Store, *Publisher) {
	s := &Store{}
	return s, &Publisher{store: s}
}

// Snapshot returns a copy of the current session.
func (s *Store) Snapshot() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.clone()
}

// Subscribe registers fn for change notifications and returns a function
// that removes it. Listeners run synchronously on the writer's goroutine, in
// subscription order, and must not call back into the Publisher. Reading the
// store, or the token through the auth service, is fine.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() { s.remove(id) })
	}
}

func (s *Store) remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sub := range s.listeners {
		if sub.id == id {
			s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
			return
		}
	}
}

// set swaps the session and notifies listeners if it changed.
func (s *Store) set(next Session) bool {
	s.mu.Lock()
	if s.current.equal(next) {
		s.mu.Unlock()
		return false
	}
	s.current = next.clone()
	listeners := make([]subscription, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, sub := range listeners {
		sub.fn(next.clone())
	}
	return true
}

// Store returns the read side.
func (p *Publisher) Store() *Store {
	return p.store
}

// Authenticate moves the store to the authenticated state. It reports
// whether listeners were notified.
func (p *Publisher) Authenticate(user *models.User, token string) (bool, error) {
	if user == nil || token == "" {
		return false, ErrIncompleteSession
	}
	return p.store.set(Session{User: user, Token: token}), nil
}

// Clear moves the store to the anonymous state. It reports whether listeners
// were notified.
func (p *Publisher) Clear() bool {
	return p.store.set(Session{})
}
