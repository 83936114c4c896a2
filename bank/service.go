// Package bank wires the account store to the four demo actions: login,
// transfer, loan request and account closure. Every action is synchronous and
// runs to completion before the next one starts; there is no queuing and no
// concurrent mutation of the store.
package bank

import (
	"fmt"

	"github.com/go-kit/log"
	"github.com/google/uuid"

	"bankist/model"
	"bankist/store"
)

// Session identifies the currently authenticated account. At most one session
// exists at a time.
type Session struct {
	ID       string
	Username string
}

// Service owns the session state and validates every action against it and
// the account store.
type Service struct {
	store   store.AccountStore
	logger  log.Logger
	session *Session
}

func NewService(accounts store.AccountStore, logger log.Logger) *Service {
	return &Service{store: accounts, logger: logger}
}

// Login authenticates a username/pin pair and opens a session. The returned
// account is a snapshot for display.
func (s *Service) Login(username string, pin int) (*model.Account, error) {
	a, err := s.store.FindByUsername(username)
	if err != nil {
		s.logger.Log("login", fmt.Sprintf("username=%s failed: %v", username, err))
		return nil, ErrUnknownUsername
	}
	if a.Pin != pin {
		s.logger.Log("login", fmt.Sprintf("username=%s failed: pin mismatch", a.Username))
		return nil, ErrWrongPin
	}

	s.session = &Session{ID: uuid.New().String(), Username: a.Username}
	s.logger.Log("login", "ok", "username", a.Username, "session", s.session.ID)
	return a, nil
}

// Logout drops the current session, if any.
func (s *Service) Logout() {
	if s.session != nil {
		s.logger.Log("logout", "ok", "username", s.session.Username)
	}
	s.session = nil
}

// Session returns the current session, or nil when logged out.
func (s *Service) Session() *Session {
	return s.session
}

// Current resolves the logged-in account through the store.
func (s *Service) Current() (*model.Account, error) {
	if s.session == nil {
		return nil, ErrNotLoggedIn
	}
	return s.store.FindByUsername(s.session.Username)
}
