package store

import (
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"bankist/model"
)

// MemoryStore keeps accounts in an ordered slice. It is the canonical
// backend: the demo is single-threaded, but the mutex keeps the store safe
// if a caller ever shares it.
type MemoryStore struct {
	mu       sync.Mutex
	accounts []*model.Account
}

// NewMemoryStore seeds a store with copies of the given accounts, deriving
// each username from its owner name.
func NewMemoryStore(seed []model.Account) *MemoryStore {
	s := &MemoryStore{}
	for i := range seed {
		a := seed[i]
		a.Username = model.DeriveUsername(a.Owner)
		a.Movements = append([]decimal.Decimal(nil), a.Movements...)
		s.accounts = append(s.accounts, &a)
	}
	return s
}

// find returns the index of the account matching username, or -1.
// Callers must hold s.mu.
func (s *MemoryStore) find(username string) int {
	for i, a := range s.accounts {
		if strings.EqualFold(a.Username, username) {
			return i
		}
	}
	return -1
}

func (s *MemoryStore) FindByUsername(username string) (*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.find(username)
	if i < 0 {
		return nil, ErrAccountNotFound
	}
	return snapshot(s.accounts[i]), nil
}

func (s *MemoryStore) Accounts() ([]*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*model.Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		out = append(out, snapshot(a))
	}
	return out, nil
}

func (s *MemoryStore) AppendMovement(username string, amount decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.find(username)
	if i < 0 {
		return ErrAccountNotFound
	}
	s.accounts[i].Movements = append(s.accounts[i].Movements, amount)
	return nil
}

func (s *MemoryStore) Remove(username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.find(username)
	if i < 0 {
		return ErrAccountNotFound
	}
	s.accounts = append(s.accounts[:i], s.accounts[i+1:]...)
	return nil
}

// snapshot copies an account so callers cannot mutate store state through
// the returned pointer.
func snapshot(a *model.Account) *model.Account {
	cp := *a
	cp.Movements = append([]decimal.Decimal(nil), a.Movements...)
	return &cp
}
