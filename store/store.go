// Package store holds the account store: the ordered collection of demo
// accounts seeded once at startup. Two implementations exist, an in-memory
// slice and a sqlite-backed one; both keep all state in process memory.
package store

import (
	"errors"

	"github.com/shopspring/decimal"

	"bankist/model"
)

var (
	// ErrAccountNotFound means no account matched the given username.
	ErrAccountNotFound = errors.New("account not found")
)

// AccountStore is the single owner of account data. Lookups match usernames
// case-insensitively and return snapshots, never internal state. Movements
// are append-only; accounts leave the store only through Remove.
type AccountStore interface {
	// FindByUsername returns a snapshot of the account with the given
	// username, or ErrAccountNotFound.
	FindByUsername(username string) (*model.Account, error)

	// Accounts returns snapshots of every account in seed order.
	Accounts() ([]*model.Account, error)

	// AppendMovement pushes a signed amount onto the end of the account's
	// movement history.
	AppendMovement(username string, amount decimal.Decimal) error

	// Remove deletes the account and its movements.
	Remove(username string) error
}

// Seed returns the four demo accounts. Usernames are left blank here; each
// store derives them from the owner name when it loads the seed.
func Seed() []model.Account {
	return []model.Account{
		{
			Owner:        "Jonas Schmedtmann",
			Movements:    amounts(200, 450, -400, 3000, -650, -130, 70, 1300, 60),
			InterestRate: decimal.RequireFromString("1.2"),
			Pin:          1111,
		},
		{
			Owner:        "Jessica Davis",
			Movements:    amounts(5000, 3400, -150, -790, -3210, -1000, 8500, -30),
			InterestRate: decimal.RequireFromString("1.5"),
			Pin:          2222,
		},
		{
			Owner:        "Steven Thomas Williams",
			Movements:    amounts(200, -200, 340, -300, -20, 50, 400, -460),
			InterestRate: decimal.RequireFromString("0.7"),
			Pin:          3333,
		},
		{
			Owner:        "Sarah Smith",
			Movements:    amounts(430, 1000, 700, 50, 90, -550),
			InterestRate: decimal.RequireFromString("1"),
			Pin:          4444,
		},
	}
}

func amounts(values ...int64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = decimal.NewFromInt(v)
	}
	return out
}
