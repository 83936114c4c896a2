package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Account represents a demo bank account. Movements is the full transaction
// history in insertion order: positive amounts are deposits, negative amounts
// are withdrawals. Balance and the summary totals are always derived from
// Movements, never stored.
type Account struct {
	Owner        string            `json:"owner"`
	Username     string            `json:"username"`
	Movements    []decimal.Decimal `json:"movements"`
	InterestRate decimal.Decimal   `json:"interest_rate"`
	Pin          int               `json:"-"`
}

var (
	one      = decimal.NewFromInt(1)
	hundred  = decimal.NewFromInt(100)
	eurToUSD = decimal.RequireFromString("1.1")
)

// DeriveUsername builds the login handle for an owner name: the first letter
// of each word, lowercased. "Steven Thomas Williams" becomes "stw".
func DeriveUsername(owner string) string {
	var b strings.Builder
	for _, word := range strings.Fields(owner) {
		b.WriteRune([]rune(word)[0])
	}
	return strings.ToLower(b.String())
}

// FirstName returns the first word of the owner's name.
func (a *Account) FirstName() string {
	words := strings.Fields(a.Owner)
	if len(words) == 0 {
		return ""
	}
	return words[0]
}

// Balance is the sum of all movements.
func (a *Account) Balance() decimal.Decimal {
	total := decimal.Zero
	for _, m := range a.Movements {
		total = total.Add(m)
	}
	return total
}

// TotalDeposits is the sum of the positive movements.
func (a *Account) TotalDeposits() decimal.Decimal {
	total := decimal.Zero
	for _, m := range a.Movements {
		if m.IsPositive() {
			total = total.Add(m)
		}
	}
	return total
}

// TotalWithdrawals is the absolute value of the sum of the negative movements.
func (a *Account) TotalWithdrawals() decimal.Decimal {
	total := decimal.Zero
	for _, m := range a.Movements {
		if m.IsNegative() {
			total = total.Add(m)
		}
	}
	return total.Abs()
}

// QualifyingInterest computes the interest earned on deposits. Each deposit
// earns deposit * rate / 100, and only deposits whose computed interest is at
// least 1 count toward the total. The cutoff applies to the interest amount,
// not the deposit itself: at 1.2% a 70 deposit earns 0.84 and is excluded
// while a 200 deposit earns 2.40 and counts. Rounded to two decimal places.
func (a *Account) QualifyingInterest() decimal.Decimal {
	total := decimal.Zero
	for _, m := range a.Movements {
		if !m.IsPositive() {
			continue
		}
		interest := m.Mul(a.InterestRate).Div(hundred)
		if interest.GreaterThanOrEqual(one) {
			total = total.Add(interest)
		}
	}
	return total.Round(2)
}

// DepositsInUSD converts the deposit total to USD using the demo's fixed
// EUR to USD rate of 1.1.
func (a *Account) DepositsInUSD() decimal.Decimal {
	total := decimal.Zero
	for _, m := range a.Movements {
		if m.IsPositive() {
			total = total.Add(m.Mul(eurToUSD))
		}
	}
	return total
}
