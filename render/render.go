// Package render turns accounts and derived values into display strings.
// It owns no state and performs no I/O; the CLI decides where the lines go.
package render

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"bankist/model"
)

// MovementRows renders an account's history one row per movement, newest
// first. Each row carries the movement's position, its type, a date
// placeholder and the amount with a euro suffix. With sorted set, rows are
// ordered by amount instead of by age.
func MovementRows(a *model.Account, sorted bool) []string {
	movs := a.Movements
	if sorted {
		movs = append([]decimal.Decimal(nil), a.Movements...)
		sort.Slice(movs, func(i, j int) bool { return movs[i].LessThan(movs[j]) })
	}

	rows := make([]string, 0, len(movs))
	for i := len(movs) - 1; i >= 0; i-- {
		m := movs[i]
		kind := "withdrawal"
		if m.IsPositive() {
			kind = "deposit"
		}
		rows = append(rows, fmt.Sprintf("%d %s  3 days ago  %s€", i+1, kind, m.String()))
	}
	return rows
}

// BalanceLine renders the current balance.
func BalanceLine(a *model.Account) string {
	return fmt.Sprintf("%s €", a.Balance())
}

// SummaryLines renders the in/out/interest totals. Interest always shows two
// decimal places.
func SummaryLines(a *model.Account) []string {
	return []string{
		fmt.Sprintf("In: %s€", a.TotalDeposits()),
		fmt.Sprintf("Out: %s€", a.TotalWithdrawals()),
		fmt.Sprintf("Interest: %s€", a.QualifyingInterest().StringFixed(2)),
	}
}

// WelcomeLine greets the owner by first name after a login.
func WelcomeLine(a *model.Account) string {
	return fmt.Sprintf("Welcome back, %s!", a.FirstName())
}

// LoggedOutLine is the banner shown when no session is active.
func LoggedOutLine() string {
	return "Log in to get started"
}
