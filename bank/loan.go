package bank

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var ten = decimal.NewFromInt(10)

// RequestLoan grants a loan when some single movement in the account's
// history is at least 10% of the requested amount, i.e. amount <= m * 10.
// The check runs over raw movements, not just deposits; a negative movement
// can never satisfy it for a positive amount. On approval exactly one
// positive movement is appended, with no fee entry.
func (s *Service) RequestLoan(amount decimal.Decimal) error {
	a, err := s.Current()
	if err != nil {
		return err
	}

	if !amount.IsPositive() {
		s.logger.Log("loan", fmt.Sprintf("username=%s failed: bad amount %s", a.Username, amount))
		return ErrAmountNotPositive
	}

	backed := false
	for _, m := range a.Movements {
		if amount.LessThanOrEqual(m.Mul(ten)) {
			backed = true
			break
		}
	}
	if !backed {
		s.logger.Log("loan", fmt.Sprintf("username=%s failed: no movement backs %s", a.Username, amount))
		return ErrNoQualifyingDeposit
	}

	if err := s.store.AppendMovement(a.Username, amount); err != nil {
		return err
	}
	s.logger.Log("loan", "ok", "username", a.Username, "amount", amount.String())
	return nil
}
