package bank

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Transfer moves amount from the logged-in account to the account matching
// toUsername (case-insensitive). Preconditions run in a fixed order and each
// failure short-circuits with its own reason: the amount must be positive,
// the recipient must exist, and the amount must not exceed the sender's
// balance. The credit is pushed before the debit, mirroring the source app;
// there is no rollback between the two appends.
func (s *Service) Transfer(toUsername string, amount decimal.Decimal) error {
	sender, err := s.Current()
	if err != nil {
		return err
	}

	if !amount.IsPositive() {
		s.logger.Log("transfer", fmt.Sprintf("from=%s failed: bad amount %s", sender.Username, amount))
		return ErrAmountNotPositive
	}
	recipient, err := s.store.FindByUsername(toUsername)
	if err != nil {
		s.logger.Log("transfer", fmt.Sprintf("from=%s failed: recipient %q: %v", sender.Username, toUsername, err))
		return ErrRecipientNotFound
	}
	if amount.GreaterThan(sender.Balance()) {
		s.logger.Log("transfer", fmt.Sprintf("from=%s failed: amount %s exceeds balance %s", sender.Username, amount, sender.Balance()))
		return ErrInsufficientFunds
	}

	if err := s.store.AppendMovement(recipient.Username, amount); err != nil {
		return err
	}
	if err := s.store.AppendMovement(sender.Username, amount.Neg()); err != nil {
		return err
	}

	s.logger.Log("transfer", "ok", "from", sender.Username, "to", recipient.Username, "amount", amount.String())
	return nil
}
