package bank

import (
	"fmt"
	"strings"
)

// Close deletes the logged-in account after re-confirming its username and
// pin. The mismatch checks keep a fixed precedence: both fields wrong is
// reported first, then username only, then pin only. On success the account
// leaves the store and the session is cleared.
func (s *Service) Close(username string, pin int) error {
	a, err := s.Current()
	if err != nil {
		return err
	}

	usernameMismatch := !strings.EqualFold(username, a.Username)
	pinMismatch := pin != a.Pin
	switch {
	case usernameMismatch && pinMismatch:
		s.logger.Log("close", fmt.Sprintf("username=%s failed: both fields mismatch", a.Username))
		return ErrCloseBothMismatch
	case usernameMismatch:
		s.logger.Log("close", fmt.Sprintf("username=%s failed: username mismatch", a.Username))
		return ErrCloseUsernameMismatch
	case pinMismatch:
		s.logger.Log("close", fmt.Sprintf("username=%s failed: pin mismatch", a.Username))
		return ErrClosePinMismatch
	}

	if err := s.store.Remove(a.Username); err != nil {
		return err
	}
	s.session = nil
	s.logger.Log("close", "ok", "username", a.Username)
	return nil
}
