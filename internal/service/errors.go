package service

import "errors"

// AccountError reports that an account a transfer or charge needs does not
// exist. The two values below are the only ones produced; compare with
// errors.Is.
type AccountError struct {
	msg string
}

func (e *AccountError) Error() string { return e.msg }

var (
	ErrNoSourceAccount      = &AccountError{msg: "No source account"}
	ErrNoDestinationAccount = &AccountError{msg: "No destination account"}
)

// ErrNoAccountOfType is returned by the payment processor when an agreement
// owns no account of the requested type.
var ErrNoAccountOfType = errors.New("agreement has no account of requested type")
