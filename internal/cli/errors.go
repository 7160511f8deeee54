package cli

import "errors"

// ErrInputClosed is returned when interactive input ends before all answers are given.
var ErrInputClosed = errors.New("input closed before all options were chosen")

// UserFacingError pairs an error with the message shown to the user.
type UserFacingError struct {
	Underlying error
	Message    string
}

func (u UserFacingError) Error() string {
	switch {
	case u.Message != "":
		return u.Message
	case u.Underlying != nil:
		return u.Underlying.Error()
	default:
		return "unknown error"
	}
}

func (u UserFacingError) Unwrap() error {
	return u.Underlying
}
