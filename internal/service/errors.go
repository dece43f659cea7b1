package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a required input (e.g. the
	// email) is empty.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrAlreadyRegistered is returned by Register when a user with the
	// given email already exists. The first user's record is unaffected.
	ErrAlreadyRegistered = errors.New("user already registered")

	// ErrWrongPassword is returned by UserFromCredentials when the email
	// resolves to an account but the password does not match its hash.
	ErrWrongPassword = errors.New("wrong password")

	// ErrInvalidResetToken is returned by ConsumeResetToken when the
	// supplied token is empty, already consumed, or does not match the
	// user's outstanding token.
	ErrInvalidResetToken = errors.New("invalid reset token")
)
