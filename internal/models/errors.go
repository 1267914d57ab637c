package models

import "errors"

var (
	// ErrNoRecord is returned when a lookup resolves to no document.
	ErrNoRecord = errors.New("models: no matching record found")

	// ErrInvalidCredentials is returned when a login attempt fails,
	// whether the username is unknown or the password does not match.
	ErrInvalidCredentials = errors.New("models: invalid credentials")

	// ErrDuplicateCredentials is returned when registration collides with
	// the unique username or email index.
	ErrDuplicateCredentials = errors.New("models: username or email already in use")

	// ErrEmptyCart is returned when checkout is attempted with nothing to order.
	ErrEmptyCart = errors.New("models: cart is empty")

	// ErrInvalidBook wraps book validation failures.
	ErrInvalidBook = errors.New("models: invalid book")
)
