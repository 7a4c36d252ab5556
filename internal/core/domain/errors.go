package domain

import "errors"

// Sentinel errors shared across layers. Store adapters and services return
// these for expected outcomes (absent row, duplicate key, bad credential);
// anything else is an infrastructure failure and stays wrapped.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrOfficeNotFound     = errors.New("office not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrOfficeExists       = errors.New("office name already registered")
	ErrOwnerNotFound      = errors.New("owner user does not exist")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingFields      = errors.New("missing required fields")
)
