package repository

import "errors"

var (
	ErrNotFound = errors.New("not found")
	// ErrDuplicateName is returned when a profile name is already taken.
	ErrDuplicateName = errors.New("user name already exists")
)
