package service

import "errors"

var (
	ErrNoActiveUser   = errors.New("no active user: run 'liftlog user login <name>' first")
	ErrUserNotFound   = errors.New("user not found")
	ErrInvalidWeight  = errors.New("weight must be a positive number")
	ErrInvalidDate    = errors.New("date must be formatted YYYY-MM-DD")
	ErrInvalidProgram = errors.New("invalid program")
	ErrInvalidName    = errors.New("name must not be empty")
)
