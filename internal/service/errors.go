package service

import "errors"

var (
	ErrSessionNotFound     = errors.New("chat session not found")
	ErrSessionClosed       = errors.New("chat session is already closed")
	ErrInvalidSessionState = errors.New("operation not allowed in current session state")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUsernameTaken       = errors.New("username already registered")
	ErrEmailTaken          = errors.New("email already registered")
	ErrEntryNotFound       = errors.New("knowledge entry not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrSelfDeletion        = errors.New("cannot delete own account")
)
