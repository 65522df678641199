package services

import "errors"

// Service-level error taxonomy. Services wrap these with fmt.Errorf("...: %w")
// so the detail string travels to the handler, and handlers map them to HTTP
// statuses with errors.Is.
var (
	ErrNotFound           = errors.New("not found")
	ErrBadRequest         = errors.New("bad request")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrConflict           = errors.New("conflict")
	ErrUpstream           = errors.New("upstream provider failure")
)
