package service

import "errors"

// Failure taxonomy shared by all services. Handlers map these onto HTTP
// status codes with errors.Is; repositories translate storage errors
// (missing rows, unique violations) into the same sentinels.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrConflict        = errors.New("conflict")
)

func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
