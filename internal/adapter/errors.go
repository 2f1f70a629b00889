package adapter

import "errors"

var (
	ErrEmptyAddress = errors.New("empty address")
	ErrUnreachable  = errors.New("server unreachable")
	ErrUnhealthy    = errors.New("server unhealthy")
)
