package client

import "errors"

// ErrProbeFailed is returned by [Probe.Run] when every attempt failed.
var ErrProbeFailed = errors.New("health probe failed")
