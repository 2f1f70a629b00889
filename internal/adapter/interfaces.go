// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions the healthcheck
// binary uses to reach a running health server.
//
// [HealthAdapter] decouples the probe loop from the protocol. The package
// ships an HTTP implementation built on resty ([NewHTTPHealthAdapter]).
//
// Failed checks are reported with the sentinel errors in errors.go so callers
// can tell an unreachable server from an unhealthy one with [errors.Is].
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/health_adapter_mock.go -package=mock

// HealthAdapter performs one liveness check against the server.
type HealthAdapter interface {
	// CheckHealth returns nil when the server answered its health route with
	// a 2xx status. It returns an error wrapping [ErrUnreachable] when no
	// response was received and [ErrUnhealthy] for any other status.
	CheckHealth(ctx context.Context) error
}
