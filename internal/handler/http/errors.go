// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrEmptyHealthPath is returned by [NewHandler] when the liveness route is
// not configured.
var ErrEmptyHealthPath = errors.New("empty health path")
