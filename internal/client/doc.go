// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the healthcheck probe run by container
// orchestrators and scripts against a live health server.
//
// The probe calls the server's health route through an adapter, retrying a
// bounded number of times, and reports the outcome as an error.
package client
