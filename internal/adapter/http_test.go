// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-health-server/internal/config"
	"github.com/MKhiriev/go-health-server/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter создаёт httpHealthAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL string) *httpHealthAdapter {
	t.Helper()
	cfg := config.ProbeConfig{URL: serverURL, HealthPath: "/health", Timeout: time.Second}

	a, err := NewHTTPHealthAdapter(cfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpHealthAdapter)
}

func TestCheckHealth_Statuses(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "ok", status: http.StatusOK},
		{name: "no content", status: http.StatusNoContent},
		{name: "service unavailable", status: http.StatusServiceUnavailable, wantErr: ErrUnhealthy},
		{name: "not found", status: http.StatusNotFound, wantErr: ErrUnhealthy},
		{name: "redirect is not healthy", status: http.StatusNotModified, wantErr: ErrUnhealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/health", r.URL.Path)
				assert.Equal(t, userAgent, r.UserAgent())
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			err := newTestAdapter(t, srv.URL).CheckHealth(context.Background())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestCheckHealth_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	err := newTestAdapter(t, url).CheckHealth(context.Background())

	require.ErrorIs(t, err, ErrUnreachable)
	assert.NotErrorIs(t, err, ErrUnhealthy)
}

func TestCheckHealth_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	a, err := NewHTTPHealthAdapter(config.ProbeConfig{URL: srv.URL, HealthPath: "/health", Timeout: 50 * time.Millisecond}, logger.Nop())
	require.NoError(t, err)

	err = a.CheckHealth(context.Background())
	require.ErrorIs(t, err, ErrUnreachable)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "full url", raw: "http://localhost:8080", want: "http://localhost:8080"},
		{name: "trailing slash", raw: "http://localhost:8080/", want: "http://localhost:8080"},
		{name: "scheme added", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "https kept", raw: " https://health.example.com ", want: "https://health.example.com"},
		{name: "empty", raw: "  ", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPHealthAdapter_EmptyURL(t *testing.T) {
	a, err := NewHTTPHealthAdapter(config.ProbeConfig{}, logger.Nop())

	require.ErrorIs(t, err, ErrEmptyAddress)
	assert.Nil(t, a)
}
