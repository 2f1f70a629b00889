package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter_WriteHeader(t *testing.T) {
	tests := []struct {
		name        string
		statusCodes []int
		wantStatus  int
	}{
		{name: "200 OK", statusCodes: []int{http.StatusOK}, wantStatus: http.StatusOK},
		{name: "204 No Content", statusCodes: []int{http.StatusNoContent}, wantStatus: http.StatusNoContent},
		{name: "404 Not Found", statusCodes: []int{http.StatusNotFound}, wantStatus: http.StatusNotFound},
		{name: "503 Service Unavailable", statusCodes: []int{http.StatusServiceUnavailable}, wantStatus: http.StatusServiceUnavailable},
		{name: "double call first wins", statusCodes: []int{http.StatusAccepted, http.StatusBadRequest}, wantStatus: http.StatusAccepted},
		{name: "triple call first wins", statusCodes: []int{http.StatusOK, http.StatusCreated, http.StatusNotFound}, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := newResponseWriter(rr)

			for _, code := range tt.statusCodes {
				w.WriteHeader(code)
			}

			assert.Equal(t, tt.wantStatus, w.Status())
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.True(t, w.wroteHeader)
		})
	}
}

func TestResponseWriter_Write(t *testing.T) {
	tests := []struct {
		name         string
		writes       [][]byte
		explicitCode int
		wantStatus   int
		wantSize     int
	}{
		{name: "single write implicit 200", writes: [][]byte{[]byte("OK")}, wantStatus: http.StatusOK, wantSize: 2},
		{name: "multiple writes accumulate size", writes: [][]byte{[]byte("foo"), []byte("bar"), []byte("baz")}, wantStatus: http.StatusOK, wantSize: 9},
		{name: "explicit 201 then write", writes: [][]byte{[]byte("created")}, explicitCode: http.StatusCreated, wantStatus: http.StatusCreated, wantSize: 7},
		{name: "empty write", writes: [][]byte{{}}, wantStatus: http.StatusOK, wantSize: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := newResponseWriter(rr)

			if tt.explicitCode != 0 {
				w.WriteHeader(tt.explicitCode)
			}
			for _, data := range tt.writes {
				_, err := w.Write(data)
				require.NoError(t, err)
			}

			assert.Equal(t, tt.wantStatus, w.Status())
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantSize, w.size)
			assert.Equal(t, tt.wantSize, rr.Body.Len())
		})
	}
}

func TestResponseWriter_StatusWithoutWrites(t *testing.T) {
	w := newResponseWriter(httptest.NewRecorder())

	assert.Equal(t, 0, w.status)
	assert.False(t, w.wroteHeader)
	assert.Equal(t, http.StatusOK, w.Status(), "nothing written means an implicit 200")
}

func TestResponseWriter_ProxiesHeadersToUnderlying(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	w.Header().Set("X-Custom", "value")
	w.WriteHeader(http.StatusTeapot)

	assert.Equal(t, "value", rr.Header().Get("X-Custom"))
	assert.Equal(t, http.StatusTeapot, rr.Code)
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	assert.Same(t, rr, w.Unwrap())
}

// TestResponseWriter_NestedWrappers checks that stacked middleware wrappers
// all observe the status written by the innermost handler.
func TestResponseWriter_NestedWrappers(t *testing.T) {
	rr := httptest.NewRecorder()
	outer := newResponseWriter(rr)
	inner := newResponseWriter(outer)

	inner.WriteHeader(http.StatusGone)

	assert.Equal(t, http.StatusGone, inner.Status())
	assert.Equal(t, http.StatusGone, outer.Status())
	assert.Equal(t, http.StatusGone, rr.Code)
}
