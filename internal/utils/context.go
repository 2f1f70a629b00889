// Package utils provides general-purpose helper utilities
// used across different parts of the application: typed context keys and
// request identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// RequestIDCtxKey is the key used to store the request identifier in the
// context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.RequestIDCtxKey, "0190a7c2-...")
var RequestIDCtxKey = contextKey("requestID")

// GetRequestIDFromContext retrieves the request identifier from the context.
//
// Returns the request ID and an ok flag:
//   - ok == true : value is found, is a string and is not empty
//   - ok == false: value is missing, empty or has an unexpected type
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(RequestIDCtxKey).(string)
	return requestID, ok && requestID != ""
}
