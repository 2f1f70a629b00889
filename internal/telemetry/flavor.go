// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package telemetry

import (
	"fmt"
	"net/http"
)

// HTTPFlavor renders an HTTP protocol version as recorded in the
// "http.flavor" attribute.
//
// The known versions map to "0.9", "1.0", "1.1", "2.0" and "3.0". Any other
// version is rendered as the raw protocol string sent by the client (for
// example "HTTP/4.2"), falling back to "HTTP/major.minor" when proto is empty.
func HTTPFlavor(major, minor int, proto string) string {
	switch {
	case major == 0 && minor == 9:
		return "0.9"
	case major == 1 && minor == 0:
		return "1.0"
	case major == 1 && minor == 1:
		return "1.1"
	case major == 2 && minor == 0:
		return "2.0"
	case major == 3 && minor == 0:
		return "3.0"
	case proto != "":
		return proto
	default:
		return fmt.Sprintf("HTTP/%d.%d", major, minor)
	}
}

// userAgent returns the first User-Agent header value, or an empty string
// when the header is missing or holds bytes outside visible ASCII.
func userAgent(h http.Header) string {
	return SanitizeUserAgent(h.Get("User-Agent"))
}

// SanitizeUserAgent returns ua unchanged when every byte is visible ASCII or
// a tab, and an empty string otherwise.
func SanitizeUserAgent(ua string) string {
	for i := 0; i < len(ua); i++ {
		c := ua[i]
		if c == '\t' {
			continue
		}
		if c < ' ' || c >= 0x7f {
			return ""
		}
	}

	return ua
}
