package utils

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Tracking code format: DOC-XXXXXXXX where X is an uppercase hex digit
// taken from a fresh UUID. Short enough to read over the phone, dense
// enough to QR-encode on a routing slip.
const trackingCodePrefix = "DOC-"

// GenerateTrackingCode produces a new human-facing document code.
func GenerateTrackingCode() string {
	id := uuid.New()
	hex := strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))
	return trackingCodePrefix + hex[:8]
}

// ValidateTrackingCode checks the DOC-XXXXXXXX shape without hitting
// the database. Case-insensitive on the hex part (QR scanners and the
// lowercase-path middleware may fold case).
func ValidateTrackingCode(code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !strings.HasPrefix(code, trackingCodePrefix) {
		return errors.New("tracking code must start with DOC-")
	}
	body := code[len(trackingCodePrefix):]
	if len(body) != 8 {
		return errors.New("tracking code body must be 8 characters")
	}
	for _, c := range body {
		if (c < '0' || c > '9') && (c < 'A' || c > 'F') {
			return errors.New("tracking code body must be hexadecimal")
		}
	}
	return nil
}

// NormalizeTrackingCode uppercases a scanned or typed code to its
// canonical form.
func NormalizeTrackingCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
