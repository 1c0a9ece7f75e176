package utils

import (
	"strings"
	"testing"
)

func TestGenerateTrackingCode(t *testing.T) {
	code := GenerateTrackingCode()

	if !strings.HasPrefix(code, "DOC-") {
		t.Errorf("Expected DOC- prefix, got %s", code)
	}
	if len(code) != len("DOC-")+8 {
		t.Errorf("Expected 12 character code, got %q (%d)", code, len(code))
	}
	if err := ValidateTrackingCode(code); err != nil {
		t.Errorf("Generated code should validate: %v", err)
	}

	// Codes must differ between calls
	if GenerateTrackingCode() == code {
		t.Error("Two generated codes should not collide")
	}
}

func TestValidateTrackingCode(t *testing.T) {
	cases := []struct {
		code  string
		valid bool
	}{
		{"DOC-1A2B3C4D", true},
		{"doc-1a2b3c4d", true}, // case folded by scanners
		{"  DOC-ABCDEF01  ", true},
		{"DOC-1234567", false},   // too short
		{"DOC-123456789", false}, // too long
		{"DOC-1A2B3C4G", false},  // non-hex
		{"DOX-1A2B3C4D", false},  // wrong prefix
		{"", false},
	}
	for _, tc := range cases {
		err := ValidateTrackingCode(tc.code)
		if tc.valid && err != nil {
			t.Errorf("%q should be valid, got %v", tc.code, err)
		}
		if !tc.valid && err == nil {
			t.Errorf("%q should be invalid", tc.code)
		}
	}
}

func TestNormalizeTrackingCode(t *testing.T) {
	if got := NormalizeTrackingCode(" doc-1a2b3c4d "); got != "DOC-1A2B3C4D" {
		t.Errorf("Expected DOC-1A2B3C4D, got %s", got)
	}
}
