package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskValue_SensitiveFields(t *testing.T) {
	tests := []struct {
		field string
		value any
	}{
		{"password", "hunter2"},
		{"Password", "hunter2"},
		{"userPassword", "hunter2"},
		{"pass", "hunter2"},
		{"apiToken", "tok_abc"},
		{"refresh_token", "tok_abc"},
		{"clientSecret", "cs_123"},
		{"client_secret", "cs_123"},
		{"otp", "123456"},
		{"pinCode", "9876"},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			assert.Equal(t, Redacted, MaskValue(tt.field, tt.value))
		})
	}
}

func TestMaskValue_Aadhaar(t *testing.T) {
	assert.Equal(t, "XXXX-XXXX-9012", MaskValue("aadharNumber", "123456789012"))
	assert.Equal(t, "XXXX-XXXX-9012", MaskValue("aadhaar_number", "1234-5678-9012"))
	assert.Equal(t, "XXXX-XXXX-9012", MaskValue("AadharNumber", "1234 5678 9012"))

	// Fewer than 4 digits: keep what is there.
	assert.Equal(t, "XXXX-XXXX-12", MaskValue("aadhar", "12"))

	// No digits at all: value passes through unmodified.
	assert.Equal(t, "not-an-id", MaskValue("aadhar", "not-an-id"))
}

func TestMaskValue_NilStaysNil(t *testing.T) {
	assert.Nil(t, MaskValue("password", nil))
	assert.Nil(t, MaskValue("aadhar", nil))
	assert.Nil(t, MaskValue("name", nil))
}

func TestMaskValue_PassThrough(t *testing.T) {
	assert.Equal(t, "Acme", MaskValue("name", "Acme"))
	assert.Equal(t, 42.0, MaskValue("founded_year", 42.0))
	assert.Equal(t, true, MaskValue("active", true))
	// "pin" must match as a substring, but unrelated names stay intact.
	assert.Equal(t, "Mumbai", MaskValue("city", "Mumbai"))
}
