package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeStruct(t *testing.T) {
	phone := "  +91 98765 <b>  "
	req := RegisterRequest{
		Name:  "  Root <script>  ",
		Email: " admin@example.com ",
		Phone: &phone,
	}
	SanitizeStruct(&req)

	assert.Equal(t, "Root &lt;script&gt;", req.Name)
	assert.Equal(t, "admin@example.com", req.Email)
	assert.Equal(t, "+91 98765 &lt;b&gt;", *req.Phone)
}

func TestSanitizeStruct_NonStruct(t *testing.T) {
	s := "unchanged"
	assert.NotPanics(t, func() {
		SanitizeStruct(s)
		SanitizeStruct(&s)
		SanitizeStruct(nil)
	})
}

func TestValidateSafeID(t *testing.T) {
	assert.True(t, safeStringRe.MatchString("LIONS-1.a_b"))
	assert.False(t, safeStringRe.MatchString("bad code"))
	assert.False(t, safeStringRe.MatchString("x;DROP"))
}
