package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email  string   `json:"email" validate:"required,email"`
	Secret string   `json:"password" validate:"required,min=8"`
	Weight *float64 `json:"weight" validate:"omitempty,gt=0"`
	Links  []string `json:"buyLinks" validate:"omitempty,dive,url"`
}

func TestStruct_Valid(t *testing.T) {
	w := 10.0
	err := New().Struct(sample{Email: "a@b.co", Secret: "longenough", Weight: &w, Links: []string{"https://x.test"}})
	assert.NoError(t, err)
}

func TestStruct_UsesJSONNames(t *testing.T) {
	w := 0.0
	err := New().Struct(sample{Email: "nope", Secret: "short", Weight: &w, Links: []string{"::"}})
	require.Error(t, err)

	var verr *Error
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Message, "email must be a valid email address")
	assert.Contains(t, verr.Message, "password must be at least 8 characters")
	assert.Contains(t, verr.Message, "weight must be greater than 0")
	assert.Contains(t, verr.Message, "buyLinks[0] must be a valid URL")
}

func TestStruct_Required(t *testing.T) {
	err := New().Struct(sample{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email is required")
	assert.Contains(t, err.Error(), "password is required")
}

func TestStruct_MaxBytesCountsBytes(t *testing.T) {
	type secret struct {
		Password string `json:"password" validate:"maxbytes=72"`
	}
	v := New()

	// 40 runes, 80 bytes.
	err := v.Struct(secret{Password: strings.Repeat("é", 40)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password must be at most 72 bytes")

	assert.NoError(t, v.Struct(secret{Password: strings.Repeat("é", 36)}))
	assert.NoError(t, v.Struct(secret{Password: strings.Repeat("a", 72)}))
}
