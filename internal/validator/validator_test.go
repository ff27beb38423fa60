package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumanth-0707/Student-Management-System/internal/validator"
)

type sample struct {
	Name  string `validate:"required,min=3"`
	Email string `validate:"required,email"`
}

func TestValidatePasses(t *testing.T) {
	v := validator.New()
	assert.Nil(t, v.Validate(sample{Name: "alice", Email: "alice@example.com"}))
}

func TestValidateCollectsFieldErrors(t *testing.T) {
	v := validator.New()

	errs := v.Validate(sample{Name: "ab", Email: "nope"})
	require.Len(t, errs, 2)
	assert.Equal(t, "name", errs[0].Field)
	assert.Equal(t, "min", errs[0].Rule)
	assert.Equal(t, "email", errs[1].Field)
	assert.Contains(t, errs.Error(), "must be a valid email address")
}
