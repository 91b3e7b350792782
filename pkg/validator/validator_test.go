package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Mode  string `query:"consult" validate:"omitempty,oneof='Video Consult' 'In Clinic'"`
	Limit int    `query:"limit" validate:"gte=0,lte=20"`
	Name  string `validate:"required"`
}

func TestCustomValidator_FormatsByQueryName(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&sample{Mode: "Phone", Limit: 50})
	require.Error(t, err)

	errs := v.FormatValidationErrors(err)
	assert.Equal(t, "consult must be one of: 'Video Consult' 'In Clinic'", errs["consult"])
	assert.Equal(t, "limit must be less than or equal to 20", errs["limit"])
	assert.Equal(t, "Name is required", errs["Name"])
}

func TestCustomValidator_AcceptsQuotedOneOf(t *testing.T) {
	v := NewValidator()
	assert.NoError(t, v.Validate(&sample{Mode: "In Clinic", Name: "x"}))
	assert.NoError(t, v.Validate(&sample{Name: "x"}))
}
