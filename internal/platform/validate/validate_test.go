// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/artistly/internal/platform/apperr"
	"github.com/taibuivan/artistly/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "name", "Artistly", false},
		{"empty_string", "name", "", true},
		{"whitespace_only", "name", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_MinLen checks the boundary and the custom message override.
*/
func TestValidator_MinLen(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		isValid bool
	}{
		{"one_short", strings.Repeat("a", 49), false},
		{"exact", strings.Repeat("a", 50), true},
		{"multibyte_counts_runes", strings.Repeat("₹", 50), true},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.MinLen("bio", tt.value, 50, "Bio must be at least 50 characters")

			if tt.isValid {
				assert.False(t, v.HasErrors())
				return
			}
			ae := apperr.As(v.Err())
			require.NotNil(t, ae)
			assert.Equal(t, "Bio must be at least 50 characters", ae.FieldMessage("bio"))
		})
	}
}

/*
TestValidator_MinItems checks multi-select counting.
*/
func TestValidator_MinItems(t *testing.T) {
	v := &validate.Validator{}
	v.MinItems("category", 0, 1, "Please select at least one category")

	ae := apperr.As(v.Err())
	require.NotNil(t, ae)
	assert.Equal(t, "Please select at least one category", ae.FieldMessage("category"))

	ok := &validate.Validator{}
	assert.NoError(t, ok.MinItems("category", 2, 1).Err())
}

/*
TestValidator_OneOf checks enumeration membership.
*/
func TestValidator_OneOf(t *testing.T) {
	v := &validate.Validator{}
	v.OneOf("status", "archived", "pending", "review", "approved", "rejected")

	ae := apperr.As(v.Err())
	require.NotNil(t, ae)
	assert.Contains(t, ae.FieldMessage("status"), "pending, review, approved, rejected")
}

/*
TestValidator_Chain tests the fluent API (chaining multiple rules).
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("name", "Rita").
		MinLen("name", "Rita", 2).
		Err()

	assert.NoError(t, err)
	assert.False(t, v.HasErrors())
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("name", "").                  // Fails
		MinLen("name", "a", 2).                // Fails
		Custom("profileImage", true, "Nope"). // Fails
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	// Should accumulate all 3 errors
	assert.Len(t, ae.Details, 3)
}
