package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statusRequest struct {
	Status string `json:"status" validate:"required,oneof=ON_DUTY OFF_DUTY"`
}

type lineRequest struct {
	Name string `json:"name" validate:"required"`
}

type noteRequest struct {
	Note  string        `json:"note" validate:"max=5"`
	Lines []lineRequest `json:"lines" validate:"dive"`
}

func TestFormatValidationErrors(t *testing.T) {
	v := NewValidator()

	t.Run("oneof", func(t *testing.T) {
		err := v.Validate(&statusRequest{Status: "AWAY"})
		require.Error(t, err)

		errs := v.FormatValidationErrors(err)
		assert.Equal(t, "status must be one of: ON_DUTY OFF_DUTY", errs["status"])
	})

	t.Run("required", func(t *testing.T) {
		errs := v.FormatValidationErrors(v.Validate(&statusRequest{}))
		assert.Equal(t, "status is required", errs["status"])
	})

	t.Run("nested and max", func(t *testing.T) {
		err := v.Validate(&noteRequest{Note: "too long", Lines: []lineRequest{{Name: "x"}, {}}})
		require.Error(t, err)

		errs := v.FormatValidationErrors(err)
		assert.Equal(t, "note must be at most 5 characters", errs["note"])
		assert.Equal(t, "name is required", errs["lines[1].name"])
	})

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, v.Validate(&statusRequest{Status: "ON_DUTY"}))
	})

	t.Run("non validation error", func(t *testing.T) {
		assert.Empty(t, v.FormatValidationErrors(assert.AnError))
	})
}
