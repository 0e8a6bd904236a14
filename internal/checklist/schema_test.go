package checklist

import (
	"testing"

	"auditpro/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Run("parsed sample is valid", func(t *testing.T) {
		def, err := Parse(restaurantChecklist)
		require.NoError(t, err)
		assert.NoError(t, Validate(def))
	})

	t.Run("permissive types and bounds are accepted", func(t *testing.T) {
		def := &domain.ChecklistDefinition{
			Questions: []domain.ChecklistQuestion{
				{Question: "Fridge temperature", Type: "thermometer", Min: intPtr(0), Max: intPtr(8)},
			},
		}
		assert.NoError(t, Validate(def))
	})

	t.Run("empty checklist is rejected", func(t *testing.T) {
		def, err := Parse("category_name: Empty")
		require.NoError(t, err)
		assert.ErrorIs(t, Validate(def), ErrInvalidFormat)
	})

	t.Run("question without text is rejected", func(t *testing.T) {
		def, err := Parse("- question: \"\"\n  type: checkbox")
		require.NoError(t, err)
		err = Validate(def)
		assert.ErrorIs(t, err, ErrInvalidFormat)
		assert.Contains(t, err.Error(), "/checklist/0/question")
	})

	t.Run("nil definition", func(t *testing.T) {
		assert.ErrorIs(t, Validate(nil), ErrInvalidFormat)
	})
}
