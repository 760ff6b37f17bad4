package clap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuiltinValidators(t *testing.T) {
	t.Run("IntRange", func(t *testing.T) {
		fn := IntRange(1, 100)
		assert.NoError(t, fn(IntValue(1), TypeInt))
		assert.NoError(t, fn(IntValue(100), TypeInt))
		assert.Error(t, fn(IntValue(0), TypeInt))
		assert.Error(t, fn(IntValue(150), TypeInt))
		assert.Error(t, fn(StringValue("50"), TypeString))
	})

	t.Run("FloatRange", func(t *testing.T) {
		fn := FloatRange(0, 1)
		assert.NoError(t, fn(FloatValue(0.5), TypeFloat))
		assert.Error(t, fn(FloatValue(1.5), TypeFloat))
		assert.Error(t, fn(IntValue(0), TypeInt))
	})

	t.Run("OneOf", func(t *testing.T) {
		fn := OneOf("json", "yaml", "table")
		assert.NoError(t, fn(StringValue("yaml"), TypeString))

		err := fn(StringValue("xml"), TypeString)
		assert.ErrorContains(t, err, "xml")
		assert.ErrorContains(t, err, "json, yaml, table")
	})

	t.Run("Suffix", func(t *testing.T) {
		fn := Suffix(".txt")
		assert.NoError(t, fn(StringValue("out.txt"), TypeString))
		assert.ErrorContains(t, fn(StringValue("out.csv"), TypeString), ".txt")
		assert.Error(t, fn(IntValue(1), TypeInt))
	})

	t.Run("NonEmpty", func(t *testing.T) {
		fn := NonEmpty()
		assert.NoError(t, fn(StringValue("x"), TypeString))
		assert.Error(t, fn(StringValue(""), TypeString))
	})

	t.Run("UUIDString", func(t *testing.T) {
		fn := UUIDString()
		assert.NoError(t, fn(StringValue("123e4567-e89b-12d3-a456-426614174000"), TypeString))
		assert.Error(t, fn(StringValue("not-a-uuid"), TypeString))
		assert.Error(t, fn(IntValue(4), TypeInt))
	})
}
