package kernel_test

import (
	"testing"

	"backhouse/internal/core/domain/model/kernel"
	"backhouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	t.Run("generates valid unique identifiers", func(t *testing.T) {
		first := kernel.NewID()
		second := kernel.NewID()

		require.NoError(t, first.Validate())
		require.NoError(t, second.Validate())
		assert.NotEmpty(t, first.String())
		assert.False(t, first.IsEqual(second))
	})
}

func TestIDFromString(t *testing.T) {
	t.Run("accepts opaque text", func(t *testing.T) {
		id, err := kernel.IDFromString("not-a-uuid")

		require.NoError(t, err)
		assert.Equal(t, "not-a-uuid", id.String())
		require.NoError(t, id.Validate())
	})

	t.Run("rejects empty text", func(t *testing.T) {
		_, err := kernel.IDFromString("")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestID_IsEqual(t *testing.T) {
	a, err := kernel.IDFromString("d-1")
	require.NoError(t, err)
	b, err := kernel.IDFromString("d-1")
	require.NoError(t, err)
	c, err := kernel.IDFromString("d-2")
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestID_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var id kernel.ID

		err := id.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrIDIsNotConstructed, err)
	})
}
