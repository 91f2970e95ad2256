package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsMatchesByKind(t *testing.T) {
	err := fmt.Errorf("wrap: %w", InvalidState("event sudah selesai"))

	assert.True(t, errors.Is(err, ErrInvalidState))
	assert.False(t, errors.Is(err, ErrValidation))

	ae, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, "event sudah selesai", ae.Message)
}

func TestValidationKeepsField(t *testing.T) {
	err := Validation("amount", "nominal harus > 0, dapat %d", -5)
	assert.Equal(t, "amount", err.Field)
	assert.Equal(t, "validation: nominal harus > 0, dapat -5", err.Error())
}
