package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingStorage(t *testing.T) {
	s := NewPendingStorage()

	_, ok := s.Get(1)
	assert.False(t, ok)

	s.Store(1, PendingInput{Kind: InputSteps})
	got, ok := s.Get(1)
	require.True(t, ok)
	assert.Equal(t, InputSteps, got.Kind)

	// Storing again replaces the previous awaited input.
	s.Store(1, PendingInput{Kind: InputMeasurement, Slot: "initial", Field: "weight"})
	got, ok = s.Get(1)
	require.True(t, ok)
	assert.Equal(t, InputMeasurement, got.Kind)
	assert.Equal(t, "initial", got.Slot)
	assert.Equal(t, "weight", got.Field)

	s.Delete(1)
	_, ok = s.Get(1)
	assert.False(t, ok)

	// Deleting an absent entry is a no-op.
	s.Delete(2)
}
