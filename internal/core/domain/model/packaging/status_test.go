package packaging_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/packaging"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	t.Run("parses canonical values", func(t *testing.T) {
		for _, s := range packaging.Statuses() {
			got, err := packaging.ParseStatus(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, got)
		}
	})

	t.Run("reads the legacy delivery alias as delivered", func(t *testing.T) {
		got, err := packaging.ParseStatus("Delivery")
		require.NoError(t, err)
		assert.Equal(t, packaging.Delivered, got)
		assert.Equal(t, "delivered", got.String())
	})

	t.Run("rejects other stages' values", func(t *testing.T) {
		_, err := packaging.ParseStatus("in_transit")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_CanTransitionTo(t *testing.T) {
	allowed := map[[2]packaging.Status]bool{
		{packaging.Pending, packaging.Completed}:   true,
		{packaging.Completed, packaging.Delivered}: true,
		{packaging.Pending, packaging.Cancelled}:   true,
		{packaging.Completed, packaging.Cancelled}: true,
	}

	for _, from := range packaging.Statuses() {
		for _, to := range packaging.Statuses() {
			want := allowed[[2]packaging.Status{from, to}]
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, packaging.Delivered.IsTerminal())
	assert.True(t, packaging.Cancelled.IsTerminal())
	assert.False(t, packaging.Pending.IsTerminal())
	assert.False(t, packaging.Completed.IsTerminal())
	assert.Len(t, packaging.Pending.Next(), 2)
}
