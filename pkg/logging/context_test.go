package logging_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/docsync/pkg/logging"
)

func TestContextFunctions(t *testing.T) {
	t.Run("FromContext without logger returns default", func(t *testing.T) {
		logger := logging.FromContext(context.Background())
		assert.Equal(t, logging.Default(), logger)
	})

	t.Run("FromContext with nil context returns default", func(t *testing.T) {
		//nolint:staticcheck // exercising the nil guard
		logger := logging.FromContext(nil)
		assert.Equal(t, logging.Default(), logger)
	})

	t.Run("WithLogger with nil stores default", func(t *testing.T) {
		ctx := logging.WithLogger(context.Background(), nil)
		assert.Equal(t, logging.Default(), logging.FromContext(ctx))
	})

	t.Run("WithField attaches value", func(t *testing.T) {
		testLogger := logging.NewTestLogger(t)
		ctx := logging.WithLogger(context.Background(), testLogger.Logger)
		ctx = logging.WithField(ctx, "attempt", 2)

		logging.FromContext(ctx).Info().Msg("with field")
		testLogger.AssertContains(t, `"attempt":2`)
		assert.Len(t, testLogger.Lines(), 1)
	})
}
