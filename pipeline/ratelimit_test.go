package pipeline_test

import (
	"context"
	"testing"
	"time"

	"github.com/msaum/url-doc-to-markdown/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostLimiter(t *testing.T) {
	t.Parallel()

	t.Run("first request per host is immediate", func(t *testing.T) {
		t.Parallel()

		limiter := pipeline.NewHostLimiter(1)

		start := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "a.example.com"))
		require.NoError(t, limiter.Wait(context.Background(), "b.example.com"))
		assert.Less(t, time.Since(start), 500*time.Millisecond)
	})

	t.Run("throttles repeated requests to the same host", func(t *testing.T) {
		t.Parallel()

		limiter := pipeline.NewHostLimiter(10)

		start := time.Now()
		for i := 0; i < 3; i++ {
			require.NoError(t, limiter.Wait(context.Background(), "example.com"))
		}
		assert.GreaterOrEqual(t, time.Since(start), 100*time.Millisecond)
	})

	t.Run("honors context cancellation", func(t *testing.T) {
		t.Parallel()

		limiter := pipeline.NewHostLimiter(0.001)
		require.NoError(t, limiter.Wait(context.Background(), "example.com"))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		assert.Error(t, limiter.Wait(ctx, "example.com"))
	})
}
