package backoff

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFixed(t *testing.T) {
	req := require.New(t)
	b := NewFixed(20 * time.Millisecond)

	start := time.Now()
	for i := 0; i < 3; i++ {
		req.NoError(b.Backoff(context.Background()))
		req.Equal(20*time.Millisecond, b.NextDuration)
	}
	req.GreaterOrEqual(time.Since(start), 60*time.Millisecond)
	req.Equal(3, b.Count())

	b.Reset()
	req.Equal(0, b.Count())
	req.Equal(time.Duration(0), b.LastDuration)
}

func TestFixedCancelled(t *testing.T) {
	req := require.New(t)
	b := NewFixed(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	req.Equal(context.Canceled, b.Backoff(ctx))
	req.Equal(0, b.Count())
}

func TestZeroDelay(t *testing.T) {
	req := require.New(t)
	b := NewFixed(0)
	req.NoError(b.Backoff(context.Background()))
	req.Equal(1, b.Count())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req.Equal(context.Canceled, b.Backoff(ctx))
}
