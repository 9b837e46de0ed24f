package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestL(t *testing.T) {
	Init("development")
	require.NotNil(t, L())
}

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")
	assert.Equal(t, "req-1", RequestIDFrom(ctx))
}

func TestRequestIDMissing(t *testing.T) {
	assert.Empty(t, RequestIDFrom(context.Background()))
}

func TestFromCtx(t *testing.T) {
	Init("development")

	t.Run("WithoutRequestID", func(t *testing.T) {
		assert.NotNil(t, FromCtx(context.Background()))
	})

	t.Run("WithRequestID", func(t *testing.T) {
		ctx := WithRequestID(context.Background(), "req-2")
		assert.NotNil(t, FromCtx(ctx))
	})
}
