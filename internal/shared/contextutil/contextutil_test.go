package contextutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestPrincipalRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "rid-1")
	ctx = WithPrincipal(ctx, Principal{UserID: "user-1", Role: "manager"})

	assert.Equal(t, "rid-1", GetRequestID(ctx))
	assert.Equal(t, Principal{UserID: "user-1", Role: "manager"}, GetPrincipal(ctx))
}

func TestLogFields(t *testing.T) {
	t.Run("anonymous request only carries the request id", func(t *testing.T) {
		fields := LogFields(WithRequestID(context.Background(), "rid-2"))
		assert.Equal(t, []zap.Field{zap.String("request_id", "rid-2")}, fields)
	})

	t.Run("authenticated request carries user and role", func(t *testing.T) {
		ctx := WithPrincipal(context.Background(), Principal{UserID: "u-9", Role: "admin"})
		fields := LogFields(ctx)
		assert.Equal(t, []zap.Field{zap.String("user_id", "u-9"), zap.String("role", "admin")}, fields)
	})

	t.Run("empty context", func(t *testing.T) {
		assert.Empty(t, LogFields(context.Background()))
	})
}

func TestGetLogger(t *testing.T) {
	scoped := zap.NewNop().Named("scoped")
	fallback := zap.NewNop().Named("fallback")

	assert.Same(t, scoped, GetLogger(WithLogger(context.Background(), scoped), fallback))
	assert.Same(t, fallback, GetLogger(context.Background(), fallback))
	assert.NotNil(t, GetLogger(context.Background(), nil))
}
