package contextkeys

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextKey_String(t *testing.T) {
	key := contextKey("testKey")
	assert.Equal(t, "ecoshopper context key testKey", key.String())
}

func TestContextKeys_Usage(t *testing.T) {
	ctx := context.Background()
	ctx = context.WithValue(ctx, RequestIDKey, "req-456")
	ctx = context.WithValue(ctx, SubjectKey, "sub-123")
	ctx = context.WithValue(ctx, ComponentKey, "component-logger")
	ctx = context.WithValue(ctx, OperationKey, "operation-scan")

	assert.Equal(t, "req-456", ctx.Value(RequestIDKey))
	assert.Equal(t, "sub-123", ctx.Value(SubjectKey))
	assert.Equal(t, "component-logger", ctx.Value(ComponentKey))
	assert.Equal(t, "operation-scan", ctx.Value(OperationKey))
}
