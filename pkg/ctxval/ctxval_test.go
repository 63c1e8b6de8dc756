package ctxval_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/nguyentranbao-ct/product-catalog/pkg/ctxval"
	"github.com/stretchr/testify/assert"
)

func TestWithValue(t *testing.T) {
	t.Parallel()
	type testKey string
	type testValue string

	t.Run("Set and Get Value", func(t *testing.T) {
		ctx := ctxval.Wrap(context.Background())
		ctxval.Set(ctx, testKey("key1"), testValue("value1"))
		got, ok := ctxval.Get[testKey, testValue](ctx, testKey("key1"))

		assert.True(t, ok)
		assert.Equal(t, testValue("value1"), got)
	})

	t.Run("Overwrite Value", func(t *testing.T) {
		ctx := ctxval.Wrap(context.Background())
		ctxval.Set(ctx, testKey("key1"), testValue("value1"))
		ctxval.Set(ctx, testKey("key1"), testValue("value2"))
		got, _ := ctxval.Get[testKey, testValue](ctx, testKey("key1"))

		assert.Equal(t, testValue("value2"), got)
	})

	t.Run("Unwrapped context ignores Set", func(t *testing.T) {
		ctx := context.Background()
		ctxval.Set(ctx, testKey("key1"), testValue("value1"))
		_, ok := ctxval.Get[testKey, testValue](ctx, testKey("key1"))

		assert.False(t, ok)
	})

	t.Run("Falls back to context values", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), testKey("plain"), testValue("v"))
		ctx = ctxval.Wrap(ctx)
		got, ok := ctxval.Get[testKey, testValue](ctx, testKey("plain"))

		assert.True(t, ok)
		assert.Equal(t, testValue("v"), got)
	})

	t.Run("Wrap is idempotent", func(t *testing.T) {
		ctx := ctxval.Wrap(context.Background())
		ctxval.Set(ctx, testKey("key1"), testValue("value1"))
		again := ctxval.Wrap(ctx)
		got, ok := ctxval.Get[testKey, testValue](again, testKey("key1"))

		assert.True(t, ok)
		assert.Equal(t, testValue("value1"), got)
	})

	t.Run("Wrong type", func(t *testing.T) {
		ctx := ctxval.Wrap(context.Background())
		ctxval.Set(ctx, testKey("key1"), 42)
		_, ok := ctxval.Get[testKey, testValue](ctx, testKey("key1"))

		assert.False(t, ok)
	})
}

func TestConcurrentOperations(t *testing.T) {
	t.Parallel()
	ctx := ctxval.Wrap(context.Background())
	const numGoroutines = 50
	const numOperations = 200

	var wg sync.WaitGroup
	wg.Add(numGoroutines * 2)
	for i := range numGoroutines {
		go func(routineID int) {
			defer wg.Done()
			for j := range numOperations {
				ctxval.Set(ctx, fmt.Sprintf("key-%d", j%10), fmt.Sprintf("value-%d-%d", routineID, j))
			}
		}(i)
	}
	for range numGoroutines {
		go func() {
			defer wg.Done()
			for j := range numOperations {
				_, _ = ctxval.Get[string, string](ctx, fmt.Sprintf("key-%d", j%10))
			}
		}()
	}
	wg.Wait()
}
