// Package ctxval keeps a mutable bag of values inside a context so that values set
// deep in a handler are visible to the middleware that wrapped the request.
package ctxval

import (
	"context"
	"sync"
)

type bagKey struct{}

type bag struct {
	mu     sync.RWMutex
	values map[any]any
}

// Wrap returns ctx carrying an empty bag, or ctx itself when it already carries one.
func Wrap(ctx context.Context) context.Context {
	if _, ok := bagFrom(ctx); ok {
		return ctx
	}
	return context.WithValue(ctx, bagKey{}, &bag{values: make(map[any]any)})
}

// Set stores v under k. It is a no-op on an unwrapped context.
func Set[K comparable, V any](ctx context.Context, k K, v V) {
	b, ok := bagFrom(ctx)
	if !ok {
		return
	}
	b.mu.Lock()
	b.values[k] = v
	b.mu.Unlock()
}

// Get loads the value stored under k, falling back to regular context values.
func Get[K comparable, V any](ctx context.Context, k K) (V, bool) {
	if b, ok := bagFrom(ctx); ok {
		b.mu.RLock()
		raw, found := b.values[k]
		b.mu.RUnlock()
		if found {
			v, ok := raw.(V)
			return v, ok
		}
	}
	v, ok := ctx.Value(k).(V)
	return v, ok
}

func bagFrom(ctx context.Context) (*bag, bool) {
	b, ok := ctx.Value(bagKey{}).(*bag)
	return b, ok
}
