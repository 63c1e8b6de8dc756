// Package logctx logs with fields carried by a request context.
package logctx

import (
	"context"

	"github.com/nguyentranbao-ct/product-catalog/pkg/ctxval"
	"github.com/nguyentranbao-ct/product-catalog/pkg/logger"
	"go.uber.org/zap"
)

type fieldsKey struct{}

var base = logger.MustNamed("app").Desugar().WithOptions(zap.AddCallerSkip(1)).Sugar()

// WithFields appends key/value pairs that every later log call on ctx includes.
// ctx must have been wrapped with ctxval.Wrap, otherwise the fields are dropped.
func WithFields(ctx context.Context, keyAndValues ...any) {
	prev, _ := ctxval.Get[fieldsKey, []any](ctx, fieldsKey{})
	next := make([]any, 0, len(prev)+len(keyAndValues))
	next = append(next, prev...)
	next = append(next, keyAndValues...)
	ctxval.Set(ctx, fieldsKey{}, next)
}

// Fields returns the fields collected on ctx.
func Fields(ctx context.Context) []any {
	fields, _ := ctxval.Get[fieldsKey, []any](ctx, fieldsKey{})
	return fields
}

func args(ctx context.Context, keyAndValues []any) []any {
	fields := Fields(ctx)
	if len(fields) == 0 {
		return keyAndValues
	}
	return append(append(make([]any, 0, len(fields)+len(keyAndValues)), fields...), keyAndValues...)
}

func Debugw(ctx context.Context, msg string, keyAndValues ...any) {
	base.Debugw(msg, args(ctx, keyAndValues)...)
}

func Infow(ctx context.Context, msg string, keyAndValues ...any) {
	base.Infow(msg, args(ctx, keyAndValues)...)
}

func Warnw(ctx context.Context, msg string, keyAndValues ...any) {
	base.Warnw(msg, args(ctx, keyAndValues)...)
}

func Errorw(ctx context.Context, msg string, keyAndValues ...any) {
	base.Errorw(msg, args(ctx, keyAndValues)...)
}
