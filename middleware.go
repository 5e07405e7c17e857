package bookstore

import (
	"context"
	"log/slog"
	"time"
)

// OpType identifies the kind of store operation being performed.
type OpType string

const (
	OpCount       OpType = "count"
	OpFind        OpType = "find"
	OpInsertMany  OpType = "insert_many"
	OpUpdateOne   OpType = "update_one"
	OpUpdateMany  OpType = "update_many"
	OpDeleteOne   OpType = "delete_one"
	OpAggregate   OpType = "aggregate"
	OpCreateIndex OpType = "create_index"
	OpListIndexes OpType = "list_indexes"
	OpExplain     OpType = "explain"
)

// OpInfo provides context about the current operation to middleware.
type OpInfo struct {
	Operation  OpType
	Collection string
	Filter     interface{} // query filter, pipeline, or index keys, if applicable
}

// MiddlewareFunc is a function that wraps a store operation.
// Call next(ctx) to continue the chain, or return an error to abort.
type MiddlewareFunc func(ctx context.Context, op *OpInfo, next func(context.Context) error) error

// Use registers middleware on the catalog. Middleware runs in the order
// registered, outermost first.
func (c *Catalog) Use(fns ...MiddlewareFunc) {
	c.mwMu.Lock()
	defer c.mwMu.Unlock()
	c.mw = append(c.mw, fns...)
}

// run builds and executes the middleware chain for an operation.
// If no middleware is registered, fn is called directly.
func (c *Catalog) run(ctx context.Context, info *OpInfo, fn func(context.Context) error) error {
	c.mwMu.RLock()
	chain := make([]MiddlewareFunc, len(c.mw))
	copy(chain, c.mw)
	c.mwMu.RUnlock()

	if len(chain) == 0 {
		return fn(ctx)
	}

	var build func(int) func(context.Context) error
	build = func(i int) func(context.Context) error {
		if i == len(chain) {
			return fn
		}
		return func(ctx context.Context) error {
			return chain[i](ctx, info, build(i+1))
		}
	}

	return build(0)(ctx)
}

// LogOperations returns middleware that records every operation on logger.
// Successful operations log at debug level, failures at warn.
func LogOperations(logger *slog.Logger) MiddlewareFunc {
	return func(ctx context.Context, op *OpInfo, next func(context.Context) error) error {
		start := time.Now()
		err := next(ctx)

		attrs := []slog.Attr{
			slog.String("op", string(op.Operation)),
			slog.String("collection", op.Collection),
			slog.Duration("elapsed", time.Since(start)),
		}
		if op.Filter != nil {
			attrs = append(attrs, slog.Any("filter", op.Filter))
		}
		if err != nil {
			attrs = append(attrs, slog.Any("err", err))
			logger.LogAttrs(ctx, slog.LevelWarn, "store operation failed", attrs...)
			return err
		}
		logger.LogAttrs(ctx, slog.LevelDebug, "store operation", attrs...)
		return nil
	}
}
