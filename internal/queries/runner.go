// Package queries runs the fixed bookstore walkthrough: reads, updates, a
// delete, aggregations, index creation, and an explain, in that order.
package queries

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/plpbookstore/bookstore"
)

// Catalog is the subset of *bookstore.Catalog the walkthrough uses.
type Catalog interface {
	Find(ctx context.Context, filter interface{}, opts ...bookstore.FindOptions) ([]bookstore.Book, error)
	FindSummaries(ctx context.Context, filter interface{}, opts ...bookstore.FindOptions) ([]bookstore.BookSummary, error)
	UpdateOne(ctx context.Context, filter, update interface{}) (*bookstore.UpdateResult, error)
	UpdateMany(ctx context.Context, filter, update interface{}) (*bookstore.UpdateResult, error)
	DeleteOne(ctx context.Context, filter interface{}) (*bookstore.DeleteResult, error)
	AveragePriceByGenre(ctx context.Context) ([]bookstore.GenreAveragePrice, error)
	TopAuthors(ctx context.Context, n int64) ([]bookstore.AuthorBookCount, error)
	BooksByDecade(ctx context.Context) ([]bookstore.DecadeCount, error)
	CreateIndex(ctx context.Context, spec bookstore.IndexSpec) (string, error)
	Explain(ctx context.Context, filter interface{}) (*bookstore.Explanation, error)
}

// Reporter receives each step's result.
type Reporter interface {
	Block(title string, v interface{}) error
	Line(title string, value interface{}) error
	Message(msg string) error
}

// Step is one entry of the walkthrough.
type Step struct {
	Name string
	Run  func(ctx context.Context) error
}

// StepError wraps the error that stopped the walkthrough.
type StepError struct {
	Step int // 1-based position
	Name string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Step, e.Name, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Runner executes the walkthrough against a catalog.
type Runner struct {
	catalog Catalog
	out     Reporter
	logger  *slog.Logger
	params  Params
}

// NewRunner returns a Runner. A nil logger discards log output.
func NewRunner(catalog Catalog, out Reporter, logger *slog.Logger, params Params) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{catalog: catalog, out: out, logger: logger, params: params}
}

// Run executes every step in order, each one finishing before the next
// starts. The first failure stops the walkthrough and is returned as a
// *StepError.
func (r *Runner) Run(ctx context.Context) error {
	for i, step := range r.Steps() {
		start := time.Now()
		r.logger.DebugContext(ctx, "step started", "step", i+1, "name", step.Name)
		if err := step.Run(ctx); err != nil {
			return &StepError{Step: i + 1, Name: step.Name, Err: err}
		}
		r.logger.InfoContext(ctx, "step finished", "step", i+1, "name", step.Name, "elapsed", time.Since(start))
	}
	return nil
}

// UpdateOutcome reports whether an update changed anything.
func UpdateOutcome(res *bookstore.UpdateResult) string {
	if res != nil && res.ModifiedCount > 0 {
		return "Success"
	}
	return "No Change"
}

// DeleteOutcome reports whether a delete removed anything.
func DeleteOutcome(res *bookstore.DeleteResult) string {
	if res != nil && res.DeletedCount > 0 {
		return "Success"
	}
	return "Not Found"
}
