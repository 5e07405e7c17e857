package queries

import (
	"context"
	"fmt"

	"github.com/plpbookstore/bookstore"
)

// Params holds the fixed inputs of the walkthrough.
type Params struct {
	Genre         string
	Year          int
	StockTitle    string
	Publisher     string
	PriceIncrease float64
	PriceTitle    string
	NewPrice      float64
	DeleteTitle   string
	StockYear     int
	Page          int64
	Limit         int64
	TopAuthors    int64
}

// DefaultParams returns the walkthrough's standard inputs.
func DefaultParams() Params {
	return Params{
		Genre:         "Dystopian",
		Year:          2000,
		StockTitle:    "The Great Gatsby",
		Publisher:     "Secker & Warburg",
		PriceIncrease: 2.00,
		PriceTitle:    "1984",
		NewPrice:      15.99,
		DeleteTitle:   "The Alchemist",
		StockYear:     2010,
		Page:          1,
		Limit:         5,
		TopAuthors:    1,
	}
}

// Steps returns the walkthrough in execution order. Later steps observe the
// writes of earlier ones through the database only.
func (r *Runner) Steps() []Step {
	p := r.params
	return []Step{
		{"find all", r.findBooks("All Books", bookstore.All())},
		{"find by genre", r.findBooks(fmt.Sprintf("Books in Genre %q", p.Genre), bookstore.ByGenre(p.Genre))},
		{"find published after", r.findBooks(fmt.Sprintf("Books Published After %d", p.Year), bookstore.PublishedAfter(p.Year))},
		{"update stock status", r.updateStock},
		{"update price by publisher", r.increasePublisherPrices},
		{"update price by title", r.updatePrice},
		{"delete by title", r.deleteBook},
		{"find in stock published after", r.findBooks(
			fmt.Sprintf("Books In Stock and Published After %d", p.StockYear),
			bookstore.InStockPublishedAfter(p.StockYear),
		)},
		{"find selected fields", r.findSummaries},
		{"sort by price ascending", r.findBooks("Books Sorted by Price (Ascending)", bookstore.All(),
			bookstore.FindOptions{Sort: bookstore.SortByPrice(true)})},
		{"sort by price descending", r.findBooks("Books Sorted by Price (Descending)", bookstore.All(),
			bookstore.FindOptions{Sort: bookstore.SortByPrice(false)})},
		{"paginate", r.findBooks(fmt.Sprintf("Books - Page %d (Limit %d)", p.Page, p.Limit), bookstore.All(),
			bookstore.PageOptions(p.Page, p.Limit))},
		{"average price by genre", r.averagePriceByGenre},
		{"author with most books", r.topAuthors},
		{"books by decade", r.booksByDecade},
		{"create text index", r.createIndex(bookstore.TextIndex("title", "author"),
			"Text Index created on title and author fields")},
		{"create published_year index", r.createIndex(bookstore.AscendingIndex("published_year"),
			"Index created on published_year field")},
		{"explain published after", r.explain},
	}
}

func (r *Runner) findBooks(title string, filter interface{}, opts ...bookstore.FindOptions) func(context.Context) error {
	return func(ctx context.Context) error {
		books, err := r.catalog.Find(ctx, filter, opts...)
		if err != nil {
			return err
		}
		return r.out.Block(title, books)
	}
}

func (r *Runner) updateStock(ctx context.Context) error {
	p := r.params
	// Titles are not unique; every matching copy goes out of stock.
	res, err := r.catalog.UpdateMany(ctx, bookstore.ByTitle(p.StockTitle), bookstore.SetInStock(false))
	if err != nil {
		return err
	}
	return r.out.Line(fmt.Sprintf("Updated Stock Status of %q", p.StockTitle), UpdateOutcome(res))
}

func (r *Runner) increasePublisherPrices(ctx context.Context) error {
	p := r.params
	res, err := r.catalog.UpdateMany(ctx, bookstore.ByPublisher(p.Publisher), bookstore.IncrementPrice(p.PriceIncrease))
	if err != nil {
		return err
	}
	return r.out.Line(fmt.Sprintf("Updated Price of Books by %q", p.Publisher),
		fmt.Sprintf("%d books updated", res.ModifiedCount))
}

func (r *Runner) updatePrice(ctx context.Context) error {
	p := r.params
	res, err := r.catalog.UpdateOne(ctx, bookstore.ByTitle(p.PriceTitle), bookstore.SetPrice(p.NewPrice))
	if err != nil {
		return err
	}
	return r.out.Line(fmt.Sprintf("Updated Price of %q", p.PriceTitle), UpdateOutcome(res))
}

func (r *Runner) deleteBook(ctx context.Context) error {
	p := r.params
	res, err := r.catalog.DeleteOne(ctx, bookstore.ByTitle(p.DeleteTitle))
	if err != nil {
		return err
	}
	return r.out.Line(fmt.Sprintf("Deleted Book %q", p.DeleteTitle), DeleteOutcome(res))
}

func (r *Runner) findSummaries(ctx context.Context) error {
	summaries, err := r.catalog.FindSummaries(ctx, bookstore.All())
	if err != nil {
		return err
	}
	return r.out.Block("Books with Selected Fields (title, author, price)", summaries)
}

func (r *Runner) averagePriceByGenre(ctx context.Context) error {
	rows, err := r.catalog.AveragePriceByGenre(ctx)
	if err != nil {
		return err
	}
	return r.out.Block("Average Price of Books by Genre", rows)
}

func (r *Runner) topAuthors(ctx context.Context) error {
	rows, err := r.catalog.TopAuthors(ctx, r.params.TopAuthors)
	if err != nil {
		return err
	}
	return r.out.Block("Author with the Most Books", rows)
}

func (r *Runner) booksByDecade(ctx context.Context) error {
	rows, err := r.catalog.BooksByDecade(ctx)
	if err != nil {
		return err
	}
	return r.out.Block("Books Published by Decade", rows)
}

func (r *Runner) createIndex(spec bookstore.IndexSpec, msg string) func(context.Context) error {
	return func(ctx context.Context) error {
		name, err := r.catalog.CreateIndex(ctx, spec)
		if err != nil {
			return err
		}
		r.logger.DebugContext(ctx, "index ready", "index", name)
		return r.out.Message(msg)
	}
}

func (r *Runner) explain(ctx context.Context) error {
	p := r.params
	ex, err := r.catalog.Explain(ctx, bookstore.PublishedAfter(p.Year))
	if err != nil {
		return err
	}
	r.logger.InfoContext(ctx, "query plan",
		"winning_stage", ex.WinningStage,
		"docs_examined", ex.Stats.TotalDocsExamined,
		"keys_examined", ex.Stats.TotalKeysExamined,
	)
	return r.out.Block(fmt.Sprintf("Query Execution Stats for finding books published after %d", p.Year), ex.RawStats)
}
