package bookstore

import (
	"context"
	"math"
	"strconv"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// DecadeSuffix is appended to the decade number to form a decade label.
const DecadeSuffix = "s"

// DecadeLabel returns the label the decade aggregation assigns to year:
// floor(year/10)*10 followed by DecadeSuffix, so 1999 is "1990s" and 2000 is
// "2000s".
func DecadeLabel(year int) string {
	decade := int(math.Floor(float64(year)/10)) * 10
	return strconv.Itoa(decade) + DecadeSuffix
}

// decadeLabelExpr is the server-side equivalent of DecadeLabel.
func decadeLabelExpr() bson.D {
	floorDiv := bson.D{{Key: "$floor", Value: bson.D{{Key: "$divide", Value: bson.A{"$published_year", 10}}}}}
	decade := bson.D{{Key: "$multiply", Value: bson.A{floorDiv, 10}}}
	return bson.D{{Key: "$concat", Value: bson.A{
		bson.D{{Key: "$toString", Value: decade}},
		DecadeSuffix,
	}}}
}

func (c *Catalog) averagePriceByGenrePipeline() *Pipeline {
	return c.Pipeline().Group(bson.D{
		{Key: "_id", Value: "$genre"},
		{Key: "averagePrice", Value: bson.D{{Key: "$avg", Value: "$price"}}},
	})
}

func (c *Catalog) topAuthorsPipeline(n int64) *Pipeline {
	return c.Pipeline().
		Group(bson.D{
			{Key: "_id", Value: "$author"},
			{Key: "bookCount", Value: bson.D{{Key: "$sum", Value: 1}}},
		}).
		Sort(bson.D{{Key: "bookCount", Value: -1}}).
		Limit(n)
}

func (c *Catalog) booksByDecadePipeline() *Pipeline {
	return c.Pipeline().
		Group(bson.D{
			{Key: "_id", Value: decadeLabelExpr()},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}).
		Sort(bson.D{{Key: "_id", Value: 1}})
}

// AveragePriceByGenre groups books by genre and averages their price.
// Group order is whatever the server returns.
func (c *Catalog) AveragePriceByGenre(ctx context.Context) ([]GenreAveragePrice, error) {
	rows := []GenreAveragePrice{}
	if err := c.averagePriceByGenrePipeline().Execute(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// TopAuthors returns the n authors with the most books, most first.
// Ties are broken by the server.
func (c *Catalog) TopAuthors(ctx context.Context, n int64) ([]AuthorBookCount, error) {
	rows := []AuthorBookCount{}
	if err := c.topAuthorsPipeline(n).Execute(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// BooksByDecade counts books per decade label, ascending by label.
func (c *Catalog) BooksByDecade(ctx context.Context) ([]DecadeCount, error) {
	rows := []DecadeCount{}
	if err := c.booksByDecadePipeline().Execute(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
