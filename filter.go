package bookstore

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// All matches every document.
func All() bson.D {
	return bson.D{}
}

// ByTitle matches documents whose title equals title exactly.
func ByTitle(title string) bson.D {
	return bson.D{{Key: "title", Value: title}}
}

// ByGenre matches documents whose genre equals genre exactly.
func ByGenre(genre string) bson.D {
	return bson.D{{Key: "genre", Value: genre}}
}

// ByPublisher matches documents whose publisher equals publisher exactly.
func ByPublisher(publisher string) bson.D {
	return bson.D{{Key: "publisher", Value: publisher}}
}

// PublishedAfter matches documents with published_year strictly greater than year.
func PublishedAfter(year int) bson.D {
	return bson.D{{Key: "published_year", Value: bson.D{{Key: "$gt", Value: year}}}}
}

// InStockPublishedAfter matches in-stock documents published strictly after year.
func InStockPublishedAfter(year int) bson.D {
	return bson.D{
		{Key: "in_stock", Value: true},
		{Key: "published_year", Value: bson.D{{Key: "$gt", Value: year}}},
	}
}

// SetInStock is an update document setting in_stock.
func SetInStock(inStock bool) bson.D {
	return bson.D{{Key: "$set", Value: bson.D{{Key: "in_stock", Value: inStock}}}}
}

// SetPrice is an update document setting price.
func SetPrice(price float64) bson.D {
	return bson.D{{Key: "$set", Value: bson.D{{Key: "price", Value: price}}}}
}

// IncrementPrice is an update document adding amount to price.
func IncrementPrice(amount float64) bson.D {
	return bson.D{{Key: "$inc", Value: bson.D{{Key: "price", Value: amount}}}}
}

// SummaryProjection selects title, author, and price and suppresses _id.
func SummaryProjection() bson.D {
	return bson.D{
		{Key: "title", Value: 1},
		{Key: "author", Value: 1},
		{Key: "price", Value: 1},
		{Key: "_id", Value: 0},
	}
}

// SortByPrice orders by price, ascending when asc is true.
func SortByPrice(asc bool) bson.D {
	dir := -1
	if asc {
		dir = 1
	}
	return bson.D{{Key: "price", Value: dir}}
}
