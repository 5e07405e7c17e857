package bookstore

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Book is a single catalog entry. Title identifies a book for point lookups
// but is not unique: operations by title may match zero or more documents.
type Book struct {
	ID            bson.ObjectID `bson:"_id,omitempty"  json:"_id,omitempty"`
	Title         string        `bson:"title"          json:"title"          bookstore:"required,text"`
	Author        string        `bson:"author"         json:"author"         bookstore:"required,text"`
	Genre         string        `bson:"genre"          json:"genre"          bookstore:"required"`
	PublishedYear int           `bson:"published_year" json:"published_year" bookstore:"required,index,min=0"`
	Publisher     string        `bson:"publisher"      json:"publisher"      bookstore:"required"`
	Price         float64       `bson:"price"          json:"price"          bookstore:"min=0"`
	InStock       bool          `bson:"in_stock"       json:"in_stock"`
}

// BookSummary is the projected shape returned by reads that select only
// title, author, and price.
type BookSummary struct {
	Title  string  `bson:"title"  json:"title"`
	Author string  `bson:"author" json:"author"`
	Price  float64 `bson:"price"  json:"price"`
}

// GenreAveragePrice is one row of the average-price-by-genre aggregation.
type GenreAveragePrice struct {
	Genre        string  `bson:"_id"          json:"_id"`
	AveragePrice float64 `bson:"averagePrice" json:"averagePrice"`
}

// AuthorBookCount is one row of the books-per-author aggregation.
type AuthorBookCount struct {
	Author    string `bson:"_id"       json:"_id"`
	BookCount int64  `bson:"bookCount" json:"bookCount"`
}

// DecadeCount is one row of the books-per-decade aggregation.
type DecadeCount struct {
	Decade string `bson:"_id"   json:"_id"`
	Count  int64  `bson:"count" json:"count"`
}

var (
	bookSchema    = mustParseSchema(&Book{}, CollectionName)
	summarySchema = mustParseSchema(&BookSummary{}, CollectionName)
)

// BookSchema returns the parsed schema for Book.
func BookSchema() *Schema {
	return bookSchema
}

// SummarySchema returns the parsed schema for BookSummary.
func SummarySchema() *Schema {
	return summarySchema
}
