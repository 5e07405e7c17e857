package bookstore

import (
	"context"
	"fmt"
)

// Seeder fills an empty catalog with initial data.
type Seeder interface {
	Seed(ctx context.Context, c *Catalog) error
}

// SeederFunc adapts a function to the Seeder interface.
type SeederFunc func(ctx context.Context, c *Catalog) error

// Seed calls f(ctx, c).
func (f SeederFunc) Seed(ctx context.Context, c *Catalog) error {
	return f(ctx, c)
}

// SampleSeeder inserts SampleBooks.
var SampleSeeder Seeder = SeederFunc(func(ctx context.Context, c *Catalog) error {
	_, err := c.InsertMany(ctx, SampleBooks())
	return err
})

// SeedIfEmpty runs seeder only when the catalog holds exactly zero
// documents and reports whether it did. The count and the insert are separate
// requests; a concurrent writer between them is not detected.
func SeedIfEmpty(ctx context.Context, c *Catalog, seeder Seeder) (bool, error) {
	n, err := c.Count(ctx, All())
	if err != nil {
		return false, err
	}
	if n != 0 {
		return false, nil
	}
	if err := seeder.Seed(ctx, c); err != nil {
		return false, fmt.Errorf("bookstore: seeding failed: %w", err)
	}
	return true, nil
}

// SampleBooks returns a fresh copy of the fixed sample catalog.
func SampleBooks() []Book {
	return []Book{
		{Title: "To Kill a Mockingbird", Author: "Harper Lee", Genre: "Fiction", PublishedYear: 1960, Publisher: "J. B. Lippincott & Co.", Price: 12.99, InStock: true},
		{Title: "1984", Author: "George Orwell", Genre: "Dystopian", PublishedYear: 1949, Publisher: "Secker & Warburg", Price: 10.99, InStock: true},
		{Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", Genre: "Fiction", PublishedYear: 1925, Publisher: "Charles Scribner's Sons", Price: 9.99, InStock: true},
		{Title: "Brave New World", Author: "Aldous Huxley", Genre: "Dystopian", PublishedYear: 1932, Publisher: "Chatto & Windus", Price: 11.50, InStock: false},
		{Title: "The Hobbit", Author: "J.R.R. Tolkien", Genre: "Fantasy", PublishedYear: 1937, Publisher: "George Allen & Unwin", Price: 14.99, InStock: true},
		{Title: "The Catcher in the Rye", Author: "J.D. Salinger", Genre: "Fiction", PublishedYear: 1951, Publisher: "Little, Brown and Company", Price: 8.99, InStock: true},
		{Title: "Pride and Prejudice", Author: "Jane Austen", Genre: "Romance", PublishedYear: 1813, Publisher: "T. Egerton", Price: 7.99, InStock: true},
		{Title: "The Lord of the Rings", Author: "J.R.R. Tolkien", Genre: "Fantasy", PublishedYear: 1954, Publisher: "Allen & Unwin", Price: 19.99, InStock: true},
		{Title: "Animal Farm", Author: "George Orwell", Genre: "Political Satire", PublishedYear: 1945, Publisher: "Secker & Warburg", Price: 8.50, InStock: false},
		{Title: "The Alchemist", Author: "Paulo Coelho", Genre: "Fiction", PublishedYear: 1988, Publisher: "HarperOne", Price: 10.99, InStock: true},
		{Title: "Moby Dick", Author: "Herman Melville", Genre: "Adventure", PublishedYear: 1851, Publisher: "Harper & Brothers", Price: 12.50, InStock: false},
		{Title: "Wuthering Heights", Author: "Emily Brontë", Genre: "Gothic Fiction", PublishedYear: 1847, Publisher: "Thomas Cautley Newby", Price: 9.99, InStock: true},
	}
}
