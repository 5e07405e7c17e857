package bookstore

import (
	"strings"
	"testing"
)

func validBook() Book {
	return Book{
		Title:         "1984",
		Author:        "George Orwell",
		Genre:         "Dystopian",
		PublishedYear: 1949,
		Publisher:     "Secker & Warburg",
		Price:         10.99,
		InStock:       true,
	}
}

func TestValidate_Book(t *testing.T) {
	b := validBook()
	if errs := Validate(&b, BookSchema()); len(errs) != 0 {
		t.Fatalf("expected 0 errors, got %v", errs)
	}

	// Out of stock is the zero value and still valid.
	b.InStock = false
	if errs := Validate(&b, BookSchema()); len(errs) != 0 {
		t.Fatalf("expected 0 errors for in_stock=false, got %v", errs)
	}
}

func TestValidate_BookMissingRequired(t *testing.T) {
	b := validBook()
	b.Title = ""
	b.Publisher = ""

	errs := Validate(&b, BookSchema())
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(errs), errs)
	}
	if errs[0].Field != "title" || errs[1].Field != "publisher" {
		t.Fatalf("expected title and publisher, got %v", errs)
	}
}

func TestValidate_BookNegativeValues(t *testing.T) {
	b := validBook()
	b.Price = -0.01
	b.PublishedYear = -1

	errs := Validate(&b, BookSchema())
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(errs), errs)
	}
	if !strings.Contains(ValidationErrors(errs).Error(), "less than minimum 0") {
		t.Fatalf("unexpected message: %v", errs)
	}
}

func TestValidate_StringMinMax(t *testing.T) {
	schema := &Schema{
		Fields: []FieldSchema{
			{Name: "Genre", BSONName: "genre", Min: intPtr(2), Max: intPtr(10)},
		},
	}
	type model struct {
		Genre string
	}

	if errs := Validate(&model{Genre: "a"}, schema); len(errs) != 1 {
		t.Fatalf("expected 1 error for too short, got %d", len(errs))
	}
	if errs := Validate(&model{Genre: "Political Satire"}, schema); len(errs) != 1 {
		t.Fatalf("expected 1 error for too long, got %d", len(errs))
	}
	if errs := Validate(&model{Genre: "Fantasy"}, schema); len(errs) != 0 {
		t.Fatalf("expected 0 errors, got %v", errs)
	}
	// Empty strings are left to the required rule.
	if errs := Validate(&model{Genre: ""}, schema); len(errs) != 0 {
		t.Fatalf("expected 0 errors for empty optional string, got %v", errs)
	}
}

func TestValidate_FloatMax(t *testing.T) {
	schema := &Schema{
		Fields: []FieldSchema{
			{Name: "Price", BSONName: "price", Max: intPtr(100)},
		},
	}
	type model struct {
		Price float64
	}

	if errs := Validate(&model{Price: 100.5}, schema); len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(errs))
	}
	if errs := Validate(&model{Price: 99.99}, schema); len(errs) != 0 {
		t.Fatalf("expected 0 errors, got %v", errs)
	}
}

func TestValidate_Enum(t *testing.T) {
	schema := &Schema{
		Fields: []FieldSchema{
			{Name: "Genre", BSONName: "genre", Enum: []string{"Fiction", "Fantasy"}},
		},
	}
	type model struct {
		Genre string
	}

	if errs := Validate(&model{Genre: "Fiction"}, schema); len(errs) != 0 {
		t.Fatalf("expected 0 errors, got %v", errs)
	}
	if errs := Validate(&model{Genre: "Cookbook"}, schema); len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(errs))
	}
}
