package report

import (
	"bytes"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type row struct {
	Title string  `json:"title"`
	Price float64 `json:"price"`
	Stock bool    `json:"in_stock"`
}

func TestBlock_YAML(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatYAML)

	rows := []row{{Title: "1984", Price: 10.99, Stock: true}, {Title: "Emma", Price: 7.5}}
	if err := p.Block("All Books", rows); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "\nAll Books:\n" +
		"- title: \"1984\"\n" +
		"  price: 10.99\n" +
		"  in_stock: true\n" +
		"- title: Emma\n" +
		"  price: 7.5\n" +
		"  in_stock: false\n"
	if buf.String() != want {
		t.Fatalf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestBlock_EmptySlice(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatYAML)
	if err := p.Block("Books Published After 2000", []row{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "\nBooks Published After 2000:\n[]\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestBlock_JSON(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatJSON)
	if err := p.Block("One", row{Title: "Dune", Price: 9.99}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "\nOne:\n{\n  \"title\": \"Dune\",\n  \"price\": 9.99,\n  \"in_stock\": false\n}\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestBlock_RawBSON(t *testing.T) {
	raw, err := bson.Marshal(bson.D{
		{Key: "executionSuccess", Value: true},
		{Key: "nReturned", Value: int32(4)},
	})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatYAML)
	if err := p.Block("Stats", bson.Raw(raw)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "executionSuccess: true\n") || !strings.Contains(out, "nReturned: 4\n") {
		t.Fatalf("unexpected output %q", out)
	}
	if strings.Contains(out, "$numberInt") {
		t.Fatalf("expected relaxed numbers, got %q", out)
	}
}

func TestLineAndMessage(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatYAML)
	if err := p.Line(`Deleted Book "The Alchemist"`, "Success"); err != nil {
		t.Fatal(err)
	}
	if err := p.Message("Connection closed"); err != nil {
		t.Fatal(err)
	}
	want := "\nDeleted Book \"The Alchemist\": Success\nConnection closed\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestNewPrinter_UnknownFormat(t *testing.T) {
	p := NewPrinter(&bytes.Buffer{}, Format("xml"))
	if p.format != FormatYAML {
		t.Fatalf("expected fallback to yaml, got %s", p.format)
	}
}
