package bookstore

import (
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestFilters(t *testing.T) {
	if len(All()) != 0 {
		t.Fatal("All should be an empty filter")
	}
	if f := ByTitle("1984"); f[0].Key != "title" || f[0].Value != "1984" {
		t.Fatalf("unexpected ByTitle %v", f)
	}

	f := PublishedAfter(2000)
	cond := f[0].Value.(bson.D)
	if f[0].Key != "published_year" || cond[0].Key != "$gt" || cond[0].Value != 2000 {
		t.Fatalf("unexpected PublishedAfter %v", f)
	}

	f = InStockPublishedAfter(2010)
	if len(f) != 2 || f[0].Key != "in_stock" || f[0].Value != true || f[1].Key != "published_year" {
		t.Fatalf("unexpected InStockPublishedAfter %v", f)
	}
}

func TestUpdates(t *testing.T) {
	u := IncrementPrice(2)
	inc := u[0].Value.(bson.D)
	if u[0].Key != "$inc" || inc[0].Key != "price" || inc[0].Value != 2.0 {
		t.Fatalf("unexpected IncrementPrice %v", u)
	}

	u = SetPrice(15.99)
	set := u[0].Value.(bson.D)
	if u[0].Key != "$set" || set[0].Value != 15.99 {
		t.Fatalf("unexpected SetPrice %v", u)
	}

	u = SetInStock(false)
	set = u[0].Value.(bson.D)
	if set[0].Key != "in_stock" || set[0].Value != false {
		t.Fatalf("unexpected SetInStock %v", u)
	}
}

func TestSummaryProjection(t *testing.T) {
	p := SummaryProjection()
	want := map[string]int{"title": 1, "author": 1, "price": 1, "_id": 0}
	if len(p) != len(want) {
		t.Fatalf("unexpected projection %v", p)
	}
	for _, e := range p {
		if v, ok := want[e.Key]; !ok || e.Value != v {
			t.Fatalf("unexpected projection entry %v", e)
		}
	}
}

func TestSortByPrice(t *testing.T) {
	if s := SortByPrice(true); s[0].Value != 1 {
		t.Fatalf("expected ascending, got %v", s)
	}
	if s := SortByPrice(false); s[0].Value != -1 {
		t.Fatalf("expected descending, got %v", s)
	}
}

func TestPageOptions(t *testing.T) {
	cases := []struct {
		page, limit, skip int64
	}{
		{1, 5, 0},
		{2, 5, 5},
		{3, 4, 8},
		{0, 5, 0},
	}
	for _, c := range cases {
		opt := PageOptions(c.page, c.limit)
		if opt.Skip != c.skip || opt.Limit != c.limit {
			t.Errorf("PageOptions(%d, %d) = skip %d limit %d, want skip %d", c.page, c.limit, opt.Skip, opt.Limit, c.skip)
		}
		if len(opt.Sort) != 1 || opt.Sort[0].Key != "_id" {
			t.Errorf("PageOptions should sort by _id, got %v", opt.Sort)
		}
	}
}
