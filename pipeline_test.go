package bookstore

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestPipeline_Match(t *testing.T) {
	p := (&Catalog{}).Pipeline().Match(ByGenre("Fantasy"))

	stages := p.Stages()
	if len(stages) != 1 {
		t.Fatalf("expected 1 stage, got %d", len(stages))
	}
	if stages[0][0].Key != "$match" {
		t.Fatalf("expected $match, got %s", stages[0][0].Key)
	}
}

func TestPipeline_Chaining(t *testing.T) {
	p := (&Catalog{}).Pipeline().
		Match(bson.D{{Key: "in_stock", Value: true}}).
		Group(bson.D{
			{Key: "_id", Value: "$genre"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}).
		Sort(bson.D{{Key: "count", Value: -1}}).
		Limit(10).
		Skip(5).
		Project(bson.D{{Key: "_id", Value: 1}}).
		AddFields(bson.D{{Key: "label", Value: "$_id"}}).
		Count("total")

	expectedKeys := []string{"$match", "$group", "$sort", "$limit", "$skip", "$project", "$addFields", "$count"}
	stages := p.Stages()
	if len(stages) != len(expectedKeys) {
		t.Fatalf("expected %d stages, got %d", len(expectedKeys), len(stages))
	}
	for i, key := range expectedKeys {
		if stages[i][0].Key != key {
			t.Errorf("stage %d: expected %s, got %s", i, key, stages[i][0].Key)
		}
	}
}

func TestPipeline_RawStage(t *testing.T) {
	p := (&Catalog{}).Pipeline().
		Stage(bson.D{{Key: "$sample", Value: bson.D{{Key: "size", Value: 5}}}})

	stages := p.Stages()
	if len(stages) != 1 || stages[0][0].Key != "$sample" {
		t.Fatalf("expected a single $sample stage, got %v", stages)
	}
}

func TestPipeline_EmptyExecute(t *testing.T) {
	var rows []bson.M
	err := (&Catalog{}).Pipeline().Execute(context.Background(), &rows)
	if !errors.Is(err, ErrEmptyPipeline) {
		t.Fatalf("expected ErrEmptyPipeline, got %v", err)
	}
}

func TestPipeline_ExecuteWithoutCollection(t *testing.T) {
	var rows []bson.M
	err := (&Catalog{}).Pipeline().Limit(1).Execute(context.Background(), &rows)
	if !errors.Is(err, ErrNotConnected) {
		t.Fatalf("expected ErrNotConnected, got %v", err)
	}
}

func TestAveragePriceByGenrePipeline(t *testing.T) {
	stages := (&Catalog{}).averagePriceByGenrePipeline().Stages()
	if len(stages) != 1 || stages[0][0].Key != "$group" {
		t.Fatalf("expected a single $group stage, got %v", stages)
	}
	group := stages[0][0].Value.(bson.D)
	if group[0].Key != "_id" || group[0].Value != "$genre" {
		t.Fatalf("expected _id: $genre, got %v", group[0])
	}
	avg := group[1].Value.(bson.D)
	if group[1].Key != "averagePrice" || avg[0].Key != "$avg" || avg[0].Value != "$price" {
		t.Fatalf("expected averagePrice: {$avg: $price}, got %v", group[1])
	}
}

func TestTopAuthorsPipeline(t *testing.T) {
	stages := (&Catalog{}).topAuthorsPipeline(1).Stages()

	expectedKeys := []string{"$group", "$sort", "$limit"}
	if len(stages) != len(expectedKeys) {
		t.Fatalf("expected %d stages, got %d", len(expectedKeys), len(stages))
	}
	for i, key := range expectedKeys {
		if stages[i][0].Key != key {
			t.Errorf("stage %d: expected %s, got %s", i, key, stages[i][0].Key)
		}
	}
	sort := stages[1][0].Value.(bson.D)
	if sort[0].Key != "bookCount" || sort[0].Value != -1 {
		t.Fatalf("expected sort bookCount: -1, got %v", sort)
	}
	if stages[2][0].Value != int64(1) {
		t.Fatalf("expected limit 1, got %v", stages[2][0].Value)
	}
}

func TestBooksByDecadePipeline(t *testing.T) {
	stages := (&Catalog{}).booksByDecadePipeline().Stages()
	if len(stages) != 2 {
		t.Fatalf("expected 2 stages, got %d", len(stages))
	}
	group := stages[0][0].Value.(bson.D)
	concat := group[0].Value.(bson.D)
	if concat[0].Key != "$concat" {
		t.Fatalf("expected $concat label expression, got %v", concat)
	}
	parts := concat[0].Value.(bson.A)
	if len(parts) != 2 || parts[1] != DecadeSuffix {
		t.Fatalf("expected [decade, %q], got %v", DecadeSuffix, parts)
	}
	sort := stages[1][0].Value.(bson.D)
	if sort[0].Key != "_id" || sort[0].Value != 1 {
		t.Fatalf("expected sort _id: 1, got %v", sort)
	}
}

func TestDecadeLabel(t *testing.T) {
	cases := map[int]string{
		1999: "1990s",
		2000: "2000s",
		2009: "2000s",
		1813: "1810s",
		0:    "0s",
		-5:   "-10s",
	}
	for year, want := range cases {
		if got := DecadeLabel(year); got != want {
			t.Errorf("DecadeLabel(%d) = %q, want %q", year, got, want)
		}
	}
}
