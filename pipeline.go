package bookstore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Pipeline is a fluent builder for aggregation pipelines over a catalog.
//
// Example:
//
//	var rows []GenreAveragePrice
//	err := catalog.Pipeline().
//	    Group(bson.D{{Key: "_id", Value: "$genre"}, {Key: "averagePrice", Value: bson.D{{Key: "$avg", Value: "$price"}}}}).
//	    Execute(ctx, &rows)
type Pipeline struct {
	catalog *Catalog
	stages  []bson.D
}

// Pipeline starts a new aggregation over the catalog's collection.
func (c *Catalog) Pipeline() *Pipeline {
	return &Pipeline{catalog: c}
}

// Match adds a $match stage to filter documents.
func (p *Pipeline) Match(filter interface{}) *Pipeline {
	return p.Stage(bson.D{{Key: "$match", Value: filter}})
}

// Group adds a $group stage.
func (p *Pipeline) Group(group interface{}) *Pipeline {
	return p.Stage(bson.D{{Key: "$group", Value: group}})
}

// Sort adds a $sort stage.
func (p *Pipeline) Sort(sort interface{}) *Pipeline {
	return p.Stage(bson.D{{Key: "$sort", Value: sort}})
}

// Project adds a $project stage.
func (p *Pipeline) Project(projection interface{}) *Pipeline {
	return p.Stage(bson.D{{Key: "$project", Value: projection}})
}

// Limit adds a $limit stage.
func (p *Pipeline) Limit(n int64) *Pipeline {
	return p.Stage(bson.D{{Key: "$limit", Value: n}})
}

// Skip adds a $skip stage.
func (p *Pipeline) Skip(n int64) *Pipeline {
	return p.Stage(bson.D{{Key: "$skip", Value: n}})
}

// AddFields adds an $addFields stage.
func (p *Pipeline) AddFields(fields interface{}) *Pipeline {
	return p.Stage(bson.D{{Key: "$addFields", Value: fields}})
}

// Count adds a $count stage writing the document count to field.
func (p *Pipeline) Count(field string) *Pipeline {
	return p.Stage(bson.D{{Key: "$count", Value: field}})
}

// Stage appends a raw stage.
func (p *Pipeline) Stage(stage bson.D) *Pipeline {
	p.stages = append(p.stages, stage)
	return p
}

// Stages returns the accumulated stages.
func (p *Pipeline) Stages() []bson.D {
	return p.stages
}

// Execute runs the pipeline and decodes every result into results, which
// must be a pointer to a slice.
func (p *Pipeline) Execute(ctx context.Context, results interface{}) error {
	if len(p.stages) == 0 {
		return ErrEmptyPipeline
	}

	c := p.catalog
	return c.run(ctx, &OpInfo{Operation: OpAggregate, Collection: c.name(), Filter: p.stages}, func(ctx context.Context) error {
		coll, err := c.collection()
		if err != nil {
			return err
		}
		cursor, err := coll.Aggregate(ctx, p.stages)
		if err != nil {
			return fmt.Errorf("bookstore: aggregate failed: %w", err)
		}
		defer func() { _ = cursor.Close(ctx) }()

		if err := cursor.All(ctx, results); err != nil {
			return fmt.Errorf("bookstore: aggregate decode failed: %w", err)
		}
		return nil
	})
}
