package bookstore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ExplainVerbosity is the explain mode used by Explain.
const ExplainVerbosity = "executionStats"

// ExecutionStats is the subset of the server's executionStats section the
// walkthrough reports.
type ExecutionStats struct {
	ExecutionSuccess    bool  `bson:"executionSuccess"    json:"executionSuccess"`
	NReturned           int64 `bson:"nReturned"           json:"nReturned"`
	ExecutionTimeMillis int64 `bson:"executionTimeMillis" json:"executionTimeMillis"`
	TotalKeysExamined   int64 `bson:"totalKeysExamined"   json:"totalKeysExamined"`
	TotalDocsExamined   int64 `bson:"totalDocsExamined"   json:"totalDocsExamined"`
}

// Explanation is the decoded result of an explain command.
type Explanation struct {
	Stats ExecutionStats

	// WinningStage is the root stage of the winning plan, e.g. "IXSCAN",
	// "FETCH" or "COLLSCAN". Empty if the server did not report one.
	WinningStage string

	// RawStats is the full executionStats document as returned by the server.
	RawStats bson.Raw
}

// Explain asks the server how it plans and executes find(filter), with
// execution statistics.
func (c *Catalog) Explain(ctx context.Context, filter interface{}) (*Explanation, error) {
	if filter == nil {
		filter = All()
	}

	var explanation *Explanation
	err := c.run(ctx, &OpInfo{Operation: OpExplain, Collection: c.name(), Filter: filter}, func(ctx context.Context) error {
		coll, err := c.collection()
		if err != nil {
			return err
		}

		cmd := bson.D{
			{Key: "explain", Value: bson.D{
				{Key: "find", Value: coll.Name()},
				{Key: "filter", Value: filter},
			}},
			{Key: "verbosity", Value: ExplainVerbosity},
		}
		raw, err := coll.Database().RunCommand(ctx, cmd).Raw()
		if err != nil {
			return fmt.Errorf("bookstore: explain failed: %w", err)
		}

		explanation, err = parseExplanation(raw)
		return err
	})
	return explanation, err
}

func parseExplanation(raw bson.Raw) (*Explanation, error) {
	statsVal, err := raw.LookupErr("executionStats")
	if err != nil {
		return nil, fmt.Errorf("bookstore: explain output has no executionStats: %w", err)
	}
	statsDoc, ok := statsVal.DocumentOK()
	if !ok {
		return nil, fmt.Errorf("bookstore: explain executionStats is %s, not a document", statsVal.Type)
	}

	ex := &Explanation{RawStats: statsDoc}
	if err := bson.Unmarshal(statsDoc, &ex.Stats); err != nil {
		return nil, fmt.Errorf("bookstore: decode executionStats: %w", err)
	}

	// Servers using the slot-based engine nest the classic plan under queryPlan.
	for _, path := range [][]string{
		{"queryPlanner", "winningPlan", "stage"},
		{"queryPlanner", "winningPlan", "queryPlan", "stage"},
	} {
		if v, err := raw.LookupErr(path...); err == nil {
			if s, ok := v.StringValueOK(); ok {
				ex.WinningStage = s
				break
			}
		}
	}

	return ex, nil
}
