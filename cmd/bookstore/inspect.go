package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/plpbookstore/bookstore"
)

var (
	inspectDrift  bool
	inspectSample int64
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show the Book schema, its indexes, and any drift in stored documents",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.close()

		w := cmd.OutOrStdout()
		schema := s.catalog.Schema()
		printSchema(w, schema)

		existing, err := s.catalog.ListIndexes(s.ctx)
		if err != nil {
			return err
		}
		printIndexes(w, bookstore.SchemaIndexes(schema), existing)

		if !inspectDrift {
			return nil
		}
		drifts, err := s.catalog.DetectDrift(s.ctx, inspectSample)
		if err != nil {
			return err
		}
		printDrift(w, drifts)
		return nil
	},
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectDrift, "drift", false, "Sample stored documents and report schema drift")
	inspectCmd.Flags().Int64Var(&inspectSample, "sample", bookstore.DefaultDriftSample, "Documents to sample with --drift")
}

func printSchema(w io.Writer, schema *bookstore.Schema) {
	fmt.Fprintf(w, "%s (collection: %s.%s)\n", schema.ModelName, bookstore.DatabaseName, schema.Collection)
	for i, field := range schema.Fields {
		connector := "├──"
		if i == len(schema.Fields)-1 {
			connector = "└──"
		}
		fmt.Fprintf(w, "  %s %-15s %-14s %s\n", connector, field.BSONName, field.Type, formatFieldAttrs(field))
	}
}

func formatFieldAttrs(f bookstore.FieldSchema) string {
	var parts []string
	if f.Optional {
		parts = append(parts, "optional")
	}
	if f.Required {
		parts = append(parts, "required")
	}
	if f.Index {
		parts = append(parts, "indexed")
	}
	if f.Text {
		parts = append(parts, "text")
	}
	if len(f.Enum) > 0 {
		parts = append(parts, fmt.Sprintf("enum(%s)", strings.Join(f.Enum, "|")))
	}
	if f.Min != nil {
		parts = append(parts, fmt.Sprintf("min: %d", *f.Min))
	}
	if f.Max != nil {
		parts = append(parts, fmt.Sprintf("max: %d", *f.Max))
	}
	return strings.Join(parts, ", ")
}

func printIndexes(w io.Writer, wanted []bookstore.IndexSpec, existing map[string]bool) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Indexes:")
	for _, spec := range wanted {
		mark := "✗ missing"
		if existing[spec.Name] {
			mark = "✓"
		}
		fmt.Fprintf(w, "    %s %s\n", mark, spec.Name)
	}
}

func printDrift(w io.Writer, drifts []bookstore.DriftError) {
	fmt.Fprintln(w)
	if len(drifts) == 0 {
		fmt.Fprintln(w, "  Drift: ✓ No drift detected")
		return
	}
	fmt.Fprintln(w, "  Drift:")
	for _, d := range drifts {
		fmt.Fprintf(w, "    ⚠ %s: %s\n", d.Field, d.Message)
	}
}
