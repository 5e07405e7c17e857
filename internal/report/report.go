// Package report renders labeled result blocks for the console.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"go.mongodb.org/mongo-driver/v2/bson"
	"gopkg.in/yaml.v3"
)

// Format selects how Block renders values.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Printer writes human-readable result blocks to w. It is not safe for
// concurrent use.
type Printer struct {
	w      io.Writer
	format Format
}

// NewPrinter returns a Printer. An unrecognized format falls back to YAML.
func NewPrinter(w io.Writer, format Format) *Printer {
	if format != FormatJSON {
		format = FormatYAML
	}
	return &Printer{w: w, format: format}
}

// Block writes a blank line, "title:", and a structured dump of v.
func (p *Printer) Block(title string, v interface{}) error {
	body, err := p.render(v)
	if err != nil {
		return fmt.Errorf("report: render %q: %w", title, err)
	}
	_, err = fmt.Fprintf(p.w, "\n%s:\n%s\n", title, bytes.TrimRight(body, "\n"))
	return err
}

// Line writes a blank line followed by "title: value".
func (p *Printer) Line(title string, value interface{}) error {
	_, err := fmt.Fprintf(p.w, "\n%s: %v\n", title, value)
	return err
}

// Message writes msg on its own line.
func (p *Printer) Message(msg string) error {
	_, err := fmt.Fprintln(p.w, msg)
	return err
}

func (p *Printer) render(v interface{}) ([]byte, error) {
	data, err := toJSON(v)
	if err != nil {
		return nil, err
	}
	if p.format == FormatJSON {
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", "  "); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return jsonToYAML(data)
}

// toJSON encodes v as JSON. Raw BSON documents go through relaxed Extended
// JSON so numbers stay numbers; everything else uses the json struct tags.
func toJSON(v interface{}) ([]byte, error) {
	if raw, ok := v.(bson.Raw); ok {
		return bson.MarshalExtJSON(raw, false, false)
	}
	return json.Marshal(v)
}

// jsonToYAML re-encodes a JSON document as block-style YAML, preserving key
// order.
func jsonToYAML(data []byte) ([]byte, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	blockStyle(&doc)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// blockStyle clears the flow and quoting styles the JSON parse left on n.
// The encoder re-quotes scalars whose plain form would change type.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}
