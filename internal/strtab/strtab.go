// Package strtab loads the scenario's positional label arrays.
//
// A table is a JSON array of strings; entry i labels record i of the
// matching binary blob. Labels are NFC-normalized on load.
package strtab

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/covreport/internal/ir"
	"github.com/roach88/covreport/internal/source"
)

// Table is an ordered, read-only label array.
type Table struct {
	name   string
	path   string
	labels []string
}

// New builds a table from labels already in memory.
func New(name string, labels []string) *Table {
	normalized := make([]string, len(labels))
	for i, l := range labels {
		normalized[i] = norm.NFC.String(l)
	}
	return &Table{name: name, labels: normalized}
}

// Load reads a JSON string array from path.
func Load(name, path string) (*Table, error) {
	data, err := source.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	var labels []string
	if err := json.Unmarshal(data, &labels); err != nil {
		return nil, &ir.Error{
			Code:    ir.ErrCodeInvalidDocument,
			Message: fmt.Sprintf("%s must be a JSON array of strings", name),
			Path:    path,
			Index:   ir.NoIndex,
			Err:     err,
		}
	}

	t := New(name, labels)
	t.path = path
	return t, nil
}

// Name identifies the table in error messages.
func (t *Table) Name() string {
	return t.name
}

// Len returns the number of labels.
func (t *Table) Len() int {
	return len(t.labels)
}

// Lookup returns label i, or a MissingStringEntry error.
func (t *Table) Lookup(i int) (string, error) {
	if i < 0 || i >= len(t.labels) {
		err := ir.NewMissingStringEntryError(t.name, i, len(t.labels))
		err.Path = t.path
		return "", err
	}
	return t.labels[i], nil
}

// LevelMarker separates the chapter prefix from the level title in the
// raw level-name strings.
const LevelMarker = `\i`

// LevelNames derives the column titles from the raw level-name table.
//
// Each raw label is split on LevelMarker and the segment after the first
// marker is kept, up to any second marker. The result is filtered to
// [A-Z0-9]. A label without a marker is filtered whole.
func LevelNames(raw *Table) *Table {
	names := make([]string, len(raw.labels))
	for i, l := range raw.labels {
		names[i] = LevelName(l)
	}
	return &Table{name: "level names", path: raw.path, labels: names}
}

// LevelName applies the LevelNames rule to a single label.
func LevelName(raw string) string {
	parts := strings.Split(raw, LevelMarker)
	segment := parts[0]
	if len(parts) > 1 {
		segment = parts[1]
	}
	return strings.Map(func(r rune) rune {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, segment)
}
