// Package report renders the coverage matrix as an HTML document.
//
// Rendering is a pure function of its Input. Rows follow decode order;
// level columns follow ascending level key. Every input reference is
// checked before the first byte is written, so a failed render never
// leaves a truncated document behind.
package report

import (
	"io"
	"strconv"

	"golang.org/x/net/html/atom"

	"github.com/roach88/covreport/internal/coverage"
	"github.com/roach88/covreport/internal/ir"
	"github.com/roach88/covreport/internal/markup"
)

// Title heads the document.
const Title = "Coverage Report"

// LabelEvery controls the scan aid: a level cell shows its level name
// only on rows where index % LabelEvery == LabelEvery-1.
const LabelEvery = 10

// Labels resolves a level key to its display name.
type Labels interface {
	Lookup(i int) (string, error)
}

// Input is everything the report is computed from.
type Input struct {
	Objects    []ir.ObjectDescriptor
	Actions    []ir.ActionDescriptor
	LevelNames Labels
	Reachable  *coverage.Reachability
	Covered    *coverage.Coverage
}

type level struct {
	key  int
	name string
}

// cell is one fixed (non-level) table cell.
type cell struct {
	text  string
	class string
	title string
}

func (c cell) attrs() []markup.Attr {
	attrs := []markup.Attr{markup.Class(c.class)}
	if c.title != "" {
		attrs = append(attrs, markup.Title(c.title))
	}
	return attrs
}

// table describes one entity table.
type table struct {
	headers []cell
	rows    int
	cells   func(i int) []cell
	indices func(b ir.Bucket) ir.IndexSet
}

// levels resolves the level columns, failing with MissingStringEntry if
// a manifest level has no name.
func (in Input) levels() ([]level, error) {
	keys := in.Reachable.Levels()
	levels := make([]level, 0, len(keys))
	for _, key := range keys {
		name, err := in.LevelNames.Lookup(key)
		if err != nil {
			return nil, err
		}
		levels = append(levels, level{key: key, name: name})
	}
	return levels, nil
}

// Render writes the report to out.
func Render(out io.Writer, in Input) error {
	levels, err := in.levels()
	if err != nil {
		return err
	}

	w := markup.NewWriter(out)
	return w.Within(atom.Html, nil, func() error {
		err := w.Within(atom.Head, nil, func() error {
			w.Leaf(atom.Title, Title)
			return w.Within(atom.Style, nil, func() error {
				w.Text(styleSheet)
				return nil
			})
		})
		if err != nil {
			return err
		}

		return w.Within(atom.Body, nil, func() error {
			w.Leaf(atom.H1, Title)
			if err := anchor(w, "Objects", "#objects"); err != nil {
				return err
			}
			if err := anchor(w, "Actions", "#actions"); err != nil {
				return err
			}

			w.Leaf(atom.H2, "Objects", markup.ID("objects"))
			if err := renderTable(w, in, levels, objectTable(in.Objects)); err != nil {
				return err
			}

			w.Leaf(atom.H2, "Actions", markup.ID("actions"))
			return renderTable(w, in, levels, actionTable(in.Actions))
		})
	})
}

func anchor(w *markup.Writer, text, href string) error {
	return w.Within(atom.Div, nil, func() error {
		w.Leaf(atom.A, text, markup.Href(href))
		return nil
	})
}

func objectTable(objects []ir.ObjectDescriptor) table {
	return table{
		headers: []cell{
			{text: "#", class: "id"},
			{text: "F", class: "frame"},
			{text: "Object", class: "name"},
			{text: "Class", class: "class"},
			{text: "Race", class: "race"},
		},
		rows: len(objects),
		cells: func(i int) []cell {
			obj := objects[i]
			return []cell{
				{text: strconv.Itoa(i), class: "id"},
				{text: obj.Frame.Initial(), class: "frame", title: obj.Frame.String()},
				{text: obj.ShortName, class: "name", title: obj.Tooltip()},
				{text: obj.Class.String(), class: "class"},
				{text: obj.Race.String(), class: "race"},
			}
		},
		indices: func(b ir.Bucket) ir.IndexSet { return b.Objects },
	}
}

func actionTable(actions []ir.ActionDescriptor) table {
	return table{
		headers: []cell{
			{text: "#", class: "id"},
			{text: "Kind", class: "kind"},
			{text: "What", class: "what"},
		},
		rows: len(actions),
		cells: func(i int) []cell {
			act := actions[i]
			return []cell{
				{text: strconv.Itoa(i), class: "id"},
				{text: act.Kind.String(), class: "kind"},
				{text: act.What, class: "what"},
			}
		},
		indices: func(b ir.Bucket) ir.IndexSet { return b.Actions },
	}
}

func renderTable(w *markup.Writer, in Input, levels []level, t table) error {
	return w.Within(atom.Table, nil, func() error {
		err := w.Within(atom.Tr, nil, func() error {
			for _, h := range t.headers {
				w.Leaf(atom.Th, h.text, h.attrs()...)
			}
			for _, l := range levels {
				w.Leaf(atom.Th, l.name)
			}
			return nil
		})
		if err != nil {
			return err
		}

		for i := 0; i < t.rows; i++ {
			if err := renderRow(w, in, levels, t, i); err != nil {
				return err
			}
		}
		return nil
	})
}

func renderRow(w *markup.Writer, in Input, levels []level, t table, i int) error {
	rowClass := ir.Classify(i, t.indices(in.Covered.All()), t.indices(in.Reachable.All()))

	return w.Within(atom.Tr, []markup.Attr{markup.Class(rowClass.String())}, func() error {
		for _, c := range t.cells(i) {
			w.Leaf(atom.Td, c.text, c.attrs()...)
		}

		for _, l := range levels {
			content := ""
			if i%LabelEvery == LabelEvery-1 {
				content = l.name
			}
			class := ir.Classify(i, t.indices(in.Covered.Level(l.key)), t.indices(in.Reachable.Level(l.key)))
			w.Leaf(atom.Td, content, markup.Class(class.String()+" level"))
		}
		return nil
	})
}
