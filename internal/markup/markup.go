// Package markup streams indented HTML.
//
// A Writer owns its nesting depth: Open writes a start tag and descends,
// Element.Close ascends and writes the end tag. Within pairs the two so
// the end tag is written and the depth restored on every exit path,
// including a body that returns an error or panics. Element kinds are the
// closed set of golang.org/x/net/html/atom values.
//
// Output layout, two spaces per level:
//
//	<table>
//	  <tr class="covered">
//	    <td class="id">0</td>
//	  </tr>
//	</table>
package markup

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const indentUnit = "  "

// ErrUnknownElement is returned for the zero atom.
var ErrUnknownElement = errors.New("markup: unknown element")

// Attr is one attribute of a start tag. Attributes are written in the
// order given.
type Attr struct {
	Key string
	Val string
}

func Class(v string) Attr { return Attr{Key: "class", Val: v} }
func Title(v string) Attr { return Attr{Key: "title", Val: v} }
func Href(v string) Attr  { return Attr{Key: "href", Val: v} }
func ID(v string) Attr    { return Attr{Key: "id", Val: v} }

// Writer emits markup to an io.Writer. The first write error is sticky:
// later calls do nothing and Err reports it.
type Writer struct {
	w     io.Writer
	depth int
	err   error
}

// NewWriter returns a Writer at depth zero.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Depth is the current nesting level.
func (w *Writer) Depth() int {
	return w.depth
}

// Err returns the first error encountered.
func (w *Writer) Err() error {
	return w.err
}

// Element is an open element. Close it exactly once; further calls are
// ignored.
type Element struct {
	w      *Writer
	tag    atom.Atom
	closed bool
}

// Open writes a start tag on its own line and descends one level.
func (w *Writer) Open(tag atom.Atom, attrs ...Attr) *Element {
	if tag == 0 {
		w.fail(ErrUnknownElement)
	}
	w.line(startTag(tag, attrs))
	w.depth++
	return &Element{w: w, tag: tag}
}

// Close ascends one level and writes the end tag.
func (e *Element) Close() {
	if e.closed {
		return
	}
	e.closed = true
	e.w.depth--
	e.w.line("</" + e.tag.String() + ">")
}

// Within opens tag, runs body, and closes tag however body exits.
func (w *Writer) Within(tag atom.Atom, attrs []Attr, body func() error) error {
	el := w.Open(tag, attrs...)
	defer el.Close()
	if err := body(); err != nil {
		return err
	}
	return w.err
}

// Leaf writes an element and its escaped text content on one line.
func (w *Writer) Leaf(tag atom.Atom, content string, attrs ...Attr) {
	if tag == 0 {
		w.fail(ErrUnknownElement)
	}
	w.line(startTag(tag, attrs) + html.EscapeString(content) + "</" + tag.String() + ">")
}

// Text writes escaped text at the current depth. Continuation lines are
// indented to the same depth.
func (w *Writer) Text(s string) {
	indent := w.indent()
	w.line(html.EscapeString(strings.ReplaceAll(s, "\n", "\n"+indent)))
}

func (w *Writer) indent() string {
	if w.depth <= 0 {
		return ""
	}
	return strings.Repeat(indentUnit, w.depth)
}

func (w *Writer) line(s string) {
	if w.err != nil {
		return
	}
	if _, err := io.WriteString(w.w, w.indent()+s+"\n"); err != nil {
		w.err = err
	}
}

func (w *Writer) fail(err error) {
	if w.err == nil {
		w.err = err
	}
}

func startTag(tag atom.Atom, attrs []Attr) string {
	var sb strings.Builder
	sb.WriteString("<")
	sb.WriteString(tag.String())
	for _, a := range attrs {
		sb.WriteString(" ")
		sb.WriteString(a.Key)
		sb.WriteString(`="`)
		sb.WriteString(html.EscapeString(a.Val))
		sb.WriteString(`"`)
	}
	sb.WriteString(">")
	return sb.String()
}
