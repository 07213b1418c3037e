package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"

	"github.com/roach88/covreport/internal/ir"
	"github.com/roach88/covreport/internal/source"
)

const schemaSource = `
#Document: {
	level:   int & >=1
	objects: [...int & >=0]
	actions: [...int & >=0]
	...
}
`

// Loader parses and validates documents. A Loader is not safe for
// concurrent use.
type Loader struct {
	ctx    *cue.Context
	schema cue.Value
}

// NewLoader compiles the document schema.
func NewLoader() *Loader {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaSource, cue.Filename("document.cue")).
		LookupPath(cue.ParsePath("#Document"))
	return &Loader{ctx: ctx, schema: schema}
}

// LoadFile reads path (zstd if it ends in .zst) and parses it.
func (l *Loader) LoadFile(path string) ([]ir.Document, error) {
	data, err := source.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return l.Parse(path, data)
}

// Parse decodes every document in data, in order. data holds any sequence
// of JSON objects and arrays of objects; name labels errors.
func (l *Loader) Parse(name string, data []byte) ([]ir.Document, error) {
	var docs []ir.Document

	dec := json.NewDecoder(bytes.NewReader(data))
	for {
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, invalidDocument(name, len(docs), "malformed JSON", err)
		}

		trimmed := bytes.TrimSpace(raw)
		if len(trimmed) > 0 && trimmed[0] == '[' {
			var items []json.RawMessage
			if err := json.Unmarshal(trimmed, &items); err != nil {
				return nil, invalidDocument(name, len(docs), "malformed JSON", err)
			}
			for _, item := range items {
				doc, err := l.decode(name, len(docs), item)
				if err != nil {
					return nil, err
				}
				docs = append(docs, doc)
			}
			continue
		}

		doc, err := l.decode(name, len(docs), trimmed)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

func (l *Loader) decode(name string, index int, raw []byte) (ir.Document, error) {
	var doc ir.Document

	v := l.ctx.CompileBytes(raw, cue.Filename(name))
	if err := v.Err(); err != nil {
		return doc, invalidDocument(name, index, "malformed document", formatCUEError(err))
	}

	v = l.schema.Unify(v)
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return doc, invalidDocument(name, index, "document does not match schema", formatCUEError(err))
	}

	if err := v.Decode(&doc); err != nil {
		return doc, invalidDocument(name, index, "decoding document", formatCUEError(err))
	}
	return doc, nil
}

func invalidDocument(name string, index int, msg string, err error) *ir.Error {
	return &ir.Error{
		Code:    ir.ErrCodeInvalidDocument,
		Message: msg,
		Path:    name,
		Index:   index,
		Err:     err,
	}
}

// formatCUEError keeps the first CUE error, prefixed with its position.
func formatCUEError(err error) error {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	first := errs[0]
	positions := cueerrors.Positions(first)
	if len(positions) > 0 && positions[0].IsValid() {
		pos := positions[0]
		return fmt.Errorf("%d:%d: %s", pos.Line(), pos.Column(), first.Error())
	}
	return first
}
