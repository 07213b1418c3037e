package decode

import (
	"github.com/roach88/covreport/internal/ir"
)

// Labels resolves the label at a record position.
type Labels interface {
	Lookup(i int) (string, error)
}

// ObjectLabels are the three label arrays aligned with object records.
type ObjectLabels struct {
	Names      Labels
	ShortNames Labels
	Notes      Labels
}

// DecodeObjects decodes a blob of 318-byte object templates.
func DecodeObjects(buf []byte, labels ObjectLabels) ([]ir.ObjectDescriptor, error) {
	objects := make([]ir.ObjectDescriptor, 0, len(buf)/ir.ObjectRecordSize)
	err := eachRecord(buf, ir.ObjectRecordSize, func(i int, chunk []byte) error {
		var rec objectRecord
		if err := decodeRecord(chunk, &rec); err != nil {
			return err
		}

		obj := ir.ObjectDescriptor{
			Class:      ir.OptionalFromRaw(rec.Class),
			Race:       ir.OptionalFromRaw(rec.Race),
			Frame:      ir.FrameFromAttributes(rec.Attributes),
			Attributes: rec.Attributes,
		}

		var err error
		if obj.Name, err = labels.Names.Lookup(i); err != nil {
			return err
		}
		if obj.ShortName, err = labels.ShortNames.Lookup(i); err != nil {
			return err
		}
		if obj.Note, err = labels.Notes.Lookup(i); err != nil {
			return err
		}

		objects = append(objects, obj)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return objects, nil
}
