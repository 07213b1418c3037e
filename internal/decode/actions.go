package decode

import (
	"fmt"
	"strconv"

	"github.com/roach88/covreport/internal/ir"
)

// DecodeActions decodes a blob of 48-byte object actions.
//
// Unknown kind bytes and unknown alter codes do not fail the decode; they
// produce an empty kind or what and are returned as notices
// (ir.ErrCodeUnknownKind, ir.ErrCodeUnknownAlterType) for the caller to
// log. A create or create2 action naming an object outside objects is
// fatal.
func DecodeActions(buf []byte, objects []ir.ObjectDescriptor) ([]ir.ActionDescriptor, []*ir.Error, error) {
	var notices []*ir.Error
	actions := make([]ir.ActionDescriptor, 0, len(buf)/ir.ActionRecordSize)

	err := eachRecord(buf, ir.ActionRecordSize, func(i int, chunk []byte) error {
		var rec actionRecord
		if err := decodeRecord(chunk, &rec); err != nil {
			return err
		}

		act := ir.ActionDescriptor{Kind: ir.ActionKind(rec.Kind), Raw: rec.What}
		if !act.Kind.Known() {
			notices = append(notices, &ir.Error{
				Code:    ir.ErrCodeUnknownKind,
				Message: fmt.Sprintf("kind byte %d", rec.Kind),
				Index:   i,
			})
		}

		switch act.Kind {
		case ir.KindAlter:
			code := rec.What >> 24
			name, ok := ir.AlterTypeName(code)
			if !ok {
				notices = append(notices, &ir.Error{
					Code:    ir.ErrCodeUnknownAlterType,
					Message: fmt.Sprintf("alter code %d", code),
					Index:   i,
				})
			}
			act.What = name
		case ir.KindCreate, ir.KindCreate2:
			if rec.What < 0 || int(rec.What) >= len(objects) {
				err := ir.NewMissingStringEntryError("objects", int(rec.What), len(objects))
				err.Message = fmt.Sprintf("action %d creates object %d but %s", i, rec.What, err.Message)
				return err
			}
			act.What = objects[rec.What].ShortName
		case ir.KindMessage:
			act.What = strconv.Itoa(int(rec.What >> 16))
		case ir.KindWin:
			act.What = strconv.Itoa(int(rec.What))
		}

		actions = append(actions, act)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return actions, notices, nil
}
