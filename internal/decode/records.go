package decode

import (
	"bytes"
	"encoding/binary"

	"github.com/roach88/covreport/internal/ir"
)

// objectRecord is the on-disk layout of an object template. Blank fields
// are padding and are skipped by binary.Read.
type objectRecord struct {
	Attributes uint32
	Class      int32
	Race       int32
	_          [306]byte
}

// actionRecord is the on-disk layout of an object action.
type actionRecord struct {
	Kind uint8
	_    [23]byte
	What int32
	_    [20]byte
}

// eachRecord slices buf into size-byte chunks and calls fn with each
// chunk's position. It fails before calling fn if buf has trailing bytes.
func eachRecord(buf []byte, size int, fn func(i int, chunk []byte) error) error {
	if len(buf)%size != 0 {
		return ir.NewMalformedBinaryError(len(buf), size)
	}
	for i := 0; i*size < len(buf); i++ {
		if err := fn(i, buf[i*size:(i+1)*size]); err != nil {
			return err
		}
	}
	return nil
}

func decodeRecord(chunk []byte, rec any) error {
	return binary.Read(bytes.NewReader(chunk), binary.BigEndian, rec)
}
