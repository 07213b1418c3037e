package testutil

import (
	"encoding/binary"
)

// ObjectRecord builds one 318-byte object template.
func ObjectRecord(attributes uint32, class, race int32) []byte {
	rec := make([]byte, 318)
	binary.BigEndian.PutUint32(rec[0:4], attributes)
	binary.BigEndian.PutUint32(rec[4:8], uint32(class))
	binary.BigEndian.PutUint32(rec[8:12], uint32(race))
	// Padding is never read; fill it so decoders that read it would show.
	for i := 12; i < len(rec); i++ {
		rec[i] = 0xee
	}
	return rec
}

// ActionRecord builds one 48-byte object action.
func ActionRecord(kind uint8, what int32) []byte {
	rec := make([]byte, 48)
	rec[0] = kind
	for i := 1; i < 24; i++ {
		rec[i] = 0xee
	}
	binary.BigEndian.PutUint32(rec[24:28], uint32(what))
	for i := 28; i < len(rec); i++ {
		rec[i] = 0xee
	}
	return rec
}

// Concat joins records into one blob.
func Concat(records ...[]byte) []byte {
	var out []byte
	for _, r := range records {
		out = append(out, r...)
	}
	return out
}

// Labels is an in-memory label array.
type Labels []string

// Lookup returns the label at i. Out-of-range lookups return "".
func (l Labels) Lookup(i int) (string, error) {
	if i < 0 || i >= len(l) {
		return "", nil
	}
	return l[i], nil
}
