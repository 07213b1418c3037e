// Package source reads input files for a single run.
//
// Every input is read fully and its handle closed before ReadFile returns.
// Files ending in .zst are zstd-decompressed transparently, so archived
// session captures can be passed as-is.
package source

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// CompressedExt marks an input as zstd-compressed.
const CompressedExt = ".zst"

// ReadFile returns the (decompressed) contents of path.
func ReadFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if !strings.HasSuffix(path, CompressedExt) {
		return io.ReadAll(f)
	}

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("zstd: %w", err)
	}
	defer dec.Close()

	data, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("zstd decode: %w", err)
	}
	return data, nil
}
