// Package flagstore provides a file-backed chip8.FlagsStore, persisting
// the SUPER-CHIP RPL user flags as a flat 8-byte file with no header,
// one byte per register V0..V7 in order.
package flagstore

import (
	"os"

	"github.com/gravelwind/chip8vm/chip8"
)

// FileStore persists flags to a single file on disk. It satisfies
// chip8.FlagsStore; any I/O failure is reported rather than panicking,
// and never perturbs VM state.
type FileStore struct {
	path string
}

// NewFileStore returns a FlagsStore backed by the file at path. The
// file is not required to exist yet; Load reports ok=false until the
// first successful Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads up to 8 bytes from the backing file. A missing or empty
// file, or any other I/O error, is reported as (zero value, false)
// rather than as an error, per the "absence of prior data" contract.
// A file shorter than 8 bytes fills the leading bytes and is reported
// as ok; the remaining bytes are zero.
func (s *FileStore) Load() (data [8]byte, ok bool) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return data, false
	}

	n := copy(data[:], raw)
	return data, n > 0
}

// Save writes the 8 flag bytes to the backing file, truncating any
// previous contents.
func (s *FileStore) Save(data [8]byte) error {
	return os.WriteFile(s.path, data[:], 0o644)
}

var _ chip8.FlagsStore = (*FileStore)(nil)
