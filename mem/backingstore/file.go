package backingstore

import (
	"fmt"
	"os"
)

// FileStorage reads values from a binary file without loading it into memory.
type FileStorage struct {
	file *os.File
	size uint64
}

// OpenFile opens the file at path as a read-only store.
func OpenFile(path string) (*FileStorage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open backing store: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat backing store: %w", err)
	}

	return &FileStorage{
		file: f,
		size: uint64(info.Size()),
	}, nil
}

// Size returns the length of the file in bytes.
func (s *FileStorage) Size() uint64 {
	return s.size
}

// ValueAt reads the byte at addr and interprets it as a signed value.
func (s *FileStorage) ValueAt(addr uint64) (int8, error) {
	if addr >= s.size {
		return 0, outOfRange(addr, s.size)
	}

	buf := make([]byte, 1)

	_, err := s.file.ReadAt(buf, int64(addr))
	if err != nil {
		return 0, fmt.Errorf("read backing store at %d: %w", addr, err)
	}

	return int8(buf[0]), nil
}

// Close releases the file.
func (s *FileStorage) Close() error {
	return s.file.Close()
}
