package cube

import (
	"encoding/binary"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Table files hold a little-endian uint64 element count followed by the
// packed little-endian elements. The loader refuses files whose payload
// does not match the count exactly.

func writeTableFile[T uint8 | uint16 | uint32](path string, table []T) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	buf := make([]byte, 8+len(table)*sizeOf[T]())
	binary.LittleEndian.PutUint64(buf, uint64(len(table)))
	off := 8
	for _, v := range table {
		putElem(buf[off:], v)
		off += sizeOf[T]()
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func readTableFile[T uint8 | uint16 | uint32](path string, want int) ([]T, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(raw) < 8 {
		return nil, fmt.Errorf("%s: truncated header", path)
	}
	n := binary.LittleEndian.Uint64(raw)
	if int(n) != want {
		return nil, fmt.Errorf("%s: %d elements, want %d", path, n, want)
	}
	payload := raw[8:]
	elem := sizeOf[T]()
	if len(payload) < want*elem {
		return nil, fmt.Errorf("%s: truncated payload", path)
	}
	if len(payload) > want*elem {
		return nil, fmt.Errorf("%s: %w", path, ErrUnexpectedEnd)
	}
	table := make([]T, want)
	for i := range table {
		table[i] = getElem[T](payload[i*elem:])
	}
	return table, nil
}

// loadOrBuildTable returns the table from its cache file, or builds it and
// writes the cache when the file is missing.
func loadOrBuildTable[T uint8 | uint16 | uint32](dir, name string, want int, build func() []T) ([]T, error) {
	path := filepath.Join(dir, name)
	if table, err := readTableFile[T](path, want); err == nil {
		return table, nil
	} else if !os.IsNotExist(err) {
		return nil, err
	}
	log.Printf("creating %s table...", path)
	table := build()
	if len(table) != want {
		return nil, fmt.Errorf("%s: built %d elements, want %d", path, len(table), want)
	}
	if err := writeTableFile(path, table); err != nil {
		return nil, err
	}
	return table, nil
}

func sizeOf[T uint8 | uint16 | uint32]() int {
	var v T
	switch any(v).(type) {
	case uint8:
		return 1
	case uint16:
		return 2
	default:
		return 4
	}
}

func putElem[T uint8 | uint16 | uint32](b []byte, v T) {
	switch x := any(v).(type) {
	case uint8:
		b[0] = x
	case uint16:
		binary.LittleEndian.PutUint16(b, x)
	case uint32:
		binary.LittleEndian.PutUint32(b, x)
	}
}

func getElem[T uint8 | uint16 | uint32](b []byte) T {
	var v T
	switch any(v).(type) {
	case uint8:
		return T(b[0])
	case uint16:
		return T(binary.LittleEndian.Uint16(b))
	default:
		return T(binary.LittleEndian.Uint32(b))
	}
}
