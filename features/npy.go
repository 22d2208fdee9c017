package features

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// npyMagic opens every .npy file; version 1.0 follows.
const npyMagic = "\x93NUMPY"

// npyAlign is the alignment of the data section.
const npyAlign = 64

// FileName returns "<dataset>-<kind>-<split>.npy".
func FileName(dataset string, kind Kind, split string) string {
	return fmt.Sprintf("%s-%s-%s.npy", dataset, kind, split)
}

// WriteNPY writes s as a little-endian float32 array of shape (Rows, Dim)
// in .npy format version 1.0.
func (s *Set) WriteNPY(w io.Writer) error {
	dict := fmt.Sprintf("{'descr': '<f4', 'fortran_order': False, 'shape': (%d, %d), }", s.Rows, s.Dim)

	// magic(6) + version(2) + header length(2) + dict + padding + '\n'
	pre := len(npyMagic) + 2 + 2
	pad := npyAlign - (pre+len(dict)+1)%npyAlign
	if pad == npyAlign {
		pad = 0
	}
	header := dict + strings.Repeat(" ", pad) + "\n"

	var buf bytes.Buffer
	buf.Grow(pre + len(header))
	buf.WriteString(npyMagic)
	buf.Write([]byte{1, 0})
	_ = binary.Write(&buf, binary.LittleEndian, uint16(len(header)))
	buf.WriteString(header)

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("features: write npy header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, s.Data[:s.Rows*s.Dim]); err != nil {
		return fmt.Errorf("features: write npy data: %w", err)
	}

	return nil
}

// Save writes s to dir/FileName(dataset, s.Kind, s.Split) and returns the
// path.
func (s *Set) Save(dir, dataset string) (string, error) {
	path := filepath.Join(dir, FileName(dataset, s.Kind, s.Split))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("features: %w", err)
	}
	if err = s.WriteNPY(f); err != nil {
		f.Close()

		return "", err
	}
	if err = f.Close(); err != nil {
		return "", fmt.Errorf("features: %w", err)
	}

	return path, nil
}
