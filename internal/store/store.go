// Package store persists the calculator's memory value as a decimal number in
// a plain-text file.
package store

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultPath is the file used when no other is configured.
const DefaultPath = "memory.dat"

// Store reads and writes a single float64 in a file.
type Store struct {
	path string
	fs   afero.Fs
}

// Option configures a Store.
type Option func(*Store)

// WithFs sets the filesystem the store uses. This is primarily useful for
// testing with afero.NewMemMapFs.
func WithFs(fs afero.Fs) Option {
	return func(s *Store) {
		s.fs = fs
	}
}

// Open creates a store for the file at path. Nothing is read or written until
// Load or Save.
func Open(path string, opts ...Option) *Store {
	s := &Store{
		path: path,
		fs:   afero.NewOsFs(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the file the store uses.
func (s *Store) Path() string {
	return s.path
}

// Load reads the stored value. A missing file holds 0. If the file exists but
// does not begin with a number, the result is 0 and an error.
func (s *Store) Load() (float64, error) {
	f, err := s.fs.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to open memory file: %w", err)
	}
	defer f.Close()
	b, err := io.ReadAll(NewDecoder(f))
	if err != nil {
		return 0, fmt.Errorf("failed to read memory file: %w", err)
	}
	fields := strings.Fields(string(b))
	if len(fields) == 0 {
		return 0, fmt.Errorf("memory file %s is empty", s.path)
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse memory file: %w", err)
	}
	return v, nil
}

// Save replaces the stored value with v.
func (s *Store) Save(v float64) error {
	b := strconv.AppendFloat(nil, v, 'g', -1, 64)
	b = append(b, '\n')
	if err := afero.WriteFile(s.fs, s.path, b, 0o644); err != nil {
		return fmt.Errorf("failed to write memory file: %w", err)
	}
	return nil
}

// NewDecoder wraps r so that UTF-16 text with a byte order mark is transcoded
// to UTF-8. Other input passes through as UTF-8, with the BOM removed.
func NewDecoder(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}
