// Package input reads puzzle and graph files through an afero filesystem,
// so callers and tests can swap the real disk for an in-memory one.
package input

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// Reader loads text files from Fs.
type Reader struct {
	Fs afero.Fs
}

// NewOsReader returns a Reader over the real filesystem.
func NewOsReader() *Reader {
	return &Reader{Fs: afero.NewOsFs()}
}

// ReadFile returns the whole file as a string.
func (r *Reader) ReadFile(path string) (string, error) {
	data, err := afero.ReadFile(r.Fs, path)
	if err != nil {
		return "", fmt.Errorf("input: read %q: %w", path, err)
	}

	return string(data), nil
}

// ReadLines returns the file split into lines. CRLF endings are accepted and a
// trailing newline does not produce an empty last line.
func (r *Reader) ReadLines(path string) ([]string, error) {
	text, err := r.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return SplitLines(text), nil
}

// ReadTokens returns the whitespace-separated fields of the file.
func (r *Reader) ReadTokens(path string) ([]string, error) {
	text, err := r.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return strings.Fields(text), nil
}

// SplitLines splits text on "\n", dropping "\r" before each break and the
// empty element after a final newline.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}

	return lines
}
