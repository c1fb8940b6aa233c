// Package zip builds in-memory archives for data exports.
package zip

import (
	"archive/zip"
	"bytes"
	"fmt"
)

// Entry is one file inside an archive.
type Entry struct {
	Name string
	Data []byte
}

// Archive writes the entries into a zip held fully in memory. Entries are
// stored in the order given; duplicate names are the caller's problem.
func Archive(entries []Entry) ([]byte, error) {
	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)
	for _, entry := range entries {
		if entry.Name == "" {
			return nil, fmt.Errorf("zip: entry without a name")
		}
		w, err := zw.Create(entry.Name)
		if err != nil {
			return nil, fmt.Errorf("zip: create %s: %w", entry.Name, err)
		}
		if _, err := w.Write(entry.Data); err != nil {
			return nil, fmt.Errorf("zip: write %s: %w", entry.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("zip: close archive: %w", err)
	}
	return buf.Bytes(), nil
}
