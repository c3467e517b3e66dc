// Package store persists tracker documents as 2-space-indented JSON files.
// Documents are whole-file reads and whole-file overwrites; there is no
// partial update path and no locking between concurrent invocations.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// defaulter lets document types normalize themselves after decoding, so
// collections serialize as empty rather than null.
type defaulter interface {
	ApplyDefaults()
}

// Load reads the JSON document at path into a value of type T.
//
// A missing file yields a zero value with found=false. A file that cannot be
// read or parsed is reported to stderr and substituted with a zero value and
// found=true: recovery is best-effort, never fatal. Callers that require the
// document to pre-exist (phase results) must check found themselves.
func Load[T any](path string) (doc T, found bool) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		applyDefaults(&doc)
		return doc, false
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not read %s: %v\n", path, err)
		applyDefaults(&doc)
		return doc, true
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not parse %s: %v\n", path, err)
		var zero T
		doc = zero
	}
	applyDefaults(&doc)
	return doc, true
}

// Save serializes the document to path as indented JSON, creating parent
// directories as needed and overwriting any existing file whole.
func Save[T any](path string, doc T) error {
	data, err := Marshal(doc)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Marshal renders a document in the on-disk JSON form without writing it.
func Marshal[T any](doc T) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	return data, nil
}

func applyDefaults(doc any) {
	if d, ok := doc.(defaulter); ok {
		d.ApplyDefaults()
	}
}
