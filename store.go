package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"
	"syscall"
)

// Document file names under the data directory, one per content kind.
const (
	projectsFile = "projects.json"
	profileFile  = "profile.json"
	skillsFile   = "skills.json"
)

// FileStore is a best-effort local cache of the site content. Reads never
// fail outward; writes are skipped entirely in read-only mode because the
// GitHub copy is the durable one there.
type FileStore struct {
	Dir      string
	ReadOnly bool
}

func NewFileStore(dir string, readOnly bool) *FileStore {
	return &FileStore{Dir: dir, ReadOnly: readOnly}
}

// Read unmarshals the named document into out. A missing file or bad JSON
// leaves out untouched so the caller's zero value (or seed default) stands.
// Returns whether the document was actually loaded.
func (s *FileStore) Read(name string, out any) bool {
	data, err := os.ReadFile(filepath.Join(s.Dir, name))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Error reading %s: %v", name, err)
		}
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Printf("Error parsing %s: %v", name, err)
		return false
	}
	return true
}

// Write persists the document as 4-space-indented JSON via a temp file and
// rename. Failures are logged and swallowed; local durability is best-effort.
func (s *FileStore) Write(name string, doc any) {
	if s.ReadOnly {
		return
	}

	data, err := marshalIndent(doc)
	if err != nil {
		log.Printf("Error encoding %s: %v", name, err)
		return
	}

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		if errors.Is(err, syscall.EROFS) {
			return
		}
		log.Printf("Error creating data dir: %v", err)
		return
	}

	path := filepath.Join(s.Dir, name)
	tmp, err := os.CreateTemp(s.Dir, name+".tmp-*")
	if err != nil {
		if errors.Is(err, syscall.EROFS) {
			return
		}
		log.Printf("Error writing %s: %v", name, err)
		return
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		log.Printf("Error writing %s: %v", name, err)
		return
	}
	if err := tmp.Close(); err != nil {
		log.Printf("Error writing %s: %v", name, err)
		return
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		log.Printf("Error writing %s: %v", name, err)
	}
}

// marshalIndent matches the on-disk formatting the admin repo has always
// used, with HTML escaping off so URLs stay readable in diffs.
func marshalIndent(doc any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
