package lecture

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// File naming convention: lec_<2+ digit zero-padded id>.<ext>.
const (
	filePrefix = "lec_"
	idPadWidth = 2

	dirPerms  = 0o750
	filePerms = 0o600
)

// fileRe extracts the numeric id from a document file name (extension
// already stripped).
var fileRe = regexp.MustCompile(`^lec_(\d{2,})$`)

// Result is one store entry: either a parsed record or the error that
// prevented parsing it. Batch operations keep going past errored
// entries; callers report them as partial failures.
type Result struct {
	ID       int
	Path     string
	Record   *Record
	Doc      *Document
	Err      error
	Warnings []error
}

// Store is the logical collection of all records in a document set.
// Views depend on this interface so tests can substitute an in-memory
// fake for the file-backed implementation.
type Store interface {
	// List returns all records ordered by ascending id. The document
	// set is re-scanned on every call; nothing is cached, because
	// documents can change between calls.
	List() ([]Result, error)

	// Get returns the record backed by document id, or ErrNotFound.
	Get(id int) (*Record, error)
}

// FSStore is the default Store: a directory of lecture documents plus
// an append-only log file. The documents themselves are the source of
// truth; the log is write-only history.
type FSStore struct {
	dir     string
	ext     string
	logPath string
}

// NewFSStore returns a store over the configured notes directory.
func NewFSStore(cfg Config) *FSStore {
	return &FSStore{
		dir:     cfg.NotesDirAbs,
		ext:     cfg.Extension,
		logPath: cfg.LogFileAbs,
	}
}

// Path returns the canonical document path for a lecture id. New
// documents are created under this name; lookups go through
// DocumentPath, which also accepts wider zero padding.
func (s *FSStore) Path(id int) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s%0*d%s", filePrefix, idPadWidth, id, s.ext))
}

// DocumentPath returns the path of the existing document for id, or
// ErrNotFound.
func (s *FSStore) DocumentPath(id int) (string, error) {
	path, ok := s.resolvePath(id)
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrNotFound, id)
	}

	return path, nil
}

// resolvePath finds the document backing id. The canonical two-digit
// padding is tried first; the naming convention allows wider zero
// padding for the same id, so fall back to matching parsed ids across
// the directory.
func (s *FSStore) resolvePath(id int) (string, bool) {
	canonical := s.Path(id)
	if _, err := os.Stat(canonical); err == nil {
		return canonical, true
	}

	matches, err := doublestar.FilepathGlob(filepath.Join(s.dir, filePrefix+"*"+s.ext))
	if err != nil {
		return "", false
	}

	for _, path := range matches {
		if parsed, ok := idFromPath(path, s.ext); ok && parsed == id {
			return path, true
		}
	}

	return "", false
}

// Exists reports whether a document with the given id exists.
func (s *FSStore) Exists(id int) bool {
	_, ok := s.resolvePath(id)
	return ok
}

// idFromPath extracts the lecture id from a document path, reporting
// whether the name follows the convention.
func idFromPath(path, ext string) (int, bool) {
	stem := strings.TrimSuffix(filepath.Base(path), ext)

	m := fileRe.FindStringSubmatch(stem)
	if m == nil {
		return 0, false
	}

	id, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}

	return id, true
}

// List scans the notes directory for documents matching the naming
// convention and parses each one. Per-document parse failures are
// carried in the Result, not returned as the scan error.
func (s *FSStore) List() ([]Result, error) {
	// Notes directory missing => no lectures.
	_, statErr := os.Stat(s.dir)
	if os.IsNotExist(statErr) {
		return []Result{}, nil
	}

	if statErr != nil {
		return nil, fmt.Errorf("reading notes directory: %w", statErr)
	}

	pattern := filepath.Join(s.dir, filePrefix+"*"+s.ext)

	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("scanning notes directory: %w", err)
	}

	results := make([]Result, 0, len(matches))

	for _, path := range matches {
		id, ok := idFromPath(path, s.ext)
		if !ok {
			continue // not part of the document set
		}

		result := Result{ID: id, Path: path}

		rec, doc, readErr := ReadLecture(path, id)
		if readErr != nil {
			result.Err = readErr
		} else {
			result.Record = rec
			result.Doc = doc
			result.Warnings = doc.Warnings()
		}

		results = append(results, result)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].ID < results[j].ID })

	return results, nil
}

// Get returns the record for document id, or ErrNotFound.
func (s *FSStore) Get(id int) (*Record, error) {
	rec, _, err := s.Read(id)
	return rec, err
}

// Read returns the record plus the parsed document for id, so callers
// can feed the raw text to the content extractor without re-reading.
func (s *FSStore) Read(id int) (*Record, *Document, error) {
	path, err := s.DocumentPath(id)
	if err != nil {
		return nil, nil, err
	}

	return ReadLecture(path, id)
}

// NextID returns the next unused lecture id (max existing + 1, or 1
// for an empty set).
func (s *FSStore) NextID() (int, error) {
	results, err := s.List()
	if err != nil {
		return 0, err
	}

	max := 0

	for _, result := range results {
		if result.ID > max {
			max = result.ID
		}
	}

	return max + 1, nil
}
