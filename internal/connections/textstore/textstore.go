// Package textstore is the flat-file backend every repository reads and
// writes through. A dataset is one delimited text file: one record per
// line, fields joined by a fixed delimiter, no header row.
//
// Contract and limitations, deliberately preserved from the data format:
//   - SaveAll replaces the whole dataset in one truncate-and-rewrite; there
//     is no locking and no isolation, so exactly one process may write at a
//     time (single-writer precondition).
//   - A field containing the delimiter is not escaped; callers must keep it
//     out of free text. This is a documented format fragility, not a bug.
//   - A crash mid-SaveAll can lose the dataset; there is no recovery path.
package textstore

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const Delimiter = ","

type Store struct {
	dir string
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(dataset string) string {
	return filepath.Join(s.dir, dataset)
}

// LoadAll returns every record of the dataset in file order. A missing
// dataset is an empty dataset, not an error. Blank lines are skipped;
// field-count checks belong to the repository that owns the schema.
func (s *Store) LoadAll(dataset string) ([][]string, error) {
	f, err := os.Open(s.path(dataset))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open dataset %s: %w", dataset, err)
	}
	defer f.Close()

	var records [][]string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		records = append(records, strings.Split(line, Delimiter))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", dataset, err)
	}
	return records, nil
}

// SaveAll replaces the dataset's entire contents with the given records.
func (s *Store) SaveAll(dataset string, records [][]string) error {
	f, err := os.Create(s.path(dataset))
	if err != nil {
		return fmt.Errorf("failed to rewrite dataset %s: %w", dataset, err)
	}
	w := bufio.NewWriter(f)
	for _, rec := range records {
		if _, err := w.WriteString(strings.Join(rec, Delimiter) + "\n"); err != nil {
			f.Close()
			return fmt.Errorf("failed to write dataset %s: %w", dataset, err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("failed to flush dataset %s: %w", dataset, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close dataset %s: %w", dataset, err)
	}
	return nil
}

// EnsureDatasets creates any absent dataset files empty, so a first run
// starts from a complete (if blank) data directory.
func (s *Store) EnsureDatasets(datasets ...string) error {
	for _, d := range datasets {
		f, err := os.OpenFile(s.path(d), os.O_CREATE, 0o644)
		if err != nil {
			return fmt.Errorf("failed to create dataset %s: %w", d, err)
		}
		f.Close()
	}
	return nil
}
