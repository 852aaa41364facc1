package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	cnsErrors "github.com/yugabyte/ybstats/pkg/errors"
	"github.com/yugabyte/ybstats/pkg/model"
)

// DefaultRoot is the default snapshot store directory (§4.4, §6).
const DefaultRoot = "./yb_stats.snapshots"

const indexFileName = "snapshot.index"

var indexHeader = []string{"number", "timestamp", "comment"}

// Store is a snapshot store rooted at a directory on local disk.
type Store struct {
	Root string
}

// New builds a Store rooted at root. An empty root defaults to
// DefaultRoot.
func New(root string) *Store {
	if root == "" {
		root = DefaultRoot
	}
	return &Store{Root: root}
}

func (s *Store) indexPath() string {
	return filepath.Join(s.Root, indexFileName)
}

func (s *Store) snapshotDir(number int) string {
	return filepath.Join(s.Root, strconv.Itoa(number))
}

func (s *Store) kindPath(number int, kind model.Kind) string {
	return filepath.Join(s.snapshotDir(number), string(kind)+".json")
}

// List reads and returns every snapshot in the index, in file order. A
// missing index (first-ever run) is not an error: it returns an empty
// list.
func (s *Store) List() ([]model.Snapshot, error) {
	f, err := os.Open(s.indexPath())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, cnsErrors.Wrap(cnsErrors.ErrCodeStore, "failed to open snapshot index", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, cnsErrors.Wrap(cnsErrors.ErrCodeStore, "failed to read snapshot index", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	snapshots := make([]model.Snapshot, 0, len(rows)-1)
	for _, row := range rows[1:] { // skip header
		snap, err := parseIndexRow(row)
		if err != nil {
			return nil, cnsErrors.Wrap(cnsErrors.ErrCodeStore, "failed to parse snapshot index row", err)
		}
		snapshots = append(snapshots, snap)
	}
	return snapshots, nil
}

func parseIndexRow(row []string) (model.Snapshot, error) {
	if len(row) != 3 {
		return model.Snapshot{}, fmt.Errorf("expected 3 columns, got %d", len(row))
	}
	number, err := strconv.Atoi(row[0])
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("invalid snapshot number %q: %w", row[0], err)
	}
	ts, err := time.Parse(time.RFC3339, row[1])
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("invalid timestamp %q: %w", row[1], err)
	}
	return model.Snapshot{Number: number, Timestamp: ts, Comment: row[2]}, nil
}

// AllocateNew ensures the store root exists, picks the next snapshot
// number (max(existing)+1, or 0 if empty), appends it to the index, and
// creates the per-snapshot subdirectory.
func (s *Store) AllocateNew(comment string) (int, error) {
	if err := os.MkdirAll(s.Root, 0o755); err != nil {
		return 0, cnsErrors.Wrap(cnsErrors.ErrCodeStore, "failed to create snapshot store root", err)
	}

	existing, err := s.List()
	if err != nil {
		return 0, err
	}

	number := 0
	for _, snap := range existing {
		if snap.Number >= number {
			number = snap.Number + 1
		}
	}

	now := time.Now()
	existing = append(existing, model.Snapshot{Number: number, Timestamp: now, Comment: comment})

	if err := s.writeIndex(existing); err != nil {
		return 0, err
	}

	if err := os.MkdirAll(s.snapshotDir(number), 0o755); err != nil {
		return 0, cnsErrors.Wrap(cnsErrors.ErrCodeStore, "failed to create snapshot directory", err)
	}

	return number, nil
}

func (s *Store) writeIndex(snapshots []model.Snapshot) error {
	f, err := os.Create(s.indexPath())
	if err != nil {
		return cnsErrors.Wrap(cnsErrors.ErrCodeStore, "failed to rewrite snapshot index", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(indexHeader); err != nil {
		return cnsErrors.Wrap(cnsErrors.ErrCodeStore, "failed to write snapshot index header", err)
	}
	for _, snap := range snapshots {
		row := []string{
			strconv.Itoa(snap.Number),
			snap.Timestamp.Format(time.RFC3339),
			snap.Comment,
		}
		if err := w.Write(row); err != nil {
			return cnsErrors.Wrap(cnsErrors.ErrCodeStore, "failed to write snapshot index row", err)
		}
	}
	w.Flush()
	return w.Error()
}

// WriteKind serializes records to <root>/<number>/<kind>.json, a stable
// JSON array, overwriting any existing file.
func WriteKind[T any](s *Store, number int, kind model.Kind, records []T) error {
	if err := os.MkdirAll(s.snapshotDir(number), 0o755); err != nil {
		return cnsErrors.Wrap(cnsErrors.ErrCodeStore, "failed to create snapshot directory", err)
	}

	f, err := os.Create(s.kindPath(number, kind))
	if err != nil {
		return cnsErrors.Wrap(cnsErrors.ErrCodeStore, "failed to create kind file", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	if records == nil {
		records = []T{}
	}
	if err := enc.Encode(records); err != nil {
		return cnsErrors.Wrap(cnsErrors.ErrCodeStore, "failed to encode kind file", err)
	}
	return nil
}

// ReadKind loads and decodes <root>/<number>/<kind>.json. A missing file
// is non-fatal (§7): it returns a nil slice and no error, so callers can
// skip that kind's diff section.
func ReadKind[T any](s *Store, number int, kind model.Kind) ([]T, error) {
	f, err := os.Open(s.kindPath(number, kind))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, cnsErrors.Wrap(cnsErrors.ErrCodeStore, "failed to open kind file", err)
	}
	defer f.Close()

	var records []T
	if err := json.NewDecoder(f).Decode(&records); err != nil {
		return nil, cnsErrors.Wrap(cnsErrors.ErrCodeStore, "failed to decode kind file", err)
	}
	return records, nil
}
