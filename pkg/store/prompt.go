package store

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	cnsErrors "github.com/yugabyte/ybstats/pkg/errors"
	"github.com/yugabyte/ybstats/pkg/model"
)

// PromptBeginEnd resolves the begin/end snapshot numbers for a
// snapshot-diff (§4.4): any unsupplied number is prompted for on out and
// read as an integer line from in. Both numbers must exist in the index.
// Returns the begin record too, since callers need its timestamp to
// impute the first-snapshot time for second-only rows (§4.6).
func (s *Store) PromptBeginEnd(beginOpt, endOpt *int, in io.Reader, out io.Writer) (begin, end int, beginRecord model.Snapshot, err error) {
	snapshots, err := s.List()
	if err != nil {
		return 0, 0, model.Snapshot{}, err
	}

	reader := bufio.NewReader(in)

	begin, err = resolveNumber(beginOpt, "begin", reader, out)
	if err != nil {
		return 0, 0, model.Snapshot{}, err
	}
	end, err = resolveNumber(endOpt, "end", reader, out)
	if err != nil {
		return 0, 0, model.Snapshot{}, err
	}

	beginRecord, ok := findSnapshot(snapshots, begin)
	if !ok {
		return 0, 0, model.Snapshot{}, cnsErrors.NewWithContext(cnsErrors.ErrCodeInput,
			"begin snapshot number not found in index", map[string]any{"number": begin})
	}
	if _, ok := findSnapshot(snapshots, end); !ok {
		return 0, 0, model.Snapshot{}, cnsErrors.NewWithContext(cnsErrors.ErrCodeInput,
			"end snapshot number not found in index", map[string]any{"number": end})
	}

	return begin, end, beginRecord, nil
}

func resolveNumber(supplied *int, label string, reader *bufio.Reader, out io.Writer) (int, error) {
	if supplied != nil {
		return *supplied, nil
	}

	fmt.Fprintf(out, "which snapshot number do you want to use as %s: ", label)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return 0, cnsErrors.Wrap(cnsErrors.ErrCodeInput, "failed to read "+label+" snapshot number", err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, cnsErrors.WrapWithContext(cnsErrors.ErrCodeInput, "non-integer "+label+" snapshot number", err,
			map[string]any{"input": line})
	}
	return n, nil
}

func findSnapshot(snapshots []model.Snapshot, number int) (model.Snapshot, bool) {
	for _, s := range snapshots {
		if s.Number == number {
			return s, true
		}
	}
	return model.Snapshot{}, false
}
