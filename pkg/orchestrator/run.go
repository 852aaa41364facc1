package orchestrator

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	cnsErrors "github.com/yugabyte/ybstats/pkg/errors"
	"github.com/yugabyte/ybstats/pkg/header"
	"github.com/yugabyte/ybstats/pkg/scrape"
	"github.com/yugabyte/ybstats/pkg/serializer"
	"github.com/yugabyte/ybstats/pkg/store"
	"github.com/yugabyte/ybstats/pkg/telemetry"
)

const (
	operationSnapshot     = "perform_snapshot"
	operationSnapshotDiff = "snapshot_diff"
	operationAdhocDiff    = "adhoc_diff"

	statusOK    = "ok"
	statusError = "error"

	apiVersion = "ybstats/v1"
)

// envelope stamps a diff result with a header.Kind so a saved JSON/YAML
// diff can be identified by shape alone, the way store.List's output is
// stamped by pkg/cli. Diff results always carry both metric and entity
// sections together, so they're stamped header.KindMetricDiff rather than
// split into separate metric/entity envelopes.
type envelope struct {
	*header.Header `json:",inline" yaml:",inline"`
	Data           any `json:"data" yaml:"data"`
}

func diffEnvelope(result Result) envelope {
	h := header.New()
	h.Init(header.KindMetricDiff, apiVersion, "")
	return envelope{Header: h, Data: result}
}

// runLogger stamps a run ID (§4.9) and returns a logger to carry through
// the operation plus a finish func that records duration/outcome to C14.
func runLogger(ctx context.Context, operation string) (context.Context, *slog.Logger, func(*error)) {
	runID := uuid.New().String()
	logger := slog.With("run_id", runID, "operation", operation)
	logger.InfoContext(ctx, "run started")
	start := time.Now()

	finish := func(errp *error) {
		status := statusOK
		if errp != nil && *errp != nil {
			status = statusError
		}
		telemetry.ObserveOrchestratorRun(operation, status, time.Since(start))
		logger.InfoContext(ctx, "run finished", "status", status, "elapsed", time.Since(start))
	}
	return ctx, logger, finish
}

// PerformSnapshot scrapes every kind from the cluster, persists the
// capture under a freshly allocated snapshot number, and writes that
// number to out unless silent (§4.9.1).
func PerformSnapshot(ctx context.Context, s *store.Store, scraper *scrape.Scraper, targets []scrape.Target, comment string, silent bool, out io.Writer) (number int, err error) {
	ctx, logger, finish := runLogger(ctx, operationSnapshot)
	defer finish(&err)

	number, err = s.AllocateNew(comment)
	if err != nil {
		return 0, cnsErrors.Wrap(cnsErrors.ErrCodeStore, "failed to allocate snapshot number", err)
	}
	logger = logger.With("snapshot_number", number)

	capture, err := ScrapeAll(ctx, scraper, targets)
	if err != nil {
		return 0, err
	}

	if err := WriteCapture(s, number, capture); err != nil {
		return 0, err
	}

	if !silent {
		fmt.Fprintln(out, number)
	}
	logger.InfoContext(ctx, "snapshot captured")
	return number, nil
}

// SnapshotDiff resolves begin/end snapshot numbers (prompting on in/out if
// unsupplied), reads both from the store, diffs them, and serializes the
// result with w (§4.9.2). A kind missing from either snapshot is silently
// skipped by ReadCapture/Diff, not an error.
func SnapshotDiff(ctx context.Context, s *store.Store, beginOpt, endOpt *int, in io.Reader, promptOut io.Writer, opts Options, w serializer.Serializer) (err error) {
	ctx, logger, finish := runLogger(ctx, operationSnapshotDiff)
	defer finish(&err)

	begin, end, beginSnap, err := s.PromptBeginEnd(beginOpt, endOpt, in, promptOut)
	if err != nil {
		return err
	}
	logger = logger.With("begin", begin, "end", end)

	first, err := ReadCapture(s, begin)
	if err != nil {
		return err
	}
	second, err := ReadCapture(s, end)
	if err != nil {
		return err
	}

	result, err := Diff(first, second, beginSnap.Timestamp, opts)
	if err != nil {
		return err
	}

	if err := w.Serialize(ctx, diffEnvelope(result)); err != nil {
		return fmt.Errorf("failed to serialize diff result: %w", err)
	}
	logger.InfoContext(ctx, "snapshot diff complete")
	return nil
}

// AdhocDiff scrapes the cluster once, waits for the operator to press
// return on in, scrapes again, diffs the two in-memory captures, and
// serializes the result with w. It never touches the snapshot store
// (§4.9.3).
func AdhocDiff(ctx context.Context, scraper *scrape.Scraper, targets []scrape.Target, in io.Reader, promptOut io.Writer, opts Options, w serializer.Serializer) (err error) {
	ctx, logger, finish := runLogger(ctx, operationAdhocDiff)
	defer finish(&err)

	first, err := ScrapeAll(ctx, scraper, targets)
	if err != nil {
		return err
	}
	firstTime := time.Now()

	fmt.Fprint(promptOut, "press return to capture the second snapshot: ")
	if _, err := bufio.NewReader(in).ReadString('\n'); err != nil && err != io.EOF {
		return cnsErrors.Wrap(cnsErrors.ErrCodeInput, "failed to read confirmation line", err)
	}

	second, err := ScrapeAll(ctx, scraper, targets)
	if err != nil {
		return err
	}

	result, err := Diff(first, second, firstTime, opts)
	if err != nil {
		return err
	}

	if err := w.Serialize(ctx, diffEnvelope(result)); err != nil {
		return fmt.Errorf("failed to serialize diff result: %w", err)
	}
	logger.InfoContext(ctx, "adhoc diff complete")
	return nil
}
