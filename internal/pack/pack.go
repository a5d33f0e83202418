// Package pack reads token-line text files and stores them as binary tables.
package pack

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"tokattr/internal/store"
	"tokattr/internal/token"
	"tokattr/internal/trace"
)

// Run packs every file of req. A failing file does not stop the others; the
// returned error joins every per-file error. Cancellation stops the run, and
// files that were not reached carry the context error.
func Run(ctx context.Context, req *Request) (Result, error) {
	if req == nil || req.Store == nil {
		return Result{}, fmt.Errorf("missing pack request or store")
	}
	ctx, span := trace.Start(ctx, trace.ScopeStage, "pack")
	span.Set("files", strconv.Itoa(len(req.Files)))
	defer span.End()

	emit := func(ev Event) {
		if req.Progress != nil {
			req.Progress.OnEvent(ev)
		}
	}
	res := Result{Entries: make([]Entry, len(req.Files))}
	for i, f := range req.Files {
		res.Entries[i].File = f
		emit(Event{File: f, Status: StatusQueued})
	}

	jobs := req.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(req.Files))))
	for i, file := range req.Files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				res.Entries[i].Err = err
				emit(Event{File: file, Status: StatusError, Err: err})
				return err
			}
			start := time.Now()
			entry := packFile(gctx, req.Store, file, emit)
			res.Entries[i] = entry
			if entry.Err != nil {
				trace.Error(gctx, trace.ScopeItem, "file:"+file, entry.Err)
				emit(Event{File: file, Status: StatusError, Err: entry.Err, Elapsed: time.Since(start)})
				return nil
			}
			emit(Event{File: file, Status: StatusDone, Elapsed: time.Since(start)})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return res, err
	}

	var errs []error
	for _, e := range res.Failed() {
		errs = append(errs, fmt.Errorf("%s: %w", e.File, e.Err))
	}
	return res, errors.Join(errs...)
}

func packFile(ctx context.Context, st *store.Store, file string, emit func(Event)) Entry {
	ctx, span := trace.Start(ctx, trace.ScopeItem, "file:"+filepath.Base(file))
	defer span.End()

	entry := Entry{File: file}

	emit(Event{File: file, Stage: StageRead, Status: StatusWorking})
	content, err := os.ReadFile(file)
	if err != nil {
		entry.Err = err
		return entry
	}
	entry.Digest = store.DigestOf(content)

	emit(Event{File: file, Stage: StageParse, Status: StatusWorking})
	lines, err := token.ParseLines(bytes.NewReader(content))
	if err != nil {
		entry.Err = err
		return entry
	}
	entry.Lines = len(lines)
	for _, l := range lines {
		entry.Tokens += len(l)
	}

	emit(Event{File: file, Stage: StageStore, Status: StatusWorking})
	var existing store.Payload
	found, err := st.Get(entry.Digest, &existing)
	if err == nil && found {
		entry.Cached = true
		span.Set("cached", "true")
		trace.Point(ctx, trace.ScopeItem, "store hit", entry.Digest.String())
		return entry
	}
	// устаревший формат просто перезаписываем
	if err != nil && !errors.Is(err, store.ErrLayoutMismatch) && !errors.Is(err, store.ErrSchemaMismatch) {
		entry.Err = err
		return entry
	}
	if err := st.Put(entry.Digest, store.NewPayload(filepath.Base(file), lines)); err != nil {
		entry.Err = err
	}
	span.Set("tokens", strconv.Itoa(entry.Tokens))
	return entry
}
