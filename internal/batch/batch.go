// Package batch parses and decodes many packed attribute values in parallel.
package batch

import (
	"context"
	"fmt"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"

	"tokattr/internal/attrs"
	"tokattr/internal/trace"
)

// chunkSize is the number of values one worker handles before picking more.
const chunkSize = 1024

// ItemError carries the index of the input that failed.
type ItemError struct {
	Index int
	Input string
	Err   error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("item %d (%q): %v", e.Index, e.Input, e.Err)
}

func (e *ItemError) Unwrap() error { return e.Err }

// ParseAll parses every input with attrs.Parse. Results keep input order. The
// first failure cancels the remaining work and is returned as *ItemError.
func ParseAll(ctx context.Context, inputs []string, jobs int) ([]attrs.Encoded, error) {
	out := make([]attrs.Encoded, len(inputs))
	err := run(ctx, "parse", len(inputs), jobs, func(i int) error {
		v, err := attrs.Parse(inputs[i])
		if err != nil {
			return &ItemError{Index: i, Input: inputs[i], Err: err}
		}
		out[i] = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DecodeAll unpacks every value. It only fails when ctx is cancelled.
func DecodeAll(ctx context.Context, values []attrs.Encoded, jobs int) ([]attrs.Fields, error) {
	out := make([]attrs.Fields, len(values))
	err := run(ctx, "decode", len(values), jobs, func(i int) error {
		out[i] = attrs.Decode(values[i])
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// run calls fn for every index in [0, n) over at most jobs goroutines.
// Each index is written by exactly one goroutine, so results need no lock.
func run(ctx context.Context, name string, n, jobs int, fn func(i int) error) error {
	ctx, span := trace.Start(ctx, trace.ScopeStage, name)
	defer span.End()
	span.Set("items", strconv.Itoa(n))

	if n == 0 {
		return ctx.Err()
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	chunks := (n + chunkSize - 1) / chunkSize

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, chunks))

	for c := 0; c < chunks; c++ {
		lo := c * chunkSize
		hi := min(lo+chunkSize, n)
		g.Go(func() error {
			// Проверка отмены
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			for i := lo; i < hi; i++ {
				if err := fn(i); err != nil {
					trace.Error(ctx, trace.ScopeValue, name, err)
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}
