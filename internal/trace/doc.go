// Package trace is how tokattr reports what it is doing at runtime.
//
// There is no logger. Commands, batch stages and single files open spans on
// the context; errors and notable moments are emitted as point events. The
// CLI decides where events go (--trace) and how many (--trace-level).
//
//	ctx = trace.WithTracer(ctx, tr)
//	ctx, span := trace.Start(ctx, trace.ScopeStage, "parse")
//	defer span.End()
//	span.Set("items", "42")
//
// Levels, coarse to fine: off, error, phase (commands and stages), detail
// (files), debug (single values).
package trace
