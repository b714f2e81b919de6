package review

import (
	"context"

	"github.com/hashicorp/go-multierror"

	"github.com/mydehq/gamedesc/internal/descriptor"
	"github.com/mydehq/gamedesc/internal/types"
)

// Summary is the run-level aggregate built from per-platform results.
type Summary struct {
	Results   []Result
	Cancelled bool
}

// Totals sums the counters of every platform result.
func (s Summary) Totals() Result {
	t := Result{BypassReasons: map[string]int{}}
	for _, r := range s.Results {
		t.Found += r.Found
		t.Bypassed += r.Bypassed
		t.Unhidden += r.Unhidden
		t.Skipped += r.Skipped
		for reason, n := range r.BypassReasons {
			t.BypassReasons[reason] += n
		}
	}
	return t
}

// Run reviews platforms in order. A platform that cannot be read, is
// malformed or fails to save is reported and the run moves on; a cancel
// stops the run after the current platform is persisted.
func (w *Workflow) Run(ctx context.Context, platforms []types.Platform) (Summary, error) {
	var (
		sum  Summary
		errs *multierror.Error
	)
	logger := w.logger()

	for _, p := range platforms {
		doc, err := descriptor.Load(p.Path)
		if err != nil {
			logger.Warn("Failed to load descriptor", "platform", p.Label, "path", p.Path, "error", err)
			sum.Results = append(sum.Results, Result{Platform: p, Err: err, BypassReasons: map[string]int{}})
			errs = multierror.Append(errs, err)
			continue
		}

		res := w.Review(ctx, p, doc)
		sum.Results = append(sum.Results, res)
		if res.Err != nil {
			errs = multierror.Append(errs, res.Err)
		}
		if res.Cancelled {
			sum.Cancelled = true
			logger.Info("Review cancelled", "platform", p.Label)
			break
		}
	}

	return sum, errs.ErrorOrNil()
}
