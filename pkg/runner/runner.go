package runner

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/codelint/internal/logging"
	"github.com/yaklabco/codelint/pkg/lint"
)

// Runner analyzes many files with one shared lint.Pipeline.
type Runner struct {
	// Pipeline parses and analyzes each file.
	Pipeline *lint.Pipeline

	// Logger receives per-file failures and progress. When nil the logger
	// attached to the run context is used.
	Logger *log.Logger
}

// New creates a new Runner with the given pipeline.
func New(pipeline *lint.Pipeline) *Runner {
	return &Runner{Pipeline: pipeline}
}

// Run discovers files under opts.Paths and analyzes them concurrently.
//
// Each file is analyzed in its own task on a pool of at most opts.Jobs
// goroutines. A file that cannot be read or parsed is logged, recorded on
// its outcome and left out of the aggregate; the other files are unaffected.
// Outcomes are folded into the result sequentially in path order, so the
// output does not depend on scheduling.
//
// Cancelling ctx stops new files from being dispatched; files already
// running finish.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	logger := r.logger(ctx)
	start := time.Now()

	targets, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(targets))}
	result.Stats.FilesDiscovered = len(targets)

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = max(1, min(jobs, len(targets)))

	logger.Debug("starting analysis",
		logging.FieldFilesDiscovered, len(targets),
		logging.FieldJobs, jobs,
	)

	// Each task writes only its own slot.
	outcomes := make([]*FileOutcome, len(targets))

	var group errgroup.Group
	group.SetLimit(jobs)

	for i, target := range targets {
		if ctx.Err() != nil {
			break
		}
		group.Go(func() error {
			outcome := r.analyze(ctx, target)
			outcomes[i] = &outcome
			return nil
		})
	}
	_ = group.Wait() // tasks never return errors

	for _, outcome := range outcomes {
		if outcome == nil {
			continue
		}
		if outcome.Error != nil {
			logger.Warn("skipping file",
				logging.FieldPath, outcome.Display,
				logging.FieldError, outcome.Error,
			)
		}
		result.accumulate(*outcome)
	}

	logger.Debug("analysis finished",
		logging.FieldFilesAnalyzed, result.Stats.FilesAnalyzed,
		logging.FieldFilesFailed, result.Stats.FilesFailed,
		logging.FieldIssuesTotal, result.Stats.IssuesTotal,
		logging.FieldElapsed, time.Since(start).Round(time.Millisecond),
	)

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("run cancelled: %w", err)
	}
	return result, nil
}

// analyze runs the pipeline over one target.
func (r *Runner) analyze(ctx context.Context, target Target) FileOutcome {
	outcome := FileOutcome{Target: target}
	ctx = logging.WithFields(logging.WithLogger(ctx, r.logger(ctx)), logging.FieldPath, target.Display)

	fa, err := r.Pipeline.AnalyzePath(ctx, target.Path, target.Display)
	if err != nil {
		outcome.Error = err
		return outcome
	}
	outcome.Analysis = &fa
	return outcome
}

func (r *Runner) logger(ctx context.Context) *log.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return logging.FromContext(ctx)
}
