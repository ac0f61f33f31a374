package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/alnah/go-mdedit/internal/fileutil"
)

// maxWorkers caps the number of files edited in parallel.
const maxWorkers = 8

// editOutcome holds the outcome of editing a single file in place.
type editOutcome struct {
	Path     string
	Result   editResult
	Err      error
	Duration time.Duration
}

// resolveWorkers determines the worker count.
// Priority: explicit flag > MDEDIT_WORKERS > GOMAXPROCS-based calculation.
func resolveWorkers(flagWorkers, envWorkers int) int {
	if flagWorkers > 0 {
		return flagWorkers
	}
	if envWorkers > 0 {
		return min(envWorkers, maxWorkers)
	}

	// GOMAXPROCS is adjusted by automaxprocs for containers.
	n := runtime.GOMAXPROCS(0) / 2
	if n < 1 {
		return 1
	}
	if n > maxWorkers {
		return maxWorkers
	}
	return n
}

// runEditBatch edits files in place concurrently and reports each outcome.
func runEditBatch(ctx context.Context, job *editJob, files []string, flags *editFlags, envCfg *envConfig, env *Environment) error {
	workers := resolveWorkers(flags.workers, envCfg.Workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Workers: %d\n", workers)
	}

	outcomes := editBatch(ctx, workers, job, files, env.Now)

	var failed int
	if flags.json {
		doc, err := outcomesJSON(outcomes)
		if err != nil {
			return err
		}
		fmt.Fprintln(env.Stdout, doc)
		failed = countFailed(outcomes)
	} else {
		failed = printOutcomes(outcomes, flags.common.quiet, flags.common.verbose, job.format, env)
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrBatchFailed, failed, len(outcomes))
	}
	return nil
}

// editBatch processes files concurrently with a fixed number of workers.
// Files still queued when ctx is canceled fail with ctx.Err().
func editBatch(ctx context.Context, workers int, job *editJob, files []string, now func() time.Time) []editOutcome {
	if len(files) == 0 {
		return nil
	}
	if workers > len(files) {
		workers = len(files)
	}

	outcomes := make([]editOutcome, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					outcomes[idx] = editOutcome{Path: files[idx], Err: ctx.Err()}
					continue
				}
				outcomes[idx] = editFile(job, files[idx], now)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return outcomes
}

// editFile edits one file and writes it back when it changed.
func editFile(job *editJob, path string, now func() time.Time) (outcome editOutcome) {
	start := now()
	outcome.Path = path
	defer func() { outcome.Duration = now().Sub(start) }()

	content, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		outcome.Err = fmt.Errorf("%w: %w", ErrReadInput, err)
		return outcome
	}

	res, err := editText(job, string(content))
	if err != nil {
		outcome.Err = err
		return outcome
	}
	outcome.Result = res

	if res.Changed() {
		if err := fileutil.WriteFileAtomic(path, []byte(res.Text)); err != nil {
			outcome.Err = fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}
	}
	return outcome
}

func countFailed(outcomes []editOutcome) int {
	var n int
	for _, o := range outcomes {
		if o.Err != nil {
			n++
		}
	}
	return n
}

// printOutcomes reports each file and, for several files, a summary.
// It returns the number of failures.
func printOutcomes(outcomes []editOutcome, quiet, verbose bool, format string, env *Environment) int {
	failed := countFailed(outcomes)

	for _, o := range outcomes {
		if o.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", o.Path, o.Err)
			continue
		}
		if quiet {
			continue
		}
		if verbose {
			logEdit(env.Stdout, o.Path, format, o.Result, o.Duration)
			continue
		}
		printOutcome(env.Stdout, o)
	}

	if !quiet && len(outcomes) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", len(outcomes)-failed, failed)
	}
	return failed
}

func printOutcome(w io.Writer, o editOutcome) {
	if o.Result.Changed() {
		fmt.Fprintf(w, "Updated %s\n", o.Path)
		return
	}
	fmt.Fprintf(w, "Unchanged %s\n", o.Path)
}
