package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/alnah/go-mdedit"
	"github.com/alnah/go-mdedit/internal/hints"
)

// matchTimeout bounds one marker pattern match. Configured patterns are
// user input.
const matchTimeout = time.Second

// Edit outcomes reported per document.
const (
	actionApplied   = "applied"
	actionRemoved   = "removed"
	actionUnchanged = "unchanged"
)

// editJob is one format operation shared by every document of a run.
type editJob struct {
	cmd    string
	format string
	rng    string
	args   []string
	reg    *mdedit.Registry
}

// editResult is the outcome of an edit on one document.
type editResult struct {
	Text   string
	Before mdedit.Range // selection before the edit
	After  mdedit.Range // selection after the edit
	Action string
}

// Changed reports whether the document was modified.
func (r editResult) Changed() bool {
	return r.Action != actionUnchanged
}

// editText runs job on text and returns the edited document.
func editText(job *editJob, text string) (editResult, error) {
	buf := mdedit.NewBuffer(text)
	if err := selectRange(buf, job.rng); err != nil {
		return editResult{}, err
	}
	before := buf.Range()

	ed := mdedit.NewEditor(buf, mdedit.WithRegistry(job.reg), mdedit.WithMatchTimeout(matchTimeout))
	name := mdedit.Name(job.format)

	var (
		action string
		err    error
	)
	switch job.cmd {
	case cmdApply:
		action = actionApplied
		err = ed.Apply(name, job.args...)
	case cmdRemove:
		action = actionRemoved
		err = ed.Remove(name)
	case cmdToggle:
		var had bool
		if had, err = ed.Has(name); err != nil {
			break
		}
		action = actionApplied
		if had {
			action = actionRemoved
		}
		err = ed.Toggle(name, job.args...)
	default:
		return editResult{}, fmt.Errorf("%w: %q is not an edit command", ErrUsage, job.cmd)
	}
	if err != nil {
		return editResult{}, err
	}

	if !buf.CanUndo() {
		action = actionUnchanged
	}
	return editResult{
		Text:   buf.Text(),
		Before: before,
		After:  buf.Range(),
		Action: action,
	}, nil
}

// runEdit implements apply, remove and toggle.
func runEdit(ctx context.Context, cmd string, args []string, env *Environment) error {
	flags, positional, err := parseEditFlags(cmd, args)
	if isHelp(err) {
		printEditUsage(env.Stdout, cmd)
		return nil
	}
	if err != nil {
		return err
	}
	if len(positional) == 0 {
		return fmt.Errorf("%w: %s requires a format name", ErrUsage, cmd)
	}
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	envCfg := loadEnvConfig()
	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}
	reg, err := buildRegistry(cfg)
	if err != nil {
		return err
	}

	name, files := positional[0], positional[1:]
	if err := lookupFormat(reg, name); err != nil {
		return err
	}

	job := &editJob{
		cmd:    cmd,
		format: name,
		rng:    flags.rng,
		reg:    reg,
	}
	if cmd != cmdRemove {
		job.args = resolveArgs(flags.args, cfg)
	}
	if cmd == cmdApply && len(job.args) == 0 && !flags.common.quiet &&
		(name == string(mdedit.Link) || name == string(mdedit.Image)) {
		fmt.Fprintf(env.Stderr, "warning: %s without a target renders an empty URL%s\n", name, hints.ForMissingURL())
	}

	if flags.write {
		if len(files) == 0 {
			return fmt.Errorf("%w: --write needs at least one file", ErrUsage)
		}
		return runEditBatch(ctx, job, files, flags, envCfg, env)
	}
	if len(files) > 1 {
		return fmt.Errorf("%w: editing %d files needs --write", ErrUsage, len(files))
	}

	var path string
	if len(files) == 1 {
		path = files[0]
	}
	return editToStdout(job, path, flags, env)
}

// editToStdout edits one document and prints the result.
func editToStdout(job *editJob, path string, flags *editFlags, env *Environment) error {
	text, err := readDocument(path, env)
	if err != nil {
		return err
	}

	start := env.Now()
	res, err := editText(job, text)
	if err != nil {
		return fmt.Errorf("%s: %w", displayName(path), err)
	}
	if flags.common.verbose {
		logEdit(env.Stderr, displayName(path), job.format, res, env.Now().Sub(start))
	}

	out := res.Text
	if flags.json {
		if out, err = resultJSON(path, res); err != nil {
			return err
		}
		out += "\n"
	}
	if _, err := io.WriteString(env.Stdout, out); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// logEdit reports one edit on the verbose stream.
func logEdit(w io.Writer, name, format string, res editResult, d time.Duration) {
	fmt.Fprintf(w, "%s: %s %s %s -> %s (%v)\n", name, format, res.Action, res.Before, res.After, d.Round(time.Microsecond))
}
