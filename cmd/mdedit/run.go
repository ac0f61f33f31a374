package main

import (
	"context"
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-mdedit"
	"github.com/alnah/go-mdedit/internal/config"
	"github.com/alnah/go-mdedit/internal/hints"
)

// Command names.
const (
	cmdApply   = "apply"
	cmdRemove  = "remove"
	cmdToggle  = "toggle"
	cmdHas     = "has"
	cmdFormats = "formats"
	cmdPreview = "preview"
	cmdVersion = "version"
	cmdHelp    = "help"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage       = errors.New("invalid usage")
	ErrNoInput     = errors.New("no input specified")
	ErrReadInput   = errors.New("failed to read input")
	ErrWriteOutput = errors.New("failed to write output")
	ErrBatchFailed = errors.New("some files failed")
)

// run dispatches args[1] and returns the process exit code.
// Errors are printed to env.Stderr.
func run(ctx context.Context, args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	warnUnknownEnvVars(env.Stderr)

	cmd, rest := args[1], args[2:]
	var err error
	switch cmd {
	case cmdApply, cmdRemove, cmdToggle:
		err = runEdit(ctx, cmd, rest, env)
	case cmdHas:
		err = runHas(rest, env)
	case cmdFormats:
		err = runFormats(rest, env)
	case cmdPreview:
		err = runPreview(ctx, rest, env)
	case cmdVersion:
		runVersion(env)
	case cmdHelp, "-h", "--help":
		err = runHelp(rest, env)
	default:
		err = fmt.Errorf("%w: unknown command %q\n  hint: run 'mdedit help' for the list of commands", ErrUsage, cmd)
	}

	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// isHelp reports whether a flag parse error asks for usage.
func isHelp(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// loadConfig loads the config named by flagName, or by MDEDIT_CONFIG when
// the flag is empty, and applies environment overrides.
// Without either, built-in formats only are used.
func loadConfig(flagName string, envCfg *envConfig) (*config.Config, error) {
	name := flagName
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			var notFound *config.NotFoundError
			switch {
			case errors.As(err, &notFound):
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(notFound.Searched))
			case errors.Is(err, config.ErrTemplateNeedsPattern):
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForTemplatePattern())
			default:
				return nil, fmt.Errorf("loading config: %w", err)
			}
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	return cfg, nil
}

// lookupFormat checks that name is registered, listing the alternatives
// when it is not.
func lookupFormat(reg *mdedit.Registry, name string) error {
	if _, ok := reg.Lookup(name); ok {
		return nil
	}
	return fmt.Errorf("%w %q%s", mdedit.ErrInvalidFormat, name, hints.ForUnknownFormat(reg.Names()))
}
