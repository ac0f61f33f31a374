package main

import (
	"fmt"

	"github.com/alnah/go-mdedit"
)

// runHas prints whether the selection of a document carries a format.
func runHas(args []string, env *Environment) error {
	flags, positional, err := parseHasFlags(args)
	if isHelp(err) {
		printHasUsage(env.Stdout)
		return nil
	}
	if err != nil {
		return err
	}
	if len(positional) == 0 || len(positional) > 2 {
		return fmt.Errorf("%w: has takes a format name and at most one file", ErrUsage)
	}

	cfg, err := loadConfig(flags.common.config, loadEnvConfig())
	if err != nil {
		return err
	}
	reg, err := buildRegistry(cfg)
	if err != nil {
		return err
	}
	name := positional[0]
	if err := lookupFormat(reg, name); err != nil {
		return err
	}

	var path string
	if len(positional) == 2 {
		path = positional[1]
	}
	text, err := readDocument(path, env)
	if err != nil {
		return err
	}

	buf := mdedit.NewBuffer(text)
	if err := selectRange(buf, flags.rng); err != nil {
		return err
	}
	ed := mdedit.NewEditor(buf, mdedit.WithRegistry(reg), mdedit.WithMatchTimeout(matchTimeout))

	ok, err := ed.Has(mdedit.Name(name))
	if err != nil {
		return fmt.Errorf("%s: %w", displayName(path), err)
	}
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "%s: %s in %s: %t\n", displayName(path), name, buf.Range(), ok)
	}
	fmt.Fprintln(env.Stdout, ok)
	return nil
}
