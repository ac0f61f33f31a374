package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdedit <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  apply      Wrap the selection in a format")
	fmt.Fprintln(w, "  remove     Strip a format from the selection")
	fmt.Fprintln(w, "  toggle     Remove a format if present, apply it otherwise")
	fmt.Fprintln(w, "  has        Report whether the selection carries a format")
	fmt.Fprintln(w, "  formats    List the available formats")
	fmt.Fprintln(w, "  preview    Render a document to an HTML page")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdedit help <command>' for details on a specific command.")
}

// printEditUsage prints usage for apply, remove and toggle.
func printEditUsage(w io.Writer, cmd string) {
	if cmd == cmdRemove {
		fmt.Fprintf(w, "Usage: mdedit %s <format> [files...] [flags]\n", cmd)
	} else {
		fmt.Fprintf(w, "Usage: mdedit %s <format> [files...] [-a arg]... [flags]\n", cmd)
	}
	fmt.Fprintln(w)
	switch cmd {
	case cmdApply:
		fmt.Fprintln(w, "Wrap the selection in a format.")
	case cmdRemove:
		fmt.Fprintln(w, "Strip a format from the selection, inside or just outside it.")
	default:
		fmt.Fprintln(w, "Remove a format if the selection carries it, apply it otherwise.")
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  format   Built-in or configured format name (see mdedit formats)")
	fmt.Fprintln(w, "  files    Markdown files (default: stdin)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -r, --range <s:e>         Selection in rune offsets: 6:11, 6 (caret), :11, 6:")
	if cmd != cmdRemove {
		fmt.Fprintln(w, "  -a, --arg <s>             Extra marker argument, e.g. the link URL (repeatable)")
	}
	fmt.Fprintln(w, "  -w, --write               Write results back to the files")
	fmt.Fprintln(w, "      --json                Print text, selection and action as JSON")
	fmt.Fprintln(w, "      --workers <n>         Parallel workers with --write (0 = auto)")
	printCommonFlags(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MDEDIT_URL                Default link and image target")
	fmt.Fprintln(w, "  MDEDIT_WORKERS            Default worker count")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintf(w, "  echo 'Hello World' | mdedit %s bold -r 6:11\n", cmd)
	if cmd != cmdRemove {
		fmt.Fprintf(w, "  mdedit %s link notes.md -r 0:5 -a https://example.com -w\n", cmd)
	}
}

// printHasUsage prints usage for the has command.
func printHasUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdedit has <format> [file] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print true if the selection carries the format, false otherwise.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -r, --range <s:e>         Selection in rune offsets (default: whole document)")
	printCommonFlags(w)
}

// printFormatsUsage prints usage for the formats command.
func printFormatsUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdedit formats [-c config]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List built-in and configured formats with their markers.")
}

// printPreviewUsage prints usage for the preview command.
func printPreviewUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdedit preview [file] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render a Markdown document to a standalone HTML page.")
	fmt.Fprintln(w, "Relative image and link paths point at the document's directory.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default: stdout)")
	fmt.Fprintln(w, "      --css <name>          Page style: default, dark or a custom name")
	fmt.Fprintln(w, "      --no-css              Render without a page style")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory with styles/<name>.css, checked first")
	fmt.Fprintln(w, "      --style <name>        Code highlighting style (default: github)")
	fmt.Fprintln(w, "      --hard-wraps          Render single newlines as line breaks")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show timing")
}

func printCommonFlags(w io.Writer) {
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path (or MDEDIT_CONFIG)")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show selections and timing")
}

// runHelp prints help for a command, or the main usage.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case cmdApply, cmdRemove, cmdToggle:
		printEditUsage(env.Stdout, args[0])
	case cmdHas:
		printHasUsage(env.Stdout)
	case cmdFormats:
		printFormatsUsage(env.Stdout)
	case cmdPreview:
		printPreviewUsage(env.Stdout)
	case cmdVersion:
		fmt.Fprintln(env.Stdout, "Usage: mdedit version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case cmdHelp:
		fmt.Fprintln(env.Stdout, "Usage: mdedit help [command]")
	default:
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}
	return nil
}
