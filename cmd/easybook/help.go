package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: easybook <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  publish    Publish markdown items as HTML with numbered tables")
	fmt.Fprintln(w, "  package    Build the easybook distribution archive")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'easybook help <command>' for details on a specific command.")
}

// printPublishUsage prints usage for the publish command.
func printPublishUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: easybook publish <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Publish markdown items as HTML. Each file is one item, numbered by its")
	fmt.Fprintln(w, "NN- filename prefix or by sorted order.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: Output)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Labels:")
	fmt.Fprintln(w, "      --labels <kinds>      Element kinds to label, e.g. table")
	fmt.Fprintln(w, "      --table-label <fmt>   Table label format, e.g. \"Table {{.Element.Number}}.{{.Item.Number}}\"")
	fmt.Fprintln(w, "      --no-labels           Disable all labels")
	fmt.Fprintln(w, "      --list-of-tables      Write list-of-tables.html and tables.yaml")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Assets:")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom asset directory")
	fmt.Fprintln(w, "      --template <name>     Template set name")
	fmt.Fprintln(w, "      --base-url <url>      Base URL for relative image and link paths")
	fmt.Fprintln(w, "      --raw-html            Keep raw HTML from markdown sources")
	fmt.Fprintln(w, "      --smart-quotes        Use typographic quotes and dashes")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug output")
}

// printPackageUsage prints usage for the package command.
func printPackageUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: easybook package [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build the distribution ZIP archive of the application.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>       Archive path (default: <root>/easybook-<version>.zip)")
	fmt.Fprintln(w, "      --root <dir>          Application root directory (default: .)")
	fmt.Fprintln(w, "      --pkg-version <v>     Version in the archive name")
	fmt.Fprintln(w, "      --staging <dir>       Staging directory, recreated on every build")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug output")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "publish":
		printPublishUsage(env.Stdout)
	case "package":
		printPackageUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: easybook version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: easybook help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
