package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// labelFlags holds edition label flags.
type labelFlags struct {
	kinds        []string
	tableFormat  string
	listOfTables bool
	noLabels     bool
}

// assetFlags holds asset-related flags.
type assetFlags struct {
	assetPath   string
	templateSet string
	baseURL     string
	rawHTML     bool
	smartQuotes bool
}

// publishFlags holds all flags for the publish command.
type publishFlags struct {
	common  commonFlags
	output  string
	workers int
	labels  labelFlags
	assets  assetFlags
}

// packageFlags holds all flags for the package command.
type packageFlags struct {
	common  commonFlags
	output  string
	root    string
	version string
	staging string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug output")
}

// addLabelFlags adds label flags to a FlagSet.
func addLabelFlags(fs *flag.FlagSet, f *labelFlags) {
	fs.StringSliceVar(&f.kinds, "labels", nil, "element kinds to label, e.g. table")
	fs.StringVar(&f.tableFormat, "table-label", "", "table label format (Go template)")
	fs.BoolVar(&f.listOfTables, "list-of-tables", false, "write list-of-tables.html and tables.yaml")
	fs.BoolVar(&f.noLabels, "no-labels", false, "disable all labels")
}

// addAssetFlags adds asset-related flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.StringVar(&f.templateSet, "template", "", "template set name")
	fs.StringVar(&f.baseURL, "base-url", "", "base URL for relative image and link paths")
	fs.BoolVar(&f.rawHTML, "raw-html", false, "keep raw HTML from markdown sources")
	fs.BoolVar(&f.smartQuotes, "smart-quotes", false, "use typographic quotes and dashes")
}

// parsePublishFlags parses publish command flags and returns positional args.
func parsePublishFlags(args []string, usage io.Writer) (*publishFlags, []string, error) {
	fs := flag.NewFlagSet("publish", flag.ContinueOnError)
	fs.SetOutput(usage)
	f := &publishFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	addCommonFlags(fs, &f.common)
	addLabelFlags(fs, &f.labels)
	addAssetFlags(fs, &f.assets)

	fs.Usage = func() { printPublishUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}
	return f, fs.Args(), nil
}

// parsePackageFlags parses package command flags.
func parsePackageFlags(args []string, usage io.Writer) (*packageFlags, []string, error) {
	fs := flag.NewFlagSet("package", flag.ContinueOnError)
	fs.SetOutput(usage)
	f := &packageFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "archive path")
	fs.StringVar(&f.root, "root", "", "application root directory")
	fs.StringVar(&f.version, "pkg-version", "", "version in the archive name")
	fs.StringVar(&f.staging, "staging", "", "staging directory (recreated)")

	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printPackageUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}
	return f, fs.Args(), nil
}
