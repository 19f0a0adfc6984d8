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

// outputFlags holds the output mode flags.
type outputFlags struct {
	frontMatter   bool
	noFrontMatter bool
	html          bool // write an HTML preview next to each page
}

// assetFlags holds preview styling flags.
type assetFlags struct {
	style     string // name, path or inline CSS
	assetPath string
}

// routingFlags holds classification flags.
type routingFlags struct {
	route         bool
	skipRedirects bool
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common     commonFlags
	output     string
	workers    int
	templates  []string
	outputMode outputFlags
	assets     assetFlags
	routing    routingFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addOutputFlags adds output mode flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.BoolVar(&f.frontMatter, "front-matter", false, "prepend YAML front matter")
	fs.BoolVar(&f.noFrontMatter, "no-front-matter", false, "disable YAML front matter")
	fs.BoolVar(&f.html, "html", false, "write an HTML preview next to each page")
}

// addAssetFlags adds preview styling flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.style, "style", "", "preview CSS style name or file path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
}

// addRoutingFlags adds classification flags to a FlagSet.
func addRoutingFlags(fs *flag.FlagSet, f *routingFlags) {
	fs.BoolVar(&f.route, "route", false, "print the category bucket of each page")
	fs.BoolVar(&f.skipRedirects, "skip-redirects", false, "do not convert redirect pages")
}

// registerConvertFlags registers every convert flag on fs.
// Shared by parseConvertFlags and shell completion.
func registerConvertFlags(fs *flag.FlagSet, f *convertFlags) {
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringArrayVar(&f.templates, "template", nil, "infobox template name (repeatable)")

	addCommonFlags(fs, &f.common)
	addOutputFlags(fs, &f.outputMode)
	addAssetFlags(fs, &f.assets)
	addRoutingFlags(fs, &f.routing)
}

// parseConvertFlags parses convert command flags and returns positional args.
// Usage goes to usageOut on -h or a parse error.
func parseConvertFlags(args []string, usageOut io.Writer) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(usageOut)
	f := &convertFlags{}

	registerConvertFlags(fs, f)

	fs.Usage = func() { printConvertUsage(usageOut) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
