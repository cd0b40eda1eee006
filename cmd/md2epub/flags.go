package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the md2epub command.
type cliFlags struct {
	output   string
	config   string
	title    string
	author   string
	language string
	cover    string
	pattern  string
	style    string
	quiet    bool
	verbose  bool
	version  bool
}

// parseFlags parses command-line flags and returns positional args.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("md2epub", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output EPUB path (default ./output/<dir>.epub)")
	fs.StringVarP(&f.config, "config", "c", "", "YAML config file path")
	fs.StringVar(&f.title, "title", "", "book title (default: directory name)")
	fs.StringVar(&f.author, "author", "", "book author")
	fs.StringVar(&f.language, "language", "", "book language tag (e.g., en, zh-CN)")
	fs.StringVar(&f.cover, "cover", "", "cover image path (default: <dir>/cover.png if present)")
	fs.StringVar(&f.pattern, "pattern", "", "markdown file glob (default: *.md; *.markdown always included)")
	fs.StringVar(&f.style, "style", "", "CSS file replacing the built-in stylesheet")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-file progress")
	fs.BoolVar(&f.version, "version", false, "show version and exit")

	fs.Usage = func() { printUsage(fs.Output()) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2epub [flags] [directory]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Package a directory of Markdown files as an EPUB.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  directory    Source directory (default: current directory)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>    Output EPUB path (default ./output/<dir>.epub)")
	fmt.Fprintln(w, "  -c, --config <path>    YAML config file")
	fmt.Fprintln(w, "      --title <s>        Book title (default: directory name)")
	fmt.Fprintln(w, "      --author <s>       Book author")
	fmt.Fprintln(w, "      --language <s>     Language tag (e.g., en, zh-CN)")
	fmt.Fprintln(w, "      --cover <path>     Cover image (default: <dir>/cover.png if present)")
	fmt.Fprintln(w, "      --pattern <glob>   Markdown file pattern (default: *.md)")
	fmt.Fprintln(w, "      --style <path>     Custom CSS file")
	fmt.Fprintln(w, "  -q, --quiet            Only show errors")
	fmt.Fprintln(w, "  -v, --verbose          Show per-file progress")
	fmt.Fprintln(w, "      --version          Show version and exit")
}
