package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"htmlgrep/internal/config"
	"htmlgrep/internal/html"
	"htmlgrep/internal/search"
	"htmlgrep/pkg/htmlgrep"
)

var (
	maxResults int
	showStats  bool
)

func init() {
	rootCmd.Flags().IntVar(&maxResults, "max-results", -1, "print at most N matches across all inputs (negative: unlimited)")
	rootCmd.Flags().BoolVar(&showStats, "stats", false, "show search statistics on stderr")
}

var rootCmd = &cobra.Command{
	Use:   "htmlgrep <selector> [file ...]",
	Short: "Search HTML documents for subtrees matching a selector",
	Long: `htmlgrep searches HTML documents for elements matching a CSS-like
selector and prints each matching subtree in document order.

A selector combines an optional tag name (or *) with #id, .class and
[key=value] constraints. Whitespace between selectors matches descendants
at any depth, '>' restricts matching to direct children, and ',' combines
independent selectors. With no file arguments the document is read from
standard input.

Matches never overlap: once an element matches, the search does not
continue inside it.`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Default()
		cfg.Query = args[0]
		cfg.Paths = args[1:]
		cfg.MaxResults = maxResults
		if err := cfg.Validate(); err != nil {
			return err
		}
		return run(cfg)
	},
}

func run(cfg config.Config) error {
	searcher := htmlgrep.New(cfg)

	var result *htmlgrep.Result
	var err error
	if len(cfg.Paths) == 0 {
		result, err = runStdin(searcher)
	} else {
		result, err = searcher.SearchFiles(cfg.Paths)
	}
	if err != nil {
		return err
	}

	printMatches(os.Stdout, result.Matches, len(cfg.Paths) > 1)

	if showStats {
		printStats(result)
	}
	return nil
}

// runStdin searches a document piped on standard input
func runStdin(searcher *htmlgrep.Searcher) (*htmlgrep.Result, error) {
	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read from stdin: %w", err)
	}
	return searcher.Search("<stdin>", string(content))
}

// printMatches renders each match on its own line. Searches over more than
// one file prefix every match with its source path, grep style.
func printMatches(w io.Writer, matches []search.FileMatch, withPaths bool) {
	for _, m := range matches {
		if withPaths {
			fmt.Fprintf(w, "%s: %s\n", m.Path, html.RenderString(m.Node))
		} else {
			fmt.Fprintln(w, html.RenderString(m.Node))
		}
	}
}

// printStats writes counters to stderr so the HTML on stdout stays clean
func printStats(result *htmlgrep.Result) {
	fmt.Fprintf(os.Stderr, "\nSearch statistics:\n")
	fmt.Fprintf(os.Stderr, "  Files searched: %d\n", result.Stats.FilesSearched)
	fmt.Fprintf(os.Stderr, "  Matches found: %d\n", result.Stats.TotalMatches)
	fmt.Fprintf(os.Stderr, "  Matches printed: %d\n", len(result.Matches))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
