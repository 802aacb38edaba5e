// Package htmlgrep ties the HTML parser, the selector language and the
// search engine together behind one entry point.
package htmlgrep

import (
	"fmt"
	"os"

	"htmlgrep/internal/config"
	"htmlgrep/internal/html"
	"htmlgrep/internal/query"
	"htmlgrep/internal/search"
)

// Searcher runs selector searches over sets of HTML inputs
type Searcher struct {
	config config.Config
}

// New creates a new Searcher with the given configuration
func New(cfg config.Config) *Searcher {
	return &Searcher{config: cfg}
}

// Result contains the outcome of one search run
type Result struct {
	Matches []search.FileMatch // matched subtrees in input order, after the cap
	Stats   Stats              // counts gathered while searching
}

// Stats contains counters from the search run
type Stats struct {
	FilesSearched int // documents the query ran over
	TotalMatches  int // matches found before the result cap was applied
}

// SearchFiles reads, parses and searches the named files in order.
//
// Failures are fail-fast in input order: the first file that cannot be read
// or parsed aborts the run before the query touches any document, and no
// partial results are returned. An invalid selector aborts before any file
// is opened.
func (s *Searcher) SearchFiles(paths []string) (*Result, error) {
	q, err := query.Parse(s.config.Query)
	if err != nil {
		return nil, fmt.Errorf("failed to parse query: %w", err)
	}

	files := make([]search.File, 0, len(paths))
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", path, err)
		}
		doc, err := html.ParseString(string(content))
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		files = append(files, search.File{Path: path, Doc: doc})
	}

	return s.run(q, files), nil
}

// Search parses and searches a single in-memory document, tagging matches
// with name. The command line uses it for standard input.
func (s *Searcher) Search(name, content string) (*Result, error) {
	q, err := query.Parse(s.config.Query)
	if err != nil {
		return nil, fmt.Errorf("failed to parse query: %w", err)
	}

	doc, err := html.ParseString(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}

	return s.run(q, []search.File{{Path: name, Doc: doc}}), nil
}

// run evaluates the query over the parsed inputs and applies the result cap
func (s *Searcher) run(q query.Query, files []search.File) *Result {
	matches := search.SearchFiles(q, files)
	return &Result{
		Matches: search.Limit(matches, s.config.MaxResults),
		Stats: Stats{
			FilesSearched: len(files),
			TotalMatches:  len(matches),
		},
	}
}

// SearchHTML is a convenience function that searches one HTML string and
// returns the matching subtrees rendered back to HTML
func SearchHTML(selector, content string) ([]string, error) {
	cfg := config.Default()
	cfg.Query = selector

	result, err := New(cfg).Search("input", content)
	if err != nil {
		return nil, err
	}

	fragments := make([]string, len(result.Matches))
	for i, m := range result.Matches {
		fragments[i] = html.RenderString(m.Node)
	}
	return fragments, nil
}
