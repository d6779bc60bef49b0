// Package grader reports which CSS selectors are present in an HTML document.
package grader

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"

	"selector-grader/internal/document"
)

var ErrMalformedSelector = errors.New("malformed selector")

// Result maps each selector to whether at least one element matched it.
type Result map[string]bool

// Check evaluates every selector in checks against doc. Duplicate selectors
// share one entry. doc is only read.
func Check(doc *goquery.Document, checks []string) (Result, error) {
	out := make(Result, len(checks))
	for _, sel := range checks {
		if _, seen := out[sel]; seen {
			continue
		}
		m, err := cascadia.Compile(sel)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrMalformedSelector, sel, err)
		}
		out[sel] = doc.FindMatcher(m).Length() > 0
	}
	return out, nil
}

func CheckFile(path string, checks []string) (Result, error) {
	doc, err := document.FromFile(path)
	if err != nil {
		return nil, err
	}
	return Check(doc, checks)
}

func CheckString(html string, checks []string) (Result, error) {
	doc, err := document.FromString(html)
	if err != nil {
		return nil, err
	}
	return Check(doc, checks)
}

// DocumentSource acquires a remote document; *fetch.Fetcher satisfies it.
type DocumentSource interface {
	Document(ctx context.Context, rawURL string) (*goquery.Document, error)
}

func CheckURL(ctx context.Context, src DocumentSource, rawURL string, checks []string) (Result, error) {
	doc, err := src.Document(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	return Check(doc, checks)
}

// Missing returns the selectors that matched nothing, sorted.
func (r Result) Missing() []string {
	var out []string
	for sel, ok := range r {
		if !ok {
			out = append(out, sel)
		}
	}
	slices.Sort(out)
	return out
}
