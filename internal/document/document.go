// Package document turns HTML bytes into a queryable goquery document.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var ErrUnparsable = errors.New("unparsable document")

func FromFile(path string) (*goquery.Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read html file: %w", err)
	}
	return FromReader(bytes.NewReader(b))
}

func FromString(html string) (*goquery.Document, error) {
	return FromReader(strings.NewReader(html))
}

// FromReader expects UTF-8 input; callers holding other encodings decode first.
func FromReader(r io.Reader) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparsable, err)
	}
	return doc, nil
}
