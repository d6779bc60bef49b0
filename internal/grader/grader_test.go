package grader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"selector-grader/internal/document"
)

func mustDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()

	doc, err := document.FromString(html)
	require.NoError(t, err)
	return doc
}

func TestCheck_TagsPresentAndAbsent(t *testing.T) {
	t.Parallel()

	doc := mustDoc(t, `<html><head><title>t</title></head><body><div id="x"></div></body></html>`)

	got, err := Check(doc, []string{"title", "div", "span"})
	require.NoError(t, err)
	assert.Equal(t, Result{"title": true, "div": true, "span": false}, got)
}

func TestCheck_EmptyList(t *testing.T) {
	t.Parallel()

	got, err := Check(mustDoc(t, `<html></html>`), []string{})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCheck_NilList(t *testing.T) {
	t.Parallel()

	got, err := Check(mustDoc(t, `<html></html>`), nil)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCheck_Classes(t *testing.T) {
	t.Parallel()

	doc := mustDoc(t, `<div class="foo bar"></div>`)

	got, err := Check(doc, []string{".foo", ".bar", ".baz"})
	require.NoError(t, err)
	assert.Equal(t, Result{".foo": true, ".bar": true, ".baz": false}, got)
}

func TestCheck_DuplicateSelectors(t *testing.T) {
	t.Parallel()

	doc := mustDoc(t, `<div></div>`)

	got, err := Check(doc, []string{"div", "p", "div"})
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.True(t, got["div"])
	assert.False(t, got["p"])
}

func TestCheck_AttributesAndCombinators(t *testing.T) {
	t.Parallel()

	doc := mustDoc(t, `<html><head><meta name="viewport" content="width=device-width"></head>
<body><section id="main"><ul class="nav"><li><a href="/about">About</a></li></ul></section></body></html>`)

	got, err := Check(doc, []string{
		`meta[name="viewport"]`,
		`meta[name="description"]`,
		"#main ul.nav > li a[href]",
		"section > a",
		"body section",
	})
	require.NoError(t, err)
	assert.Equal(t, Result{
		`meta[name="viewport"]`:     true,
		`meta[name="description"]`:  false,
		"#main ul.nav > li a[href]": true,
		"section > a":               false,
		"body section":              true,
	}, got)
}

func TestCheck_MalformedSelector(t *testing.T) {
	t.Parallel()

	doc := mustDoc(t, `<div></div>`)

	for _, sel := range []string{"div[", "", ">>"} {
		_, err := Check(doc, []string{"div", sel})
		require.ErrorIs(t, err, ErrMalformedSelector, "selector %q", sel)
	}
}

func TestCheck_IdempotentAndOrderIndependent(t *testing.T) {
	t.Parallel()

	doc := mustDoc(t, `<body><p class="a"></p><span></span></body>`)
	list := []string{"p.a", "span", "em", "body p"}
	reversed := []string{"body p", "em", "span", "p.a"}

	first, err := Check(doc, list)
	require.NoError(t, err)
	second, err := Check(doc, list)
	require.NoError(t, err)
	permuted, err := Check(doc, reversed)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, first, permuted)
}

func TestCheck_DoesNotMutateDocument(t *testing.T) {
	t.Parallel()

	doc := mustDoc(t, `<div><p>x</p></div>`)
	before, err := doc.Html()
	require.NoError(t, err)

	_, err = Check(doc, []string{"div", "p", "span"})
	require.NoError(t, err)

	after, err := doc.Html()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestCheckString(t *testing.T) {
	t.Parallel()

	got, err := CheckString(`<h1>hi</h1>`, []string{"h1", "h2"})
	require.NoError(t, err)
	assert.Equal(t, Result{"h1": true, "h2": false}, got)
}

func TestCheckFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(path, []byte(`<form><input type="email"></form>`), 0o644))

	got, err := CheckFile(path, []string{`input[type="email"]`, "textarea"})
	require.NoError(t, err)
	assert.Equal(t, Result{`input[type="email"]`: true, "textarea": false}, got)
}

func TestCheckFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := CheckFile(filepath.Join(t.TempDir(), "none.html"), []string{"div"})
	require.ErrorIs(t, err, os.ErrNotExist)
}

type stubSource struct {
	html string
	err  error
}

func (s stubSource) Document(ctx context.Context, rawURL string) (*goquery.Document, error) {
	if s.err != nil {
		return nil, s.err
	}
	return document.FromString(s.html)
}

func TestCheckURL(t *testing.T) {
	t.Parallel()

	got, err := CheckURL(context.Background(), stubSource{html: `<nav></nav>`}, "https://example.com", []string{"nav", "footer"})
	require.NoError(t, err)
	assert.Equal(t, Result{"nav": true, "footer": false}, got)
}

func TestCheckURL_SourceError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	_, err := CheckURL(context.Background(), stubSource{err: boom}, "https://example.com", []string{"nav"})
	require.ErrorIs(t, err, boom)
}

func TestResult_Missing(t *testing.T) {
	t.Parallel()

	r := Result{"b": false, "a": false, "c": true}
	assert.Equal(t, []string{"a", "b"}, r.Missing())
	assert.Empty(t, Result{"x": true}.Missing())
}
