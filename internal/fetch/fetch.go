// Package fetch acquires HTML documents over HTTP.
package fetch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"

	"selector-grader/config"
	"selector-grader/internal/document"
)

var ErrAcquisition = errors.New("acquisition failure")

const (
	DefaultTimeout      = 30 * time.Second
	DefaultMaxBodyBytes = 10 << 20
)

type Fetcher struct {
	client       *http.Client
	userAgent    string
	maxBodyBytes int64
	logger       *zap.SugaredLogger
}

type Options struct {
	Client       *http.Client
	Timeout      time.Duration
	UserAgent    string
	MaxBodyBytes int64
	Logger       *zap.SugaredLogger
}

func New(opts Options) *Fetcher {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if opts.Client == nil {
		opts.Client = &http.Client{Timeout: opts.Timeout}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop().Sugar()
	}
	return &Fetcher{
		client:       opts.Client,
		userAgent:    strings.TrimSpace(opts.UserAgent),
		maxBodyBytes: opts.MaxBodyBytes,
		logger:       opts.Logger,
	}
}

func NewFromConfig(cfg *config.Config, logger *zap.SugaredLogger) *Fetcher {
	return New(Options{
		Timeout:      cfg.FetchTimeout,
		UserAgent:    cfg.FetchUserAgent,
		MaxBodyBytes: cfg.FetchMaxBodyBytes,
		Logger:       logger,
	})
}

// Fetch GETs rawURL and returns the fully buffered body decoded to UTF-8.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrAcquisition, err)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAcquisition, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: unexpected status %s from %s", ErrAcquisition, resp.Status, rawURL)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrAcquisition, err)
	}
	if int64(len(raw)) > f.maxBodyBytes {
		return nil, fmt.Errorf("%w: body from %s exceeds %d bytes", ErrAcquisition, rawURL, f.maxBodyBytes)
	}

	body, err := toUTF8(raw, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("%w: decode body: %v", ErrAcquisition, err)
	}

	f.logger.Debugw("fetch_completed",
		"url", rawURL,
		"status", resp.StatusCode,
		"bytes", len(raw),
		"duration", time.Since(start),
	)
	return body, nil
}

func (f *Fetcher) Document(ctx context.Context, rawURL string) (*goquery.Document, error) {
	body, err := f.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	return document.FromReader(bytes.NewReader(body))
}

func toUTF8(raw []byte, contentType string) ([]byte, error) {
	r, err := charset.NewReader(bytes.NewReader(raw), contentType)
	if err != nil {
		return nil, err
	}
	return io.ReadAll(r)
}
