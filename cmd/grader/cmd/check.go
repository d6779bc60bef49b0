package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"selector-grader/internal/checks"
	"selector-grader/internal/fetch"
	"selector-grader/internal/grader"
	"selector-grader/internal/input"
	"selector-grader/internal/logs"
	"selector-grader/internal/report"
)

func runCheck(ctx context.Context, opts checkOptions, out io.Writer) error {
	format, err := report.ParseFormat(opts.format)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	l, err := logs.Build(opts.logLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = l.Sync() }()
	log := l.Sugar().With("run_id", uuid.NewString())

	if err := validateInputs(opts); err != nil {
		return err
	}

	list, err := checks.Load(opts.checksFile)
	if err != nil {
		return err
	}
	if !opts.noSort {
		list = checks.Normalize(list)
	}
	log.Debugw("checks_loaded", "path", opts.checksFile, "count", len(list))

	result, err := grade(ctx, opts, list, log)
	if err != nil {
		return err
	}

	log.Debugw("grade_completed",
		"checks", len(list),
		"matched", len(result)-len(result.Missing()),
		"missing", result.Missing(),
	)
	return report.Write(out, result, format)
}

// validateInputs runs before anything is read; --url wins over --file.
func validateInputs(opts checkOptions) error {
	if err := input.FileExists(opts.checksFile); err != nil {
		return err
	}
	if opts.url != "" {
		return input.ValidURL(opts.url)
	}
	return input.FileExists(opts.htmlFile)
}

func grade(ctx context.Context, opts checkOptions, list []string, log *zap.SugaredLogger) (grader.Result, error) {
	if opts.url == "" {
		log.Debugw("document_source", "file", opts.htmlFile)
		return grader.CheckFile(opts.htmlFile, list)
	}

	log.Debugw("document_source", "url", opts.url, "timeout", opts.timeout)
	f := fetch.New(fetch.Options{
		Timeout:      opts.timeout,
		UserAgent:    opts.userAgent,
		MaxBodyBytes: opts.maxBody,
		Logger:       log,
	})
	return grader.CheckURL(ctx, f, opts.url, list)
}
