package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"selector-grader/config"
)

func newRootCmd(cfg *config.Config) *cobra.Command {
	opts := checkOptions{
		checksFile: cfg.ChecksFile,
		htmlFile:   cfg.HTMLFile,
		format:     cfg.OutputFormat,
		timeout:    cfg.FetchTimeout,
		logLevel:   cfg.LogLevel,
		userAgent:  cfg.FetchUserAgent,
		maxBody:    cfg.FetchMaxBodyBytes,
	}

	rootCmd := &cobra.Command{
		Use:   "grader",
		Short: "Check an HTML document for required tags and attributes",
		Long: `grader reports, for every CSS selector in a checks file, whether the
selector matches at least one element of an HTML document.

The document is read from --file, or fetched from --url when given.
Results are printed to stdout as JSON (or YAML with --format yaml).`,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.verbose {
				opts.logLevel = "debug"
			}
			return runCheck(cmd.Context(), opts, cmd.OutOrStdout())
		},
	}

	rootCmd.Flags().StringVarP(&opts.checksFile, "checks", "c", opts.checksFile, "Path to checks.json")
	rootCmd.Flags().StringVarP(&opts.htmlFile, "file", "f", opts.htmlFile, "Path to index.html")
	rootCmd.Flags().StringVarP(&opts.url, "url", "u", "", "URL to index.html (takes precedence over --file)")
	rootCmd.Flags().StringVar(&opts.format, "format", opts.format, "Output format: json or yaml")
	rootCmd.Flags().BoolVar(&opts.noSort, "no-sort", false, "Evaluate checks in file order instead of sorting them")
	rootCmd.Flags().DurationVar(&opts.timeout, "timeout", opts.timeout, "Timeout for fetching --url")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging on stderr")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", errUsage, err)
	})

	rootCmd.AddCommand(newServeCmd(cfg))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

type checkOptions struct {
	checksFile string
	htmlFile   string
	url        string
	format     string
	noSort     bool
	verbose    bool
	logLevel   string

	timeout   time.Duration
	userAgent string
	maxBody   int64
}
