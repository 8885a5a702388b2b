package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/cli/go-gh/v2/pkg/term"
	"github.com/pkg/errors"
	"github.com/ryo246912/gh-unresolved-comments/internal/config"
	"github.com/ryo246912/gh-unresolved-comments/internal/github"
	"github.com/ryo246912/gh-unresolved-comments/internal/service"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

const logPrefix = "unresolved-comments"

// isTerminal is replaced in tests
var isTerminal = term.IsTerminal

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix: logPrefix,
		Level:  level,
	})
}

func runCommand(cmd *cobra.Command, in io.Reader) error {
	errOut := cmd.ErrOrStderr()

	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	level, _ := cfg.Level()
	logger := newLogger(errOut, level)

	printQuery, _ := cmd.Flags().GetBool("print-query")
	if printQuery {
		_, err := fmt.Fprint(cmd.OutOrStdout(), github.ReviewThreadsQuery)
		return err
	}

	if f, ok := in.(*os.File); ok && isTerminal(f) {
		logger.Warn("waiting for review threads JSON on standard input (pipe the output of gh api graphql)")
	}

	reportService := service.NewReportService(github.NewReaderSource(in), logger)
	return reportService.GenerateReport(cmd.OutOrStdout())
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unresolved-comments",
		Short: "Summarize unresolved review comments of a pull request",
		Long: "Reads the JSON result of a pull request reviewThreads GraphQL query from standard input\n" +
			"and prints every unresolved thread with its location, author and first comment.",
		Example: `  gh api graphql -F owner=cli -F name=cli -F number=123 \
    -f query="$(gh unresolved-comments --print-query)" | gh unresolved-comments`,
		Args:    cobra.NoArgs,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(cmd, in)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	cmd.Flags().String(config.LogLevelKey, config.DefaultLogLevel, "log level for diagnostics on stderr (debug, info, warn, error)")
	cmd.Flags().Bool("print-query", false, "print the GraphQL query whose result this command reads, then exit")

	return cmd
}

// execute runs cmd and reports any failure on errOut, returning the exit code
func execute(cmd *cobra.Command, errOut io.Writer) int {
	if err := cmd.Execute(); err != nil {
		newLogger(errOut, log.ErrorLevel).Error("could not produce a report", "err", err)
		return 1
	}
	return 0
}

func main() {
	t := term.FromEnv()
	cmd := newRootCmd(t.In(), t.Out(), t.ErrOut())
	os.Exit(execute(cmd, t.ErrOut()))
}
