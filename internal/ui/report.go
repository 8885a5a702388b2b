package ui

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/ryo246912/gh-unresolved-comments/internal/models"
)

const noUnresolvedMessage = "No unresolved review comments."

// RenderReport writes the unresolved comment report for pr to w.
//
// Threads are numbered from 1 in their original order, and only the first
// comment of each thread is shown. The body is written verbatim.
func RenderReport(w io.Writer, pr *models.PullRequestReport) error {
	ew := &errWriter{w: w}

	ew.printf("PR: %s\n", pr.Title)
	ew.println("")

	unresolved := pr.Unresolved()
	if len(unresolved) == 0 {
		ew.println(noUnresolvedMessage)
		return ew.err
	}

	ew.printf("%d unresolved comment(s):\n\n", len(unresolved))
	for i, thread := range unresolved {
		c, ok := thread.FirstComment()
		if !ok {
			return errors.Errorf("unresolved thread %d has no comments", i+1)
		}
		ew.printf("[%d] %s:%s  (by %s)\n", i+1, c.Path, FormatLine(c.Line), c.Author.Login)
		ew.println(c.Body)
		ew.println("")
	}
	return ew.err
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
