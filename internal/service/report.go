package service

import (
	"bytes"
	"io"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/ryo246912/gh-unresolved-comments/internal/github"
	"github.com/ryo246912/gh-unresolved-comments/internal/ui"
)

const previewWidth = 60

// ReportService contains the business logic
type ReportService struct {
	source github.ThreadSource
	logger *log.Logger
}

// NewReportService creates a new service instance
func NewReportService(source github.ThreadSource, logger *log.Logger) *ReportService {
	if logger == nil {
		logger = log.Default()
	}
	return &ReportService{
		source: source,
		logger: logger,
	}
}

// GenerateReport fetches the review threads and writes the report to w.
// Nothing is written when the payload cannot be decoded or rendered.
func (s *ReportService) GenerateReport(w io.Writer) error {
	report, err := s.source.FetchReport()
	if err != nil {
		return err
	}

	unresolved := report.Unresolved()
	s.logger.Debug("decoded review threads", "title", report.Title,
		"threads", len(report.ReviewThreads), "unresolved", len(unresolved))
	for i, thread := range unresolved {
		if c, ok := thread.FirstComment(); ok {
			s.logger.Debug("unresolved thread", "index", i+1, "path", c.Path,
				"line", ui.FormatLine(c.Line), "author", c.Author.Login, "body", ui.Preview(c.Body, previewWidth))
		}
	}

	var buf bytes.Buffer
	if err := ui.RenderReport(&buf, report); err != nil {
		return errors.Wrap(err, "failed to render report")
	}
	if _, err := buf.WriteTo(w); err != nil {
		return errors.Wrap(err, "failed to write report")
	}
	return nil
}

// GenerateReport turns a reviewThreads GraphQL payload into the report text
func GenerateReport(input []byte) (string, error) {
	report, err := github.Decode(input)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := ui.RenderReport(&buf, report); err != nil {
		return "", errors.Wrap(err, "failed to render report")
	}
	return buf.String(), nil
}
