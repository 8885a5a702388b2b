package github

import (
	"io"

	"github.com/pkg/errors"
	"github.com/ryo246912/gh-unresolved-comments/internal/models"
)

// ThreadSource defines where a pull request's review threads come from
type ThreadSource interface {
	FetchReport() (*models.PullRequestReport, error)
}

// ReaderSource decodes a review threads payload from an io.Reader, usually stdin
type ReaderSource struct {
	r io.Reader
}

// NewReaderSource creates a source reading from r
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{r: r}
}

// FetchReport reads the whole input before decoding it
func (s *ReaderSource) FetchReport() (*models.PullRequestReport, error) {
	input, err := io.ReadAll(s.r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read input")
	}
	return Decode(input)
}

// Ensure ReaderSource implements ThreadSource interface
var _ ThreadSource = (*ReaderSource)(nil)
