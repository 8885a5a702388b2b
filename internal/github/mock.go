package github

import (
	"fmt"

	"github.com/ryo246912/gh-unresolved-comments/internal/models"
)

// MockSource implements ThreadSource for testing
type MockSource struct {
	Report      *models.PullRequestReport
	ReportError error

	// Track method calls
	FetchReportCalls int
}

// FetchReport returns the configured report
func (m *MockSource) FetchReport() (*models.PullRequestReport, error) {
	m.FetchReportCalls++
	return m.Report, m.ReportError
}

// Reset clears all tracking data for fresh test
func (m *MockSource) Reset() {
	m.FetchReportCalls = 0
}

// Ensure MockSource implements ThreadSource interface
var _ ThreadSource = (*MockSource)(nil)

// Helper functions for creating test data

// CreateTestThreads builds count threads, every other one resolved, starting unresolved.
func CreateTestThreads(count int) []models.ReviewThread {
	threads := make([]models.ReviewThread, count)
	for i := 0; i < count; i++ {
		line := (i + 1) * 10
		threads[i] = models.ReviewThread{
			IsResolved: i%2 == 1,
			Comments: []models.Comment{
				{
					Path:   fmt.Sprintf("file%d.go", i+1),
					Line:   &line,
					Author: models.Author{Login: fmt.Sprintf("reviewer%d", i+1)},
					Body:   fmt.Sprintf("comment %d", i+1),
				},
			},
		}
	}
	return threads
}

// CreateTestReport wraps threads in a report with the given title
func CreateTestReport(title string, threads []models.ReviewThread) *models.PullRequestReport {
	return &models.PullRequestReport{Title: title, ReviewThreads: threads}
}

// NewReadError simulates a failing input stream
func NewReadError() error {
	return fmt.Errorf("read error: broken pipe")
}
