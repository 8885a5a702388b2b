package models

// PullRequestReport represents a pull request and its review threads
type PullRequestReport struct {
	Title         string         `json:"title"`
	ReviewThreads []ReviewThread `json:"reviewThreads"`
}

// ReviewThread represents one review conversation on the PR diff
type ReviewThread struct {
	IsResolved bool      `json:"isResolved"`
	Comments   []Comment `json:"comments"`
}

// Comment represents a single review comment
type Comment struct {
	Path   string `json:"path"`
	Line   *int   `json:"line"`
	Author Author `json:"author"`
	Body   string `json:"body"`
}

// Author represents the GitHub account that wrote a comment
type Author struct {
	Login string `json:"login"`
}

// Unresolved returns the threads still open, in their original order.
func (r *PullRequestReport) Unresolved() []ReviewThread {
	open := make([]ReviewThread, 0, len(r.ReviewThreads))
	for _, t := range r.ReviewThreads {
		if !t.IsResolved {
			open = append(open, t)
		}
	}
	return open
}

// FirstComment returns the comment that opened the thread
func (t ReviewThread) FirstComment() (Comment, bool) {
	if len(t.Comments) == 0 {
		return Comment{}, false
	}
	return t.Comments[0], true
}
