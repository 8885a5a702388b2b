package github

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/pkg/errors"
	"github.com/ryo246912/gh-unresolved-comments/internal/models"
	"github.com/tidwall/gjson"
)

const pullRequestPath = "data.repository.pullRequest"

// Decode parses a reviewThreads GraphQL response into a PullRequestReport.
//
// Syntax errors yield a *ParseError. Keys are matched exactly, one navigation
// step at a time; a missing key or a value of the wrong type on the access
// path yields a *ShapeError. Only the first comment of an unresolved thread is
// checked, since it is the only comment a report reads.
func Decode(input []byte) (*models.PullRequestReport, error) {
	if !gjson.ValidBytes(input) {
		return nil, &ParseError{Err: syntaxError(input)}
	}

	root := gjson.ParseBytes(input)
	if !root.IsObject() {
		return nil, &ShapeError{Path: "(root)", Reason: "expected an object at"}
	}

	data, ok := field(root, "data")
	if !ok || data.Type == gjson.Null {
		if msg := firstGraphQLError(root); msg != "" {
			return nil, &ShapeError{Path: "data", Reason: "missing key", Err: errors.New(msg)}
		}
	}
	data, err := object(root, "data", "data")
	if err != nil {
		return nil, err
	}
	repo, err := object(data, "repository", "data.repository")
	if err != nil {
		return nil, err
	}
	pr, err := object(repo, "pullRequest", pullRequestPath)
	if err != nil {
		return nil, err
	}
	return decodePullRequest(pr)
}

func decodePullRequest(pr gjson.Result) (*models.PullRequestReport, error) {
	title, err := str(pr, "title", pullRequestPath+".title")
	if err != nil {
		return nil, err
	}
	threads, err := object(pr, "reviewThreads", pullRequestPath+".reviewThreads")
	if err != nil {
		return nil, err
	}
	nodes, err := array(threads, "nodes", pullRequestPath+".reviewThreads.nodes")
	if err != nil {
		return nil, err
	}

	report := &models.PullRequestReport{
		Title:         title,
		ReviewThreads: make([]models.ReviewThread, 0, len(nodes)),
	}
	for i, node := range nodes {
		path := fmt.Sprintf("%s.reviewThreads.nodes[%d]", pullRequestPath, i)
		thread, err := decodeThread(node, path)
		if err != nil {
			return nil, err
		}
		report.ReviewThreads = append(report.ReviewThreads, thread)
	}
	return report, nil
}

func decodeThread(node gjson.Result, path string) (models.ReviewThread, error) {
	if !node.IsObject() {
		return models.ReviewThread{}, missingKey(path + ".isResolved")
	}
	resolved, ok := field(node, "isResolved")
	if !ok {
		return models.ReviewThread{}, missingKey(path + ".isResolved")
	}
	if resolved.Type != gjson.True && resolved.Type != gjson.False {
		return models.ReviewThread{}, wrongType(path+".isResolved", "a boolean", resolved)
	}

	thread := models.ReviewThread{IsResolved: resolved.Bool()}
	if thread.IsResolved {
		return thread, nil
	}

	comments, err := object(node, "comments", path+".comments")
	if err != nil {
		return thread, err
	}
	nodes, err := array(comments, "nodes", path+".comments.nodes")
	if err != nil {
		return thread, err
	}
	if len(nodes) == 0 {
		return thread, &ShapeError{Path: path + ".comments.nodes", Reason: "no comments in"}
	}

	first, err := decodeComment(nodes[0], path+".comments.nodes[0]")
	if err != nil {
		return thread, err
	}
	thread.Comments = make([]models.Comment, 0, len(nodes))
	thread.Comments = append(thread.Comments, first)
	// Replies are copied as-is; fields of the wrong type are left empty.
	for _, c := range nodes[1:] {
		if c.IsObject() {
			thread.Comments = append(thread.Comments, replyComment(c))
		}
	}
	return thread, nil
}

func decodeComment(node gjson.Result, path string) (models.Comment, error) {
	if !node.IsObject() {
		return models.Comment{}, missingKey(path)
	}
	filePath, err := str(node, "path", path+".path")
	if err != nil {
		return models.Comment{}, err
	}
	author, err := object(node, "author", path+".author")
	if err != nil {
		return models.Comment{}, err
	}
	login, err := str(author, "login", path+".author.login")
	if err != nil {
		return models.Comment{}, err
	}
	body, err := str(node, "body", path+".body")
	if err != nil {
		return models.Comment{}, err
	}

	comment := models.Comment{
		Path:   filePath,
		Author: models.Author{Login: login},
		Body:   body,
	}
	if line, ok := field(node, "line"); ok && line.Type != gjson.Null {
		n, ok := integer(line)
		if !ok {
			return models.Comment{}, wrongType(path+".line", "an integer", line)
		}
		comment.Line = &n
	}
	return comment, nil
}

func replyComment(node gjson.Result) models.Comment {
	var comment models.Comment
	if v, ok := field(node, "path"); ok && v.Type == gjson.String {
		comment.Path = v.Str
	}
	if v, ok := field(node, "line"); ok {
		if n, ok := integer(v); ok {
			comment.Line = &n
		}
	}
	if author, ok := field(node, "author"); ok && author.IsObject() {
		if v, ok := field(author, "login"); ok && v.Type == gjson.String {
			comment.Author.Login = v.Str
		}
	}
	if v, ok := field(node, "body"); ok && v.Type == gjson.String {
		comment.Body = v.Str
	}
	return comment
}

// field looks up key in obj with an exact, case-sensitive match. When a key
// repeats, the last occurrence wins.
func field(obj gjson.Result, key string) (gjson.Result, bool) {
	var (
		found gjson.Result
		ok    bool
	)
	obj.ForEach(func(k, v gjson.Result) bool {
		if k.Str == key {
			found, ok = v, true
		}
		return true
	})
	return found, ok
}

func object(obj gjson.Result, key, path string) (gjson.Result, error) {
	v, ok := field(obj, key)
	if !ok || v.Type == gjson.Null {
		return gjson.Result{}, missingKey(path)
	}
	if !v.IsObject() {
		return gjson.Result{}, wrongType(path, "an object", v)
	}
	return v, nil
}

func array(obj gjson.Result, key, path string) ([]gjson.Result, error) {
	v, ok := field(obj, key)
	if !ok || v.Type == gjson.Null {
		return nil, missingKey(path)
	}
	if !v.IsArray() {
		return nil, wrongType(path, "an array", v)
	}
	return v.Array(), nil
}

func str(obj gjson.Result, key, path string) (string, error) {
	v, ok := field(obj, key)
	if !ok || v.Type == gjson.Null {
		return "", missingKey(path)
	}
	if v.Type != gjson.String {
		return "", wrongType(path, "a string", v)
	}
	return v.Str, nil
}

func integer(v gjson.Result) (int, bool) {
	if v.Type != gjson.Number || v.Num != math.Trunc(v.Num) {
		return 0, false
	}
	return int(v.Int()), true
}

func wrongType(path, want string, got gjson.Result) error {
	return &ShapeError{
		Path:   path,
		Reason: "unexpected type for",
		Err:    errors.Errorf("expected %s, got %s", want, got.Raw),
	}
}

func firstGraphQLError(root gjson.Result) string {
	errs, ok := field(root, "errors")
	if !ok || !errs.IsArray() {
		return ""
	}
	for _, e := range errs.Array() {
		if msg, ok := field(e, "message"); ok && msg.Type == gjson.String {
			return msg.Str
		}
	}
	return ""
}

// syntaxError reports where the input stops being valid JSON.
func syntaxError(input []byte) error {
	var raw json.RawMessage
	if err := json.Unmarshal(input, &raw); err != nil {
		return err
	}
	return errors.New("malformed JSON")
}
