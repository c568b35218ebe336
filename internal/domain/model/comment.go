package model

import "fmt"

// ReportKind identifies one of the independent report streams that share the
// comment-upsert primitive. Each kind owns a distinct marker so the streams
// can never overwrite each other's comment.
type ReportKind string

const (
	KindCoverage ReportKind = "coverage"
	KindE2E      ReportKind = "e2e"
	KindBuild    ReportKind = "build"
)

// ParseReportKind validates a user-supplied kind string.
func ParseReportKind(s string) (ReportKind, error) {
	switch ReportKind(s) {
	case KindCoverage, KindE2E, KindBuild:
		return ReportKind(s), nil
	}
	return "", fmt.Errorf("%w: unknown report type %q (expected coverage, e2e or build)", ErrValidation, s)
}

// Marker returns the uniquely-delimited token embedded in a comment body to
// recognize it across runs. Matching happens on this token only; free-text
// (such as a title) is never used, so unrelated comments cannot collide.
func (k ReportKind) Marker() string {
	return fmt.Sprintf("<!-- covgate:%s -->", k)
}

// ReportStatus is the outcome reported by an upstream CI job.
type ReportStatus string

const (
	StatusSuccess ReportStatus = "success"
	StatusFailure ReportStatus = "failure"
	StatusWarning ReportStatus = "warning"
)

// ParseReportStatus validates a user-supplied status string.
func ParseReportStatus(s string) (ReportStatus, error) {
	switch ReportStatus(s) {
	case StatusSuccess, StatusFailure, StatusWarning:
		return ReportStatus(s), nil
	}
	return "", fmt.Errorf("%w: unknown status %q (expected success, failure or warning)", ErrValidation, s)
}

// Glyph returns the status symbol used in rendered comments.
func (s ReportStatus) Glyph() string {
	switch s {
	case StatusSuccess:
		return "✅"
	case StatusFailure:
		return "❌"
	default:
		return "⚠️"
	}
}

// IssueComment is the slice of a hosting-API comment the synchronizer needs:
// the remote identifier and the body it matches markers against.
type IssueComment struct {
	ID   int64
	Body string
}
