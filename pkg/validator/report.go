package validator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Report is the ordered collection of issues produced by one validation run.
// Issue order is discovery order: validators in execution order, then each
// validator's own emission order. A Report is never merged across runs; a
// new run produces a new Report.
type Report struct {
	runID  string
	issues []Issue
}

// NewReport creates a Report over the given issues. The runID identifies the
// run that produced it; an empty runID is replaced with a generated one.
func NewReport(runID string, issues []Issue) *Report {
	if runID == "" {
		runID = uuid.NewString()
	}
	return &Report{runID: runID, issues: issues}
}

// RunID returns the identifier of the run that produced this report.
func (r *Report) RunID() string { return r.runID }

// Issues returns the findings in discovery order. Callers must not modify
// the returned slice.
func (r *Report) Issues() []Issue { return r.issues }

// Len returns the total number of issues.
func (r *Report) Len() int { return len(r.issues) }

// Counts returns the number of issues per severity. Severities with no
// issues are absent from the map.
func (r *Report) Counts() map[Severity]int {
	counts := make(map[Severity]int)
	for _, issue := range r.issues {
		counts[issue.Severity]++
	}
	return counts
}

// HasErrors reports whether the report contains any ERROR issue.
func (r *Report) HasErrors() bool {
	for _, issue := range r.issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

// BySeverity returns the issues with the given severity, in report order.
func (r *Report) BySeverity(s Severity) []Issue {
	var out []Issue
	for _, issue := range r.issues {
		if issue.Severity == s {
			out = append(out, issue)
		}
	}
	return out
}

// Summary returns a fixed-format human-readable summary, listing non-zero
// severities most severe first:
//
//	Found 0 issues
//	Found 3 issues: error: 2, warning: 1
func (r *Report) Summary() string {
	if len(r.issues) == 0 {
		return "Found 0 issues"
	}

	counts := r.Counts()
	parts := make([]string, 0, len(severityOrder))
	for _, s := range severityOrder {
		if counts[s] > 0 {
			parts = append(parts, fmt.Sprintf("%s: %d", s, counts[s]))
		}
	}
	return fmt.Sprintf("Found %d issues: %s", len(r.issues), strings.Join(parts, ", "))
}

// issueJSON is the wire representation of a single issue. entity_ref is
// null, not omitted, when the issue has no entity reference.
type issueJSON struct {
	Severity  string  `json:"severity"`
	Validator string  `json:"validator"`
	Message   string  `json:"message"`
	EntityRef *string `json:"entity_ref"`
}

// ToJSON serializes the report as a deterministic JSON array with one object
// per issue, in report order. The serialization is lossless: ParseReport
// reconstructs an equivalent report from it.
func (r *Report) ToJSON() ([]byte, error) {
	out := make([]issueJSON, 0, len(r.issues))
	for _, issue := range r.issues {
		ij := issueJSON{
			Severity:  issue.Severity.String(),
			Validator: issue.Validator,
			Message:   issue.Message,
		}
		if issue.EntityRef != "" {
			ref := issue.EntityRef
			ij.EntityRef = &ref
		}
		out = append(out, ij)
	}
	return json.Marshal(out)
}

// ParseReport reconstructs a Report from the JSON produced by ToJSON. The
// rehydrated report carries a fresh run ID.
func ParseReport(data []byte) (*Report, error) {
	var wire []issueJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("failed to parse report JSON: %w", err)
	}

	issues := make([]Issue, 0, len(wire))
	for i, ij := range wire {
		sev, err := ParseSeverity(ij.Severity)
		if err != nil {
			return nil, fmt.Errorf("issue %d: %w", i, err)
		}
		issue := Issue{
			Severity:  sev,
			Validator: ij.Validator,
			Message:   ij.Message,
		}
		if ij.EntityRef != nil {
			issue.EntityRef = *ij.EntityRef
		}
		issues = append(issues, issue)
	}
	return NewReport("", issues), nil
}
