package validator

import "fmt"

// Severity classifies how serious a validation finding is.
// Severities are ordered: SeverityError > SeverityWarning > SeverityInfo.
type Severity int

const (
	// SeverityInfo is an informational finding.
	SeverityInfo Severity = iota
	// SeverityWarning is a finding that deserves attention but does not make
	// the model unusable.
	SeverityWarning
	// SeverityError is a finding that makes the model structurally broken.
	SeverityError
)

// severityOrder lists all severities most severe first, for summaries and
// deterministic serialization.
var severityOrder = []Severity{SeverityError, SeverityWarning, SeverityInfo}

// String returns the lowercase severity name used in summaries and JSON.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// ParseSeverity parses a severity name as produced by String.
func ParseSeverity(name string) (Severity, error) {
	switch name {
	case "error":
		return SeverityError, nil
	case "warning":
		return SeverityWarning, nil
	case "info":
		return SeverityInfo, nil
	default:
		return SeverityInfo, fmt.Errorf("unknown severity: %q", name)
	}
}

// Issue is a single validation finding. Issues are plain values and are
// never modified after construction; a Report never mutates the issues
// appended to it.
type Issue struct {
	// Severity classifies the finding.
	Severity Severity

	// Validator is the name of the validator that produced the issue.
	Validator string

	// Message describes the finding. Must not be empty.
	Message string

	// EntityRef optionally identifies the offending node or branch in the
	// network model, for downstream tooling to locate the problem. Empty
	// means the issue concerns the model as a whole.
	EntityRef string
}
