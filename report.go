package decision

import (
	"fmt"
	"time"
)

// Severity classifies a diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Marker returns the prefix printed in front of a diagnostic of this severity.
func (s Severity) Marker() string {
	if s == SeverityWarning {
		return "⚠️  Warning: "
	}
	return "❌ "
}

// Diagnostic is one problem found in a document.
type Diagnostic struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// String renders the diagnostic with its marker.
func (d Diagnostic) String() string {
	return d.Severity.Marker() + d.Message
}

// Report is the outcome of validating one document.
//
// Valid is true only when Diagnostics is empty, so warnings fail the verdict
// as well. Use ValidIgnoringWarnings for the laxer reading.
type Report struct {
	ID          string       `json:"id,omitempty"`
	Source      string       `json:"source"`
	Valid       bool         `json:"valid"`
	Diagnostics []Diagnostic `json:"diagnostics"`
	NodeCount   int          `json:"nodeCount"`
	EdgeCount   int          `json:"edgeCount"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// Messages returns every diagnostic rendered with its marker, in order.
func (r *Report) Messages() []string {
	out := make([]string, len(r.Diagnostics))
	for i, d := range r.Diagnostics {
		out[i] = d.String()
	}
	return out
}

// Errors returns the diagnostics of error severity.
func (r *Report) Errors() []Diagnostic {
	return r.filter(SeverityError)
}

// Warnings returns the diagnostics of warning severity.
func (r *Report) Warnings() []Diagnostic {
	return r.filter(SeverityWarning)
}

// ValidIgnoringWarnings reports whether the document has no error-severity
// diagnostics.
func (r *Report) ValidIgnoringWarnings() bool {
	return len(r.Errors()) == 0
}

func (r *Report) filter(s Severity) []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diagnostics {
		if d.Severity == s {
			out = append(out, d)
		}
	}
	return out
}

// diagnostics accumulates findings during one validation pass.
type diagnostics []Diagnostic

func (d *diagnostics) errorf(format string, args ...any) {
	*d = append(*d, Diagnostic{Severity: SeverityError, Message: fmt.Sprintf(format, args...)})
}

func (d *diagnostics) warnf(format string, args ...any) {
	*d = append(*d, Diagnostic{Severity: SeverityWarning, Message: fmt.Sprintf(format, args...)})
}
