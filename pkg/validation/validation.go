package validation

import (
	"errors"
	"fmt"

	"github.com/brokenerd/healthcalc/pkg/health"
)

// Level indicates which stage produced the result.
type Level string

const (
	LevelInput Level = "input" // form-range checks on the raw profile
	LevelCore  Level = "core"  // rejected by the calculator itself
)

// Severity indicates how critical a validation result is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Result is a single validation finding.
type Result struct {
	Level       Level    `json:"level"`
	Severity    Severity `json:"severity"`
	Message     string   `json:"message"`
	Path        string   `json:"path"`
	ActualValue any      `json:"actual_value,omitempty"`
	Expected    string   `json:"expected,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// Report is the complete validation output.
type Report struct {
	Valid    bool     `json:"valid"`
	Errors   []Result `json:"errors"`
	Warnings []Result `json:"warnings"`
	Info     []Result `json:"info"`
	Summary  string   `json:"summary"`
}

// NewReport creates an empty valid report.
func NewReport() *Report {
	r := &Report{
		Valid:    true,
		Errors:   []Result{},
		Warnings: []Result{},
		Info:     []Result{},
	}
	r.updateSummary()
	return r
}

// FromError wraps a calculator error in a report. A *health.ValidationError
// keeps its field name as the path.
func FromError(err error) *Report {
	r := NewReport()
	var ve *health.ValidationError
	if errors.As(err, &ve) {
		r.AddError(Result{
			Level:       LevelCore,
			Message:     ve.Error(),
			Path:        ve.Field,
			ActualValue: ve.Value,
			Expected:    ve.Reason,
		})
		return r
	}
	r.AddError(Result{Level: LevelCore, Message: err.Error()})
	return r
}

// AddError adds an error result and marks the report invalid.
func (r *Report) AddError(result Result) {
	result.Severity = SeverityError
	r.Errors = append(r.Errors, result)
	r.Valid = false
	r.updateSummary()
}

// AddWarning adds a warning result.
func (r *Report) AddWarning(result Result) {
	result.Severity = SeverityWarning
	r.Warnings = append(r.Warnings, result)
	r.updateSummary()
}

// AddInfo adds an informational result.
func (r *Report) AddInfo(result Result) {
	result.Severity = SeverityInfo
	r.Info = append(r.Info, result)
	r.updateSummary()
}

// Merge combines another report into this one.
func (r *Report) Merge(other *Report) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.Info = append(r.Info, other.Info...)
	if !other.Valid {
		r.Valid = false
	}
	r.updateSummary()
}

// Paths returns the path of every error, in order.
func (r *Report) Paths() []string {
	paths := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		paths = append(paths, e.Path)
	}
	return paths
}

func (r *Report) updateSummary() {
	r.Summary = fmt.Sprintf("%d errors, %d warnings, %d info",
		len(r.Errors), len(r.Warnings), len(r.Info))
}
