package domain

import (
	"fmt"
	"strings"
)

// ImportRow is one roster line produced by a spreadsheet adapter.
// A nil or blank ClassName places the student in the default class.
type ImportRow struct {
	Name        string  `json:"name"`
	OrderNumber int     `json:"order_number"`
	ClassName   *string `json:"class_name,omitempty"`
}

// ImportGroupResult is the outcome of importing one class group.
type ImportGroupResult struct {
	ClassName    string `json:"class_name"`
	ClassID      string `json:"class_id,omitempty"`
	ClassCreated bool   `json:"class_created"`
	Imported     int    `json:"imported"`
	Error        string `json:"error,omitempty"`
	err          error
}

// Err returns the cause of a failed group, or nil.
func (g ImportGroupResult) Err() error {
	return g.err
}

// Failed reports whether the group was rolled back.
func (g ImportGroupResult) Failed() bool {
	return g.err != nil
}

// WithError records the failure cause on the group.
func (g ImportGroupResult) WithError(err error) ImportGroupResult {
	g.err = err
	if err != nil {
		g.Error = err.Error()
	}
	return g
}

// ImportResult lists every group in the order it was processed.
type ImportResult struct {
	Groups        []ImportGroupResult `json:"groups"`
	TotalImported int                 `json:"total_imported"`
}

// Failed returns the groups that did not commit.
func (r *ImportResult) Failed() []ImportGroupResult {
	var failed []ImportGroupResult
	for _, g := range r.Groups {
		if g.Failed() {
			failed = append(failed, g)
		}
	}
	return failed
}

// ImportError reports a partially applied import. Groups listed as
// succeeded stay committed.
type ImportError struct {
	Succeeded []ImportGroupResult
	Failed    []ImportGroupResult
}

func (e *ImportError) Error() string {
	names := make([]string, len(e.Failed))
	for i, g := range e.Failed {
		names[i] = fmt.Sprintf("%s (%s)", g.ClassName, g.Error)
	}
	return fmt.Sprintf("%s: %d of %d groups failed: %s",
		ErrMsgImportPartial, len(e.Failed), len(e.Failed)+len(e.Succeeded), strings.Join(names, "; "))
}

// Unwrap exposes the per-group causes to errors.Is and errors.As.
func (e *ImportError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failed))
	for _, g := range e.Failed {
		if g.err != nil {
			errs = append(errs, g.err)
		}
	}
	return errs
}
