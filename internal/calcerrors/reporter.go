package calcerrors

import (
	"fmt"
	"io"
)

type ErrReporter interface {
	ReportPanic(err error)
	ReportError(err error)
}

type errReporter struct {
	w io.Writer
}

func NewErrReporter(w io.Writer) ErrReporter {
	return &errReporter{w: w}
}

// ReportPanic implements ErrReporter.
func (e *errReporter) ReportPanic(err error) {
	DefaultReportPanic(e.w, err)
}

// ReportError implements ErrReporter.
func (e *errReporter) ReportError(err error) {
	DefaultReportError(e.w, err)
}

// DefaultReportPanic is the default implementation of ErrReporter.ReportPanic.
func DefaultReportPanic(w io.Writer, err error) {
	fmt.Fprintf(w, "FATAL %v\n", err)
}

// DefaultReportError is the default implementation of ErrReporter.ReportError.
// Pipeline errors carry their own "[line L] Error" prefix and are written as is.
func DefaultReportError(w io.Writer, err error) {
	if _, ok := KindOf(err); ok {
		fmt.Fprintln(w, err)
		return
	}
	fmt.Fprintf(w, "ERROR %v\n", err)
}

var _ ErrReporter = (*errReporter)(nil)
