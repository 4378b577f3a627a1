package calcerrors

import (
	"errors"
	"fmt"
)

var (
	ErrScanUnexpectedCharacter = errors.New("Unexpected character")
)

type ScannerError struct {
	line    int
	column  int
	cause   error
	details string
}

func NewScanError(line, column int, cause error, details string) *ScannerError {
	return &ScannerError{line, column, cause, details}
}

// Error implements error.
func (s *ScannerError) Error() string {
	details := s.details
	if details != "" {
		details = " " + details
	}
	return fmt.Sprintf("[line %d] Error: %v%s", s.line, s.cause, details)
}

func (s *ScannerError) Unwrap() error {
	return s.cause
}

func (s *ScannerError) Kind() Kind {
	return LexicalError
}

func (s *ScannerError) Position() (line, column int) {
	return s.line, s.column
}

var _ error = (*ScannerError)(nil)
var _ unwrapInterface = (*ScannerError)(nil)
var _ kindedError = (*ScannerError)(nil)
