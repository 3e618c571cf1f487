package converter

import (
	"fmt"
)

// ErrorPrefix starts the message of every error returned by Convert
const ErrorPrefix = "SVG to PNG conversion failed: "

// ValidationError is a malformed, missing or out of range input. It is
// always returned before any file is written.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrorf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ConversionError is a failure reading, rendering or encoding one source
type ConversionError struct {
	// Index is the position in a batch, or -1 for a single conversion
	Index  int
	Source string
	Err    error
}

func (e *ConversionError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("failed to convert input %d (%s): %v", e.Index+1, describeSource(e.Source), e.Err)
	}
	return fmt.Sprintf("failed to convert %s: %v", describeSource(e.Source), e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// IntegrityError means the encoder reported success but no file was written
type IntegrityError struct {
	Index int
	Path  string
}

func (e *IntegrityError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("failed to create PNG file for input %d", e.Index+1)
	}
	return "failed to create PNG file"
}

// describeSource names a source without echoing inline markup
func describeSource(src string) string {
	if fileExists(src) {
		return src
	}
	return "inline SVG"
}
