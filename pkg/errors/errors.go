package errors

import (
	"errors"
	"fmt"
)

// ExtractionError means both the direct and the rendered fetch strategy
// failed to produce any job description text for a URL. Fatal for the run.
type ExtractionError struct {
	URL string
	Err error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to extract job description from %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("failed to extract job description from %s", e.URL)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// IsExtraction reports whether err is (or wraps) an ExtractionError.
func IsExtraction(err error) bool {
	var ee *ExtractionError
	return errors.As(err, &ee)
}

// DocumentWriteError means the resume writer could not produce the updated
// document. Fatal for the run.
type DocumentWriteError struct {
	Path string
	Err  error
}

func (e *DocumentWriteError) Error() string {
	return fmt.Sprintf("failed to update resume %s: %v", e.Path, e.Err)
}

func (e *DocumentWriteError) Unwrap() error {
	return e.Err
}
