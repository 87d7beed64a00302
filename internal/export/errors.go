// Package export rasterizes rendered poster documents to PDF and PNG
// artifacts via a headless browser.
package export

import "fmt"

// RasterizeError represents a failure in the headless-browser export path
type RasterizeError struct {
	Format  string
	Message string
	Cause   error
}

func (e *RasterizeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("rasterize %s: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("rasterize %s: %s", e.Format, e.Message)
}

func (e *RasterizeError) Unwrap() error {
	return e.Cause
}
