package export

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestA4AspectHeight(t *testing.T) {
	// 794px wide at A4 ratio is 1123px tall (210mm x 297mm)
	assert.Equal(t, 1123, a4AspectHeight(DefaultViewportWidth))
	assert.Equal(t, 297, a4AspectHeight(210))
}

func TestNewRasterizer_DefaultTimeout(t *testing.T) {
	r := NewRasterizer("", 0)
	assert.Equal(t, 60*time.Second, r.timeout)

	r = NewRasterizer("/usr/bin/chromium", 5*time.Second)
	assert.Equal(t, 5*time.Second, r.timeout)
	assert.Equal(t, "/usr/bin/chromium", r.chromePath)
}

func TestRasterizeError_Unwrap(t *testing.T) {
	cause := errors.New("browser exited")
	err := &RasterizeError{Format: "pdf", Message: "print to PDF failed", Cause: cause}

	assert.Contains(t, err.Error(), "pdf")
	assert.Contains(t, err.Error(), "browser exited")
	assert.ErrorIs(t, err, cause)
}
