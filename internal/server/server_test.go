package server

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/poster-studio/internal/poster"
	"github.com/jonathan/poster-studio/internal/server/ratelimit"
)

// fakeRasterizer returns canned bytes so export handlers can be tested
// without a browser
type fakeRasterizer struct {
	pdf     []byte
	png     []byte
	failErr error

	lastHTML  string
	lastWidth int
}

func (f *fakeRasterizer) PDF(_ context.Context, html string) ([]byte, error) {
	f.lastHTML = html
	if f.failErr != nil {
		return nil, f.failErr
	}
	return f.pdf, nil
}

func (f *fakeRasterizer) PNG(_ context.Context, html string, widthPx int) ([]byte, error) {
	f.lastHTML = html
	f.lastWidth = widthPx
	if f.failErr != nil {
		return nil, f.failErr
	}
	return f.png, nil
}

var errBrowserDown = errors.New("browser unavailable")

// newTestServer builds a server with no database connection; tests exercise
// only the handlers that do not reach storage, plus the pre-storage error
// paths of those that do.
func newTestServer() (*Server, *fakeRasterizer) {
	raster := &fakeRasterizer{
		pdf: []byte("%PDF-fake"),
		png: []byte("\x89PNG-fake"),
	}
	s := &Server{
		rasterizer:      raster,
		rateLimiter:     ratelimit.NewLimiter(ratelimit.DefaultConfig()),
		validate:        validator.New(),
		defaultTemplate: poster.DefaultTemplateID,
	}
	return s, raster
}
