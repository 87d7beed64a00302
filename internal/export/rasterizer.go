package export

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// A4 physical dimensions for the PDF printer, in inches
const (
	a4WidthInches  = 8.27
	a4HeightInches = 11.69
)

// DefaultViewportWidth is the on-screen A4 width at 96 DPI. PNG exports
// default to this so screen and print output match.
const DefaultViewportWidth = 794

// a4AspectHeight derives the viewport height matching A4 at the given width
func a4AspectHeight(width int) int {
	return width * 297 / 210
}

// Rasterizer drives a headless Chrome instance to convert poster documents
// into binary artifacts. The rendering engine itself stays pure; all I/O and
// timeout policy lives here, on the caller side of that contract.
type Rasterizer struct {
	chromePath string
	timeout    time.Duration
}

// NewRasterizer creates a rasterizer. chromePath may be empty to use the
// browser found on PATH; CHROME_PATH in the environment overrides both.
func NewRasterizer(chromePath string, timeout time.Duration) *Rasterizer {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Rasterizer{chromePath: chromePath, timeout: timeout}
}

// PDF renders the document to a single-page A4 PDF with backgrounds preserved
func (r *Rasterizer) PDF(ctx context.Context, html string) ([]byte, error) {
	var buf []byte
	action := chromedp.ActionFunc(func(ctx context.Context) error {
		var err error
		buf, _, err = page.PrintToPDF().
			WithPrintBackground(true).
			WithPaperWidth(a4WidthInches).
			WithPaperHeight(a4HeightInches).
			WithMarginTop(0).
			WithMarginBottom(0).
			WithMarginLeft(0).
			WithMarginRight(0).
			WithPreferCSSPageSize(true).
			Do(ctx)
		return err
	})

	if err := r.run(ctx, html, 0, action); err != nil {
		return nil, &RasterizeError{Format: "pdf", Message: "print to PDF failed", Cause: err}
	}
	return buf, nil
}

// PNG renders the document to a full-page screenshot at the given viewport
// width; widthPx <= 0 uses DefaultViewportWidth. Height follows the A4 aspect
// ratio so the capture covers exactly one page.
func (r *Rasterizer) PNG(ctx context.Context, html string, widthPx int) ([]byte, error) {
	if widthPx <= 0 {
		widthPx = DefaultViewportWidth
	}

	var buf []byte
	action := chromedp.FullScreenshot(&buf, 100)

	if err := r.run(ctx, html, widthPx, action); err != nil {
		return nil, &RasterizeError{Format: "png", Message: "screenshot capture failed", Cause: err}
	}
	return buf, nil
}

// run boots a browser, navigates to the document via a temp file and executes
// the capture action. A viewport width of 0 leaves the default emulation.
func (r *Rasterizer) run(ctx context.Context, html string, viewportWidth int, capture chromedp.Action) error {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p := os.Getenv("CHROME_PATH"); p != "" {
		opts = append(opts, chromedp.ExecPath(p))
	} else if r.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.chromePath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, r.timeout)
	defer cancelRun()

	// The document is self-contained, so a plain file:// navigation needs no
	// extra assets next to it.
	tmpDir, err := os.MkdirTemp("", "poster-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "poster.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return err
	}

	actions := []chromedp.Action{
		chromedp.Navigate("file://" + htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
	}
	if viewportWidth > 0 {
		actions = append(actions, chromedp.EmulateViewport(int64(viewportWidth), int64(a4AspectHeight(viewportWidth))))
	}
	actions = append(actions, capture)

	return chromedp.Run(runCtx, actions...)
}
