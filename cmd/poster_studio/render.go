package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/poster-studio/internal/export"
	"github.com/jonathan/poster-studio/internal/poster"
	"github.com/jonathan/poster-studio/internal/types"
)

var (
	renderPostingPath string
	renderStylePath   string
	renderTemplateID  string
	renderOutDir      string
	renderPDF         bool
	renderPNG         bool
	renderWidth       int
	renderChromePath  string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a poster to HTML, PDF or PNG",
	Long: `Render a job posting JSON file through a poster template.
The HTML document is always written; --pdf and --png additionally rasterize
it with a headless browser.`,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderPostingPath, "posting", "", "Path to posting JSON file (required)")
	renderCmd.Flags().StringVar(&renderStylePath, "style", "", "Path to style JSON file")
	renderCmd.Flags().StringVar(&renderTemplateID, "template", poster.DefaultTemplateID, "Template id")
	renderCmd.Flags().StringVar(&renderOutDir, "out", ".", "Output directory")
	renderCmd.Flags().BoolVar(&renderPDF, "pdf", false, "Also export a PDF")
	renderCmd.Flags().BoolVar(&renderPNG, "png", false, "Also export a PNG")
	renderCmd.Flags().IntVar(&renderWidth, "width", export.DefaultViewportWidth, "PNG viewport width in pixels")
	renderCmd.Flags().StringVar(&renderChromePath, "chrome", "", "Headless browser binary path")
	_ = renderCmd.MarkFlagRequired("posting")
	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, _ []string) error {
	posting, err := loadPosting(renderPostingPath)
	if err != nil {
		return err
	}

	style := &types.StyleConfig{}
	if renderStylePath != "" {
		style, err = loadStyle(renderStylePath)
		if err != nil {
			return err
		}
	}

	doc := poster.Render(renderTemplateID, posting, style)

	if err := os.MkdirAll(renderOutDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	htmlPath := filepath.Join(renderOutDir, "poster.html")
	if err := os.WriteFile(htmlPath, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("failed to write HTML: %w", err)
	}
	fmt.Printf("Wrote %s\n", htmlPath)

	if !renderPDF && !renderPNG {
		return nil
	}

	raster := export.NewRasterizer(renderChromePath, 60*time.Second)
	ctx := context.Background()

	if renderPDF {
		pdf, err := raster.PDF(ctx, doc)
		if err != nil {
			return err
		}
		pdfPath := filepath.Join(renderOutDir, "poster.pdf")
		if err := os.WriteFile(pdfPath, pdf, 0o644); err != nil {
			return fmt.Errorf("failed to write PDF: %w", err)
		}
		fmt.Printf("Wrote %s\n", pdfPath)
	}

	if renderPNG {
		png, err := raster.PNG(ctx, doc, renderWidth)
		if err != nil {
			return err
		}
		pngPath := filepath.Join(renderOutDir, "poster.png")
		if err := os.WriteFile(pngPath, png, 0o644); err != nil {
			return fmt.Errorf("failed to write PNG: %w", err)
		}
		fmt.Printf("Wrote %s\n", pngPath)
	}

	return nil
}

// loadPosting reads a posting JSON file
func loadPosting(path string) (*types.JobPosting, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read posting file %s: %w", path, err)
	}
	var posting types.JobPosting
	if err := json.Unmarshal(data, &posting); err != nil {
		return nil, fmt.Errorf("failed to parse posting JSON: %w", err)
	}
	return &posting, nil
}

// loadStyle reads a style JSON file
func loadStyle(path string) (*types.StyleConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read style file %s: %w", path, err)
	}
	var style types.StyleConfig
	if err := json.Unmarshal(data, &style); err != nil {
		return nil, fmt.Errorf("failed to parse style JSON: %w", err)
	}
	return &style, nil
}
