package raster

import (
	"context"
	"fmt"
	"image"
	"sync"

	"github.com/playwright-community/playwright-go"
)

// Playwright renders SVG documents in a headless Chromium, which gives the
// most complete SVG support (text, filters, CSS) at the cost of a browser
// download on first use.
type Playwright struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	mu      sync.Mutex
}

// NewPlaywright creates a new Playwright backend
func NewPlaywright() *Playwright {
	return &Playwright{}
}

func (r *Playwright) Name() string {
	return string(TypePlaywright)
}

// IsAvailable returns true, the browser is installed lazily on first use
func (r *Playwright) IsAvailable() bool {
	return true
}

func (r *Playwright) launch() error {
	if r.browser != nil {
		return nil
	}

	if err := playwright.Install(&playwright.RunOptions{
		Browsers: []string{"chromium"},
	}); err != nil {
		return NewBackendError(r.Name(), "install browsers", err)
	}

	pw, err := playwright.Run()
	if err != nil {
		return NewBackendError(r.Name(), "start playwright", err)
	}
	r.pw = pw

	browser, err := r.pw.Chromium.Launch()
	if err != nil {
		return NewBackendError(r.Name(), "launch browser", err)
	}
	r.browser = browser
	return nil
}

func (r *Playwright) Rasterize(ctx context.Context, svg []byte, size image.Point) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, NewBackendError(r.Name(), "rasterize", err)
	}
	if err := checkTarget(r.Name(), svg, size); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.launch(); err != nil {
		return nil, err
	}

	page, err := r.browser.NewPage()
	if err != nil {
		return nil, NewBackendError(r.Name(), "create page", err)
	}
	defer page.Close()

	sizing := ""
	if size.X > 0 && size.Y > 0 {
		sizing = fmt.Sprintf("width: %dpx; height: %dpx;", size.X, size.Y)
		if err := page.SetViewportSize(size.X, size.Y); err != nil {
			return nil, NewBackendError(r.Name(), "set viewport", err)
		}
	}

	htmlContent := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <style>
        html, body { margin: 0; padding: 0; background: transparent; }
        svg { display: block; %s }
    </style>
</head>
<body>
    %s
</body>
</html>`, sizing, string(svg))

	if err := page.SetContent(htmlContent); err != nil {
		return nil, NewBackendError(r.Name(), "set content", err)
	}

	out, err := page.Locator("svg").First().Screenshot(playwright.LocatorScreenshotOptions{
		Type:           playwright.ScreenshotTypePng,
		OmitBackground: playwright.Bool(true),
	})
	if err != nil {
		return nil, NewBackendError(r.Name(), "screenshot", err)
	}

	return decodePNG(r.Name(), out)
}

// Close closes the browser and Playwright instance
func (r *Playwright) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.browser != nil {
		if err := r.browser.Close(); err != nil {
			return err
		}
		r.browser = nil
	}

	if r.pw != nil {
		if err := r.pw.Stop(); err != nil {
			return err
		}
		r.pw = nil
	}

	return nil
}
