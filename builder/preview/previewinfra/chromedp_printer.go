package previewinfra

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/vitaehq/vitae/pkg/errx"
)

const printTimeout = 60 * time.Second

// ChromedpPrinter prints rendered HTML to PDF through headless Chrome.
// Set CHROME_PATH to point at a specific browser binary.
type ChromedpPrinter struct{}

func NewChromedpPrinter() *ChromedpPrinter { return &ChromedpPrinter{} }

func (p *ChromedpPrinter) Print(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if path := os.Getenv("CHROME_PATH"); path != "" {
		opts = append(opts, chromedp.ExecPath(path))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, printTimeout)
	defer cancelRun()

	// Chrome refuses data: URLs for printing, so the page goes through
	// a temporary file
	tmpDir, err := os.MkdirTemp("", "vitae-print-")
	if err != nil {
		return nil, errx.Wrap(err, "failed to stage print job", errx.TypeInternal)
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, errx.Wrap(err, "failed to stage print job", errx.TypeInternal)
	}

	var pdf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4 in inches
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, errx.Wrap(err, "failed to print resume", errx.TypeInternal)
	}

	return pdf, nil
}
