package scraping

import (
	"context"
	"fmt"

	"github.com/chromedp/chromedp"
)

const barcodeLookupURLFormat = "https://www.barcodelookup.com/%s"

// ScrapeStrategy describes one lookup site: how to address it, how to drive
// an attached browser tab to a fully rendered document, and which parser
// understands the result. Only the barcodelookup.com strategy exists today;
// the boundary stays so further sources can be added without touching the
// session.
type ScrapeStrategy interface {
	Name() string
	TargetURL(barcode string) string
	// Scrape drives the already-navigated tab bound to ctx until the page is
	// fully loaded and returns the rendered HTML.
	Scrape(ctx context.Context) (string, error)
	NewParser(html, barcode string) (*ProductHTMLParser, error)
}

type BarcodeLookupStrategy struct{}

func NewBarcodeLookupStrategy() BarcodeLookupStrategy {
	return BarcodeLookupStrategy{}
}

func (BarcodeLookupStrategy) Name() string {
	return "barcodelookup"
}

func (BarcodeLookupStrategy) TargetURL(barcode string) string {
	return fmt.Sprintf(barcodeLookupURLFormat, barcode)
}

// Scrape waits for the footer, the last element rendered on the page, before
// capturing the document.
func (BarcodeLookupStrategy) Scrape(ctx context.Context) (string, error) {
	var html string
	err := chromedp.Run(ctx,
		chromedp.WaitReady(SelectorFooter, chromedp.ByQuery),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	return html, err
}

func (BarcodeLookupStrategy) NewParser(html, barcode string) (*ProductHTMLParser, error) {
	return NewProductHTMLParser(html, barcode)
}
