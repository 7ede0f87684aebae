package scraping

import (
	"Barcode-API/domain"
	"Barcode-API/entities"
	"Barcode-API/internal/utils"
	"context"
	"errors"
	"fmt"

	"github.com/chromedp/chromedp"
	"github.com/gofiber/fiber/v2/log"
)

// ScrapeSession owns one headless browser lifecycle. It moves from
// uninitialized to ready via Setup and to closed via Dispose; Scrape is only
// legal in between. Exactly one session is live per in-flight scrape and it
// is never shared across requests.
type ScrapeSession struct {
	cfg        *utils.Config
	scrapeLogs ScrapeLogRepository
	strategy   ScrapeStrategy

	allocCancel context.CancelFunc
	tabCancel   context.CancelFunc
	tab         context.Context
}

func NewScrapeSession(cfg *utils.Config, scrapeLogs ScrapeLogRepository, strategy ScrapeStrategy) *ScrapeSession {
	return &ScrapeSession{
		cfg:        cfg,
		scrapeLogs: scrapeLogs,
		strategy:   strategy,
	}
}

// Setup launches the browser process and opens one tab.
func (s *ScrapeSession) Setup(ctx context.Context) error {
	log.Info("launching new browser")

	opts := append(chromedp.DefaultExecAllocatorOptions[:], chromedp.NoSandbox)
	if s.cfg.BrowserPath != "" {
		opts = append(opts, chromedp.ExecPath(s.cfg.BrowserPath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	tab, tabCancel := chromedp.NewContext(allocCtx)

	// An empty run forces the browser process to start now, so launch
	// failures surface here instead of inside the first navigation.
	if err := chromedp.Run(tab); err != nil {
		tabCancel()
		allocCancel()
		return err
	}

	s.allocCancel = allocCancel
	s.tabCancel = tabCancel
	s.tab = tab
	return nil
}

// Dispose closes the tab and the browser and clears the session handles. It
// is safe to call on a session that never finished Setup.
func (s *ScrapeSession) Dispose() {
	log.Info("closing browser")

	if s.tabCancel != nil {
		s.tabCancel()
	}
	if s.allocCancel != nil {
		s.allocCancel()
	}
	s.tab = nil
	s.tabCancel = nil
	s.allocCancel = nil
}

// Scrape navigates to the strategy's URL for barcode, waits for the page to
// finish rendering under the configured deadline, persists the raw HTML and
// hands it to the parser.
func (s *ScrapeSession) Scrape(ctx context.Context, barcode string) (*ParsedProduct, error) {
	if s.tab == nil {
		return nil, domain.ErrScrapeSessionNotReady
	}

	url := s.strategy.TargetURL(barcode)

	navCtx, cancel := context.WithTimeout(s.tab, s.cfg.ScrapeTimeout())
	defer cancel()

	if err := chromedp.Run(navCtx, chromedp.Navigate(url)); err != nil {
		return nil, s.navigationError(err, barcode, url)
	}

	html, err := s.strategy.Scrape(navCtx)
	if err != nil {
		return nil, s.navigationError(err, barcode, url)
	}

	return s.collectFromHTML(ctx, barcode, url, html)
}

// collectFromHTML persists the captured document and parses it. The raw HTML
// is logged before the parse result is trusted, and a failed audit write must
// not lose an otherwise successful scrape, so it only warns.
func (s *ScrapeSession) collectFromHTML(ctx context.Context, barcode, url, html string) (*ParsedProduct, error) {
	scrapeLog := &entities.ScrapeLog{Barcode: barcode, URL: url, HTML: html}
	if err := s.scrapeLogs.Create(ctx, scrapeLog); err != nil {
		log.Warnf("failed to persist scrape log for barcode %s: %v", barcode, err)
	}

	parser, err := s.strategy.NewParser(html, barcode)
	if err != nil {
		return nil, err
	}

	parsed, err := parser.Collect(ctx)
	if err != nil {
		if errors.Is(err, ErrTagNotFound) {
			return nil, fmt.Errorf("%w: barcode %s", domain.ErrProductNotFoundOnline, barcode)
		}
		return nil, err
	}
	return parsed, nil
}

// navigationError keeps timeouts and unreachable hosts distinguishable in
// logs from pages that loaded without a product, so site outages don't
// masquerade as unknown barcodes. Caller cancellation passes through
// untouched.
func (s *ScrapeSession) navigationError(err error, barcode, url string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		log.Warnf("navigation timed out for barcode %s at %s", barcode, url)
		return domain.ErrNavigationTimeout
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	// DNS failures, refused connections and other page load errors fail fast
	// without hitting the deadline.
	log.Warnf("navigation failed for barcode %s at %s: %v", barcode, url, err)
	return fmt.Errorf("%w: %v", domain.ErrSiteUnreachable, err)
}

// WithSession runs fn against a ready session and guarantees disposal on
// every exit path.
func WithSession(ctx context.Context, session *ScrapeSession, fn func(*ScrapeSession) error) error {
	if err := session.Setup(ctx); err != nil {
		return err
	}
	defer session.Dispose()
	return fn(session)
}
