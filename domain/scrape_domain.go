package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetScrapeLog = "scrape log retrieved successfully"

	MessageFailedGetScrapeLog      = "failed to retrieve scrape log"
	MessageFailedScrapeLogNotFound = "no scrape recorded for this barcode"

	// ErrScrapeSessionNotReady is returned when a scrape is attempted on a
	// session that was never set up or has already been disposed.
	ErrScrapeSessionNotReady = errors.New("scrape session not initialized")

	// ErrNavigationTimeout means the lookup site never reached its
	// fully-loaded marker within the configured deadline.
	ErrNavigationTimeout = errors.New("navigation to lookup site timed out")

	// ErrSiteUnreachable means navigation failed before the deadline, e.g.
	// DNS resolution or the TCP connection to the lookup site failed.
	ErrSiteUnreachable = errors.New("lookup site unreachable")

	// ErrProductNotFoundOnline means the page loaded but did not contain a
	// recognizable product.
	ErrProductNotFoundOnline = errors.New("product not found online")

	ErrScrapeLogNotFound = errors.New("scrape log not found")
)

type ScrapeLogResponse struct {
	ID        uint      `json:"id"`
	Barcode   string    `json:"barcode"`
	URL       string    `json:"url"`
	HTML      string    `json:"html"`
	CreatedAt time.Time `json:"created_at"`
}
