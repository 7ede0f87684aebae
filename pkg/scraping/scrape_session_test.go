package scraping

import (
	"Barcode-API/domain"
	"Barcode-API/entities"
	"Barcode-API/internal/utils"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeScrapeLogRepository struct {
	created []*entities.ScrapeLog
	err     error
}

func (f *fakeScrapeLogRepository) Create(_ context.Context, scrapeLog *entities.ScrapeLog) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, scrapeLog)
	return nil
}

func (f *fakeScrapeLogRepository) GetLatestByBarcode(_ context.Context, barcode string) (*entities.ScrapeLog, error) {
	for i := len(f.created) - 1; i >= 0; i-- {
		if f.created[i].Barcode == barcode {
			return f.created[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func testConfig() *utils.Config {
	return &utils.Config{ScrapeTimeoutSeconds: 5}
}

func TestScrapeOnUninitializedSession(t *testing.T) {
	session := NewScrapeSession(testConfig(), &fakeScrapeLogRepository{}, NewBarcodeLookupStrategy())

	_, err := session.Scrape(context.Background(), testBarcode)
	assert.ErrorIs(t, err, domain.ErrScrapeSessionNotReady)
}

func TestScrapeAfterDispose(t *testing.T) {
	session := NewScrapeSession(testConfig(), &fakeScrapeLogRepository{}, NewBarcodeLookupStrategy())

	// Dispose is safe on a session that never finished Setup and must leave
	// it unusable.
	session.Dispose()

	_, err := session.Scrape(context.Background(), testBarcode)
	assert.ErrorIs(t, err, domain.ErrScrapeSessionNotReady)
}

func TestNavigationErrorClassification(t *testing.T) {
	session := NewScrapeSession(testConfig(), &fakeScrapeLogRepository{}, NewBarcodeLookupStrategy())
	url := "https://www.barcodelookup.com/" + testBarcode

	t.Run("deadline exceeded maps to timeout", func(t *testing.T) {
		err := session.navigationError(context.DeadlineExceeded, testBarcode, url)
		assert.ErrorIs(t, err, domain.ErrNavigationTimeout)
	})

	t.Run("page load failure maps to site unreachable", func(t *testing.T) {
		err := session.navigationError(errors.New("page load error net::ERR_NAME_NOT_RESOLVED"), testBarcode, url)
		assert.ErrorIs(t, err, domain.ErrSiteUnreachable)
	})

	t.Run("caller cancellation passes through", func(t *testing.T) {
		err := session.navigationError(context.Canceled, testBarcode, url)
		assert.ErrorIs(t, err, context.Canceled)
		assert.NotErrorIs(t, err, domain.ErrSiteUnreachable)
	})
}

func TestCollectFromHTMLRecordsLog(t *testing.T) {
	repo := &fakeScrapeLogRepository{}
	session := NewScrapeSession(testConfig(), repo, NewBarcodeLookupStrategy())
	url := "https://www.barcodelookup.com/" + testBarcode
	page := productPage("")

	parsed, err := session.collectFromHTML(context.Background(), testBarcode, url, page)
	require.NoError(t, err)
	assert.Equal(t, "Winterfresh Original Gum", parsed.Name)

	require.Len(t, repo.created, 1)
	assert.Equal(t, testBarcode, repo.created[0].Barcode)
	assert.Equal(t, url, repo.created[0].URL)
	assert.Equal(t, page, repo.created[0].HTML)
}

func TestCollectFromHTMLLogWriteFailureDegrades(t *testing.T) {
	repo := &fakeScrapeLogRepository{err: errors.New("connection refused")}
	session := NewScrapeSession(testConfig(), repo, NewBarcodeLookupStrategy())

	// A broken audit log must not cost the caller an otherwise good scrape.
	parsed, err := session.collectFromHTML(context.Background(), testBarcode, "", productPage(""))
	require.NoError(t, err)
	assert.Equal(t, "Winterfresh Original Gum", parsed.Name)
	assert.Empty(t, repo.created)
}

func TestCollectFromHTMLWithoutProduct(t *testing.T) {
	repo := &fakeScrapeLogRepository{}
	session := NewScrapeSession(testConfig(), repo, NewBarcodeLookupStrategy())
	page := "<html><body><div class='footer'></div></body></html>"

	_, err := session.collectFromHTML(context.Background(), testBarcode, "", page)
	assert.ErrorIs(t, err, domain.ErrProductNotFoundOnline)

	// The raw HTML is audit-logged even when no product is on the page.
	assert.Len(t, repo.created, 1)
}

func TestBarcodeLookupStrategyTargetURL(t *testing.T) {
	strategy := NewBarcodeLookupStrategy()
	assert.Equal(t, "https://www.barcodelookup.com/4009900382250", strategy.TargetURL(testBarcode))
}

func TestGetLatestLog(t *testing.T) {
	repo := &fakeScrapeLogRepository{}
	require.NoError(t, repo.Create(context.Background(), &entities.ScrapeLog{
		Barcode: testBarcode,
		URL:     "https://www.barcodelookup.com/" + testBarcode,
		HTML:    "<html></html>",
	}))

	service := NewScrapeService(testConfig(), repo, NewBarcodeLookupStrategy())

	res, err := service.GetLatestLog(context.Background(), testBarcode)
	require.NoError(t, err)
	assert.Equal(t, testBarcode, res.Barcode)
	assert.Equal(t, "<html></html>", res.HTML)
}

func TestGetLatestLogNotFound(t *testing.T) {
	service := NewScrapeService(testConfig(), &fakeScrapeLogRepository{}, NewBarcodeLookupStrategy())

	_, err := service.GetLatestLog(context.Background(), testBarcode)
	assert.ErrorIs(t, err, domain.ErrScrapeLogNotFound)
}
