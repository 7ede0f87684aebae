package scraping

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBarcode = "4009900382250"

var thumbnailBytes = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F'}

func productPage(thumbnailSrc string) string {
	return fmt.Sprintf(`<html><body>
<div id="product">
  <div class="product-details">
    <h1>EAN %s</h1>
    <h4>Winterfresh Original Gum</h4>
    <div class="product-text-label">Manufacturer: <span>Wrigley</span></div>
  </div>
</div>
<div id="barcode-image"><svg xmlns="http://www.w3.org/2000/svg"><rect width="2" height="50"/></svg></div>
<div class="product-meta-data">
  <div class="product-text-label">Description: <span>Sugar-free chewing gum, 35 g.</span></div>
</div>
<div id="largeProductImage"><img src="%s"></div>
<div class="footer"></div>
</body></html>`, testBarcode, thumbnailSrc)
}

func TestProductName(t *testing.T) {
	parser, err := NewProductHTMLParser(productPage(""), testBarcode)
	require.NoError(t, err)

	name, err := parser.ProductName()
	require.NoError(t, err)
	assert.Equal(t, "Winterfresh Original Gum", name)
}

func TestProductNameMissingTitle(t *testing.T) {
	parser, err := NewProductHTMLParser("<html><body><div class='footer'></div></body></html>", testBarcode)
	require.NoError(t, err)

	_, err = parser.ProductName()
	assert.ErrorIs(t, err, ErrTagNotFound)
}

func TestBarcodeImage(t *testing.T) {
	parser, err := NewProductHTMLParser(productPage(""), testBarcode)
	require.NoError(t, err)

	res := parser.BarcodeImage()
	require.NotNil(t, res)
	assert.True(t, strings.HasPrefix(string(res), "<svg"))
}

func TestBarcodeImageAbsent(t *testing.T) {
	page := strings.Replace(productPage(""), `<div id="barcode-image">`, `<div id="no-barcode-image">`, 1)
	parser, err := NewProductHTMLParser(page, testBarcode)
	require.NoError(t, err)

	assert.Nil(t, parser.BarcodeImage())
}

func TestProductDescription(t *testing.T) {
	parser, err := NewProductHTMLParser(productPage(""), testBarcode)
	require.NoError(t, err)

	res := parser.ProductDescription()
	require.NotNil(t, res)
	assert.Equal(t, "Sugar-free chewing gum, 35 g.", *res)
}

func TestProductManufacturer(t *testing.T) {
	parser, err := NewProductHTMLParser(productPage(""), testBarcode)
	require.NoError(t, err)

	res := parser.ProductManufacturer()
	require.NotNil(t, res)
	assert.Equal(t, "Wrigley", *res)
}

func TestProductThumbnail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(thumbnailBytes)
	}))
	defer server.Close()

	parser, err := NewProductHTMLParser(productPage(server.URL+"/thumb.jpg"), testBarcode)
	require.NoError(t, err)

	res := parser.ProductThumbnail(context.Background())
	assert.Equal(t, thumbnailBytes, res)
}

func TestProductThumbnailDownloadFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	parser, err := NewProductHTMLParser(productPage(server.URL+"/thumb.jpg"), testBarcode)
	require.NoError(t, err)

	assert.Nil(t, parser.ProductThumbnail(context.Background()))
}

func TestCollect(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(thumbnailBytes)
	}))
	defer server.Close()

	parser, err := NewProductHTMLParser(productPage(server.URL+"/thumb.jpg"), testBarcode)
	require.NoError(t, err)

	parsed, err := parser.Collect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, testBarcode, parsed.Barcode)
	assert.Equal(t, "Winterfresh Original Gum", parsed.Name)
	require.NotNil(t, parsed.Description)
	require.NotNil(t, parsed.Manufacturer)
	assert.Equal(t, thumbnailBytes, parsed.Thumbnail)
	assert.NotNil(t, parsed.BarcodeImage)
}

func TestCollectDegradesOptionalFields(t *testing.T) {
	page := `<html><body>
<div id="product"><div class="product-details"><h4>Bare Product</h4></div></div>
<div class="footer"></div>
</body></html>`

	parser, err := NewProductHTMLParser(page, testBarcode)
	require.NoError(t, err)

	parsed, err := parser.Collect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bare Product", parsed.Name)
	assert.Nil(t, parsed.Description)
	assert.Nil(t, parsed.Manufacturer)
	assert.Nil(t, parsed.Thumbnail)
	assert.Nil(t, parsed.BarcodeImage)
}

func TestCollectMissingTitleFails(t *testing.T) {
	parser, err := NewProductHTMLParser("<html><body><div class='footer'></div></body></html>", testBarcode)
	require.NoError(t, err)

	_, err = parser.Collect(context.Background())
	assert.ErrorIs(t, err, ErrTagNotFound)
}
