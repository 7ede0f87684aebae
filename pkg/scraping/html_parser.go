package scraping

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"github.com/gofiber/fiber/v2/log"
	"golang.org/x/net/html"
)

// CSS selectors for the lookup site's product page layout.
const (
	SelectorProduct        = "#product"
	SelectorProductDetails = SelectorProduct + " .product-details"
	SelectorProductTitle   = SelectorProductDetails + " > h4"
	SelectorTextLabel      = "div.product-text-label"
	SelectorBarcodeImage   = "#barcode-image svg"
	SelectorProductMeta    = ".product-meta-data"
	SelectorFooter         = ".footer"
	SelectorThumbnail      = "div#largeProductImage img"
)

// ErrTagNotFound marks a page that is missing a required element. A page
// without a recognizable product title is not considered a product page.
var ErrTagNotFound = errors.New("required tag not found")

// ParsedProduct is the parser output consumed by the product service. It is
// transient and never persisted directly.
type ParsedProduct struct {
	Barcode      string
	Name         string
	Description  *string
	Manufacturer *string
	Thumbnail    []byte
	BarcodeImage []byte
}

// ProductHTMLParser extracts structured product fields from one rendered
// product page. The external layout is not contractually stable, so every
// optional field degrades to nil with a warning; only the name is fail-fast.
type ProductHTMLParser struct {
	doc     *goquery.Document
	barcode string
	client  *resty.Client
}

func NewProductHTMLParser(htmlText, barcode string) (*ProductHTMLParser, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlText))
	if err != nil {
		return nil, err
	}
	return &ProductHTMLParser{
		doc:     doc,
		barcode: barcode,
		client:  resty.New(),
	}, nil
}

// ProductName returns the product title. This is the one mandatory field.
func (p *ProductHTMLParser) ProductName() (string, error) {
	element := p.doc.Find(SelectorProductTitle).First()
	if element.Length() == 0 {
		return "", fmt.Errorf("%w: product title for barcode %s", ErrTagNotFound, p.barcode)
	}
	return strings.TrimSpace(element.Text()), nil
}

// BarcodeImage returns the embedded vector barcode markup, or nil when the
// page carries none.
func (p *ProductHTMLParser) BarcodeImage() []byte {
	element := p.doc.Find(SelectorBarcodeImage).First()
	if element.Length() == 0 {
		log.Warnf("could not find barcode image for barcode %s", p.barcode)
		return nil
	}

	markup, err := goquery.OuterHtml(element)
	if err != nil {
		log.Warnf("could not render barcode image markup for barcode %s: %v", p.barcode, err)
		return nil
	}
	return []byte(markup)
}

// metaData parses the "Key: <span>value</span>" label rows under selector
// into a lowercase-keyed map. Returns nil when the block is absent.
func (p *ProductHTMLParser) metaData(selector string) map[string]string {
	collection := p.doc.Find(selector).First()
	if collection.Length() == 0 {
		log.Warnf("could not find product metadata for barcode %s", p.barcode)
		return nil
	}

	data := map[string]string{}
	collection.Find(SelectorTextLabel).Each(func(_ int, entry *goquery.Selection) {
		value := entry.Find("span").First()
		if value.Length() == 0 {
			return
		}

		// The label text sits in the sibling node right before the span.
		keyNode := value.Nodes[0].PrevSibling
		if keyNode == nil {
			return
		}

		key := strings.ToLower(strings.TrimSpace(strings.SplitN(nodeText(keyNode), ":", 2)[0]))
		if key == "" {
			return
		}
		data[key] = strings.TrimSpace(value.Text())
	})

	return data
}

func (p *ProductHTMLParser) ProductDescription() *string {
	tags := p.metaData(SelectorProductMeta)
	if tags == nil {
		log.Warnf("could not find product description for barcode %s", p.barcode)
		return nil
	}
	return lookup(tags, "description")
}

func (p *ProductHTMLParser) ProductManufacturer() *string {
	tags := p.metaData(SelectorProductDetails)
	if tags == nil {
		log.Warnf("could not find product manufacturer for barcode %s", p.barcode)
		return nil
	}
	return lookup(tags, "manufacturer")
}

// ProductThumbnail downloads the product image referenced by the page. This
// is the one network call in otherwise pure parsing; any failure degrades to
// nil.
func (p *ProductHTMLParser) ProductThumbnail(ctx context.Context) []byte {
	element := p.doc.Find(SelectorThumbnail).First()
	if element.Length() == 0 {
		log.Warnf("could not find product thumbnail for barcode %s", p.barcode)
		return nil
	}

	src, ok := element.Attr("src")
	if !ok || src == "" {
		log.Warnf("could not find src attribute for product thumbnail for barcode %s", p.barcode)
		return nil
	}

	resp, err := p.client.R().SetContext(ctx).Get(src)
	if err != nil {
		log.Warnf("could not download product thumbnail for barcode %s: %v", p.barcode, err)
		return nil
	}
	if !resp.IsSuccess() {
		log.Warnf("could not download product thumbnail for barcode %s, status code %d", p.barcode, resp.StatusCode())
		return nil
	}
	return resp.Body()
}

// Collect assembles the full ParsedProduct. It fails only when the required
// name is missing; every optional field degrades to nil.
func (p *ProductHTMLParser) Collect(ctx context.Context) (*ParsedProduct, error) {
	name, err := p.ProductName()
	if err != nil {
		return nil, err
	}

	return &ParsedProduct{
		Barcode:      p.barcode,
		Name:         name,
		Description:  p.ProductDescription(),
		Manufacturer: p.ProductManufacturer(),
		Thumbnail:    p.ProductThumbnail(ctx),
		BarcodeImage: p.BarcodeImage(),
	}, nil
}

func lookup(tags map[string]string, key string) *string {
	if v, ok := tags[key]; ok {
		return &v
	}
	return nil
}

func nodeText(node *html.Node) string {
	var buffer bytes.Buffer
	textRecursive(node, &buffer)
	return buffer.String()
}

func textRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		textRecursive(child, buffer)
	}
}
