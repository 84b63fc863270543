package web

import (
	"bytes"
	"errors"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var errNoImageFound = errors.New("no image found on the page")

// Checked in this order; the first one with a non-empty value wins.
var imageSelectors = []struct {
	selector  string
	attribute string
}{
	{`meta[property="og:image"]`, "content"},
	{`meta[property="og:image:url"]`, "content"},
	{`meta[name="twitter:image"]`, "content"},
	{`link[rel="image_src"]`, "href"},
	{`img[src]`, "src"},
}

type ImageExtractor struct{}

func NewImageExtractor() *ImageExtractor {
	return &ImageExtractor{}
}

// ExtractImageURL finds the main image of an HTML page: social preview metadata first, then the first <img>.
// Relative URLs are resolved against `pageURL`.
func (i *ImageExtractor) ExtractImageURL(pageURL string, page []byte) (string, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return "", err
	}
	document, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return "", err
	}
	for _, candidate := range imageSelectors {
		var imageURL string
		document.Find(candidate.selector).EachWithBreak(func(_ int, selection *goquery.Selection) bool {
			imageURL = resolveImageURL(base, selection.AttrOr(candidate.attribute, ""))
			return imageURL == ""
		})
		if imageURL != "" {
			return imageURL, nil
		}
	}
	return "", errNoImageFound
}

// Inline data: images are skipped, they're usually placeholders for lazy loading.
func resolveImageURL(base *url.URL, value string) string {
	value = strings.TrimSpace(value)
	if value == "" || strings.HasPrefix(value, "data:") {
		return ""
	}
	reference, err := url.Parse(value)
	if err != nil {
		return ""
	}
	return base.ResolveReference(reference).String()
}
