package web

import (
	"strings"

	"github.com/mvdan/xurls"
)

type URLFinder struct{}

func NewURLFinder() *URLFinder {
	return &URLFinder{}
}

// FindURLs finds web addresses ("http://...", "https://...") in free-form text. File paths and bare words are never
// mistaken for URLs.
func (u *URLFinder) FindURLs(str string) []string {
	var result []string
	for _, found := range xurls.Strict.FindAllString(str, -1) {
		lower := strings.ToLower(found)
		if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
			result = append(result, found)
		}
	}
	return result
}
