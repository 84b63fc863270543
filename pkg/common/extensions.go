package common

import (
	"path"
	"slices"
	"strings"
)

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp"}

// IsImageFormat tells by the extension if `url` (or a file path) points to an image. Query strings and fragments
// are ignored, the comparison is case-insensitive.
func IsImageFormat(url string) bool {
	if index := strings.IndexAny(url, "?#"); index != -1 {
		url = url[:index]
	}
	return slices.Contains(imageExtensions, strings.ToLower(path.Ext(url)))
}
