package dataurl

import (
	"fmt"
	"strings"

	"kgeyst.com/whiskers/pkg/whiskers/domain"
)

const scheme = "data:"

type filter struct{}

// NewFilter strips the "data:image/png;base64," prefix which browsers and file readers put in front of the payload.
func NewFilter() domain.InputFilter {
	return &filter{}
}

func (f *filter) Apply(input string, nextFilterFunc domain.NextFilterFunc) (string, error) {
	if !strings.HasPrefix(strings.ToLower(input), scheme) {
		return nextFilterFunc(input)
	}
	commaIndex := strings.IndexByte(input, ',')
	if commaIndex == -1 {
		return "", fmt.Errorf("%w: data URL without payload", domain.ErrDecodeImage)
	}
	metadata := strings.ToLower(input[len(scheme):commaIndex])
	if !strings.HasSuffix(metadata, ";base64") {
		return "", fmt.Errorf("%w: only base64 data URLs are supported", domain.ErrDecodeImage)
	}
	return nextFilterFunc(input[commaIndex+1:])
}
