package file

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"kgeyst.com/whiskers/pkg/common"
	"kgeyst.com/whiskers/pkg/whiskers/domain"
)

type filter struct {
	maxFileSize int64
}

// NewFilter loads the image from disk if the input is a path to an existing file. Paths may be quoted and may start
// with "~/".
func NewFilter(config *common.Config) domain.InputFilter {
	return &filter{
		maxFileSize: int64(config.GetIntOrDefault(domain.ConfigKeyMaxDownloadSize, domain.DefaultMaxDownloadSize)),
	}
}

func (f *filter) Apply(input string, nextFilterFunc domain.NextFilterFunc) (string, error) {
	path := expandHome(common.TrimQuotes(input))
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nextFilterFunc(input)
	}
	if info.Size() > f.maxFileSize {
		return "", fmt.Errorf("file %s is too large (%d bytes, at most %d allowed)", path, info.Size(), f.maxFileSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return nextFilterFunc(base64.StdEncoding.EncodeToString(data))
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
