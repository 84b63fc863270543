package common

import (
	"fmt"
	"io"
	"net/http"
)

// ReadAllFromURL reads all content from the URL together with its content type. Content larger than `maxSize` bytes
// is rejected, so that a page which streams output infinitely can't crash us with an OOM.
func ReadAllFromURL(client *http.Client, url string, maxSize int64) ([]byte, string, error) {
	if client == nil {
		client = http.DefaultClient
	}
	res, err := client.Get(url)
	if err != nil {
		return nil, "", err
	}
	defer func() {
		_ = res.Body.Close()
	}()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, "", fmt.Errorf("GET %s: unexpected status %d", url, res.StatusCode)
	}
	content, err := io.ReadAll(io.LimitReader(res.Body, maxSize+1))
	if err != nil {
		return nil, "", err
	}
	if int64(len(content)) > maxSize {
		return nil, "", fmt.Errorf("GET %s: content exceeds %d bytes", url, maxSize)
	}
	return content, res.Header.Get("Content-Type"), nil
}
