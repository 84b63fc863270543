package web

import (
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"net"
	"net/http"
	"strings"
	"syscall"
	"time"

	"kgeyst.com/whiskers/pkg/common"
	"kgeyst.com/whiskers/pkg/whiskers/domain"
)

const defaultDownloadTimeout = 30 * time.Second

var ErrAddressNotAllowed = errors.New("address not allowed")

type URLFinder interface {
	FindURLs(str string) []string
}

type ImageExtractor interface {
	// ExtractImageURL returns the URL of the main image on an HTML page.
	ExtractImageURL(pageURL string, page []byte) (string, error)
}

type filter struct {
	urlFinder       URLFinder
	imageExtractor  ImageExtractor
	httpClient      *http.Client
	maxDownloadSize int64
	logger          common.Logger
}

// NewFilter downloads the image if the input contains a URL. A URL which points to a web page (rather than to an image)
// is resolved to the main image on that page.
func NewFilter(
	urlFinder URLFinder,
	imageExtractor ImageExtractor,
	config *common.Config,
	logger common.Logger,
) domain.InputFilter {
	return newFilter(urlFinder, imageExtractor, config, logger, &http.Client{Timeout: defaultDownloadTimeout})
}

// NewPublicFilter is like NewFilter, but refuses to connect to loopback, private, link-local and other non-public
// addresses (redirects included). Use it when the input comes from the network.
func NewPublicFilter(
	urlFinder URLFinder,
	imageExtractor ImageExtractor,
	config *common.Config,
	logger common.Logger,
) domain.InputFilter {
	dialer := &net.Dialer{
		Timeout: defaultDownloadTimeout,
		Control: denyNonPublicAddress,
	}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	// A proxy would be dialed instead of the target, which defeats the check.
	transport.Proxy = nil
	transport.DialContext = dialer.DialContext
	return newFilter(urlFinder, imageExtractor, config, logger, &http.Client{
		Timeout:   defaultDownloadTimeout,
		Transport: transport,
	})
}

func newFilter(
	urlFinder URLFinder,
	imageExtractor ImageExtractor,
	config *common.Config,
	logger common.Logger,
	httpClient *http.Client,
) *filter {
	return &filter{
		urlFinder:       urlFinder,
		imageExtractor:  imageExtractor,
		httpClient:      httpClient,
		maxDownloadSize: int64(config.GetIntOrDefault(domain.ConfigKeyMaxDownloadSize, domain.DefaultMaxDownloadSize)),
		logger:          logger,
	}
}

// Called with the already resolved address, so DNS tricks don't get around it.
func denyNonPublicAddress(network, address string, _ syscall.RawConn) error {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return err
	}
	ip := net.ParseIP(host)
	if ip == nil || !isPublicIP(ip) {
		return fmt.Errorf("%w: %s", ErrAddressNotAllowed, host)
	}
	return nil
}

func isPublicIP(ip net.IP) bool {
	return !(ip.IsLoopback() ||
		ip.IsPrivate() ||
		ip.IsUnspecified() ||
		ip.IsLinkLocalUnicast() ||
		ip.IsLinkLocalMulticast() ||
		ip.IsInterfaceLocalMulticast() ||
		ip.IsMulticast())
}

func (f *filter) Apply(input string, nextFilterFunc domain.NextFilterFunc) (string, error) {
	urls := f.urlFinder.FindURLs(input)
	if len(urls) == 0 {
		return nextFilterFunc(input)
	}
	url := urls[0] // one image per request
	image, err := f.loadImage(url)
	if err != nil {
		f.logger.Log(fmt.Sprintf("failed to load image from %s: %s", url, err))
		return "", fmt.Errorf("failed to load image from URL %s: %w", url, err)
	}
	return nextFilterFunc(base64.StdEncoding.EncodeToString(image))
}

func (f *filter) loadImage(url string) ([]byte, error) {
	content, contentType, err := common.ReadAllFromURL(f.httpClient, url, f.maxDownloadSize)
	if err != nil {
		return nil, err
	}
	mediaType := parseMediaType(contentType)
	if isImage(url, mediaType) {
		return content, nil
	}
	if mediaType != "text/html" && mediaType != "application/xhtml+xml" {
		return nil, fmt.Errorf("unsupported content type %q", contentType)
	}
	imageURL, err := f.imageExtractor.ExtractImageURL(url, content)
	if err != nil {
		return nil, err
	}
	f.logger.Log(fmt.Sprintf("found image %s on page %s", imageURL, url))
	content, contentType, err = common.ReadAllFromURL(f.httpClient, imageURL, f.maxDownloadSize)
	if err != nil {
		return nil, err
	}
	if !isImage(imageURL, parseMediaType(contentType)) {
		return nil, fmt.Errorf("%s is not an image (content type %q)", imageURL, contentType)
	}
	return content, nil
}

func parseMediaType(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return mediaType
}

// Some servers (and most object storages) serve images as application/octet-stream, so the extension is
// taken into account too.
func isImage(url, mediaType string) bool {
	if strings.HasPrefix(mediaType, "image/") {
		return true
	}
	return common.IsImageFormat(url) && (mediaType == "" || mediaType == "application/octet-stream" || mediaType == "binary/octet-stream")
}
