package upload

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"

	"kgeyst.com/whiskers/pkg/common"
	"kgeyst.com/whiskers/pkg/whiskers/domain"
)

// Client uploads images to the inference endpoint as multipart/form-data and translates its responses.
// A single Client is safe for concurrent use: every call owns its request and response, only the underlying
// connection pool is shared.
type Client struct {
	endpointURL string
	httpClient  *http.Client
}

var _ domain.Predictor = (*Client)(nil)

// NewClient creates a client which posts to `endpointURL`. If `httpClient` is nil, a client without a timeout is used.
func NewClient(endpointURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		endpointURL: endpointURL,
		httpClient:  httpClient,
	}
}

func NewClientFromConfig(config *common.Config) *Client {
	return NewClient(
		config.GetStringOrDefault(domain.ConfigKeyEndpointURL, domain.DefaultEndpointURL),
		&http.Client{
			Timeout: config.GetDurationOrDefault(domain.ConfigKeyPredictTimeout, 0),
		},
	)
}

// Predict submits the base64-encoded image and returns the prediction formatted for display. Failures reported
// by the endpoint are returned as *domain.RemoteError; everything else wraps one of the domain.Err* kinds.
func (c *Client) Predict(image string) (string, error) {
	outcome, err := c.Submit(image)
	if err != nil {
		return "", err
	}
	if err := outcome.Err(); err != nil {
		return "", err
	}
	return outcome.Message(), nil
}

// Submit is like Predict, but returns the classified response as is. An error is returned only if no response
// could be classified.
func (c *Client) Submit(image string) (*domain.Outcome, error) {
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(image))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDecodeImage, err)
	}
	body, contentType, err := buildUploadForm(data, fileMediaType)
	if err != nil {
		return nil, err
	}
	request, err := http.NewRequest(http.MethodPost, c.endpointURL, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBuildRequest, err)
	}
	request.Header.Set("Content-Type", contentType)
	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	defer func() {
		_ = response.Body.Close()
	}()
	return classifyResponse(response)
}

func classifyResponse(response *http.Response) (*domain.Outcome, error) {
	isJSON := strings.Contains(strings.ToLower(response.Header.Get("Content-Type")), "application/json")
	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrReadBody, err)
	}
	outcome := &domain.Outcome{StatusCode: response.StatusCode}
	isSuccess := response.StatusCode >= 200 && response.StatusCode <= 299
	switch {
	case isSuccess && isJSON:
		prediction, err := parsePredictionResponse(body)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrParseResponse, err)
		}
		outcome.Kind = domain.OutcomeKindSuccess
		outcome.Result = prediction.Result
		outcome.Confidence = prediction.Confidence
	case isJSON:
		errorResponse, err := parseErrorResponse(body)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrParseResponse, err)
		}
		outcome.Kind = domain.OutcomeKindFailure
		outcome.Error = errorResponse.Error
	default:
		outcome.Kind = domain.OutcomeKindRawText
		outcome.Body = string(body)
		outcome.Failed = !isSuccess
	}
	return outcome, nil
}
