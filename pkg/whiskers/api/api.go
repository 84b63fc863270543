package api

import (
	"kgeyst.com/whiskers/pkg/common"
	"kgeyst.com/whiskers/pkg/whiskers/domain"
	"kgeyst.com/whiskers/pkg/whiskers/domain/filters/dataurl"
	"kgeyst.com/whiskers/pkg/whiskers/domain/filters/file"
	domainweb "kgeyst.com/whiskers/pkg/whiskers/domain/filters/web"
	"kgeyst.com/whiskers/pkg/whiskers/infrastructure/logging"
	"kgeyst.com/whiskers/pkg/whiskers/infrastructure/upload"
	infraweb "kgeyst.com/whiskers/pkg/whiskers/infrastructure/web"
)

type api struct {
	predictionService *domain.PredictionService
}

// See domain/config.go
const (
	ConfigKeyEndpointURL    = domain.ConfigKeyEndpointURL
	ConfigKeyPredictTimeout = domain.ConfigKeyPredictTimeout
	ConfigKeyLogPath        = domain.ConfigKeyLogPath
)

// API is the entrypoint to Whiskers. It shouldn't contain any logic of its own; it glues all the components together
// and provides a public interface for domain.PredictionService.
// This API can be used in various contexts: in an IRC chat, an HTTP server, console input/output etc.
// All methods are safe to call concurrently.
type API interface {
	// Predict uploads the image (encoded as standard base64) to the inference endpoint and returns the prediction
	// ready to be displayed, e.g. "Result: cat, Confidence: 0.97". The returned error's message is meant to be
	// displayed as is as well.
	Predict(image string) (string, error)
	// PredictFromInput is like Predict, but also accepts a data URL, a URL to an image or to a web page with an
	// image and, for local users only, a path to a file.
	PredictFromInput(input string) (string, error)
}

func NewAPI(config *common.Config) API {
	logger := common.NewFileLogger(config.GetStringOrDefault(ConfigKeyLogPath, "log.txt"))
	return NewAPIWithLogger(config, logger)
}

// NewAPIWithLogger builds an API for a local user: PredictFromInput also reads local files.
func NewAPIWithLogger(config *common.Config, logger common.Logger) API {
	return newAPI(
		config,
		logger,
		dataurl.NewFilter(),
		domainweb.NewFilter(infraweb.NewURLFinder(), infraweb.NewImageExtractor(), config, logger),
		file.NewFilter(config),
	)
}

// NewPublicAPIWithLogger builds an API for untrusted callers (IRC, HTTP): PredictFromInput never touches the local
// file system, and URLs pointing to loopback or private networks are refused.
func NewPublicAPIWithLogger(config *common.Config, logger common.Logger) API {
	return newAPI(
		config,
		logger,
		dataurl.NewFilter(),
		domainweb.NewPublicFilter(infraweb.NewURLFinder(), infraweb.NewImageExtractor(), config, logger),
	)
}

func newAPI(config *common.Config, logger common.Logger, inputFilters ...domain.InputFilter) API {
	predictor := logging.NewPredictorDecorator(upload.NewClientFromConfig(config), logger)
	return &api{
		predictionService: domain.NewPredictionService(predictor, inputFilters),
	}
}

func (a *api) Predict(image string) (string, error) {
	return a.predictionService.Predict(image)
}

func (a *api) PredictFromInput(input string) (string, error) {
	return a.predictionService.PredictFromInput(input)
}
