package domain

// A list of config keys supported by Whiskers.

const (
	// ConfigKeyEndpointURL the inference endpoint which receives the multipart upload
	ConfigKeyEndpointURL = "endpointURL"
	// ConfigKeyPredictTimeout how long to wait for the inference endpoint, in milliseconds. 0 means no timeout.
	ConfigKeyPredictTimeout = "predictTimeout"
	// ConfigKeyLogPath file path where to save the logs
	ConfigKeyLogPath = "logPath"
	// ConfigKeyMaxDownloadSize the maximum size (in bytes) of an image or a web page downloaded on behalf of the user
	ConfigKeyMaxDownloadSize = "maxDownloadSize"
)

// DefaultEndpointURL is used if ConfigKeyEndpointURL isn't set.
const DefaultEndpointURL = "https://whiskersapi-1199f3802ddf.herokuapp.com/upload"

// DefaultMaxDownloadSize is used if ConfigKeyMaxDownloadSize isn't set.
const DefaultMaxDownloadSize = 10 << 20
