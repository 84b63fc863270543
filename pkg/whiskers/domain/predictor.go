package domain

// Predictor submits an image to an inference model and returns a human-readable prediction. `image` is the image's
// content encoded as standard base64. Implementations must be safe for concurrent use.
type Predictor interface {
	Predict(image string) (string, error)
}
