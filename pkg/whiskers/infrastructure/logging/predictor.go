package logging

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"kgeyst.com/whiskers/pkg/common"
	"kgeyst.com/whiskers/pkg/whiskers/domain"
)

type predictorDecorator struct {
	wrappedPredictor domain.Predictor
	logger           common.Logger
}

// NewPredictorDecorator logs every prediction made by `wrappedPredictor`: a request ID, the size of the payload,
// the outcome and how long it took. The payload itself is never logged.
func NewPredictorDecorator(wrappedPredictor domain.Predictor, logger common.Logger) domain.Predictor {
	return &predictorDecorator{
		wrappedPredictor: wrappedPredictor,
		logger:           logger,
	}
}

func (p *predictorDecorator) Predict(image string) (string, error) {
	requestID := uuid.NewString()
	p.logger.Log(fmt.Sprintf("[%s] predict: %d bytes of base64", requestID, len(image)))
	t := time.Now()
	response, err := p.wrappedPredictor.Predict(image)
	took := time.Since(t).Milliseconds()
	if err != nil {
		p.logger.Log(fmt.Sprintf("[%s] predict failed (took %d ms): %s", requestID, took, err))
		return "", err
	}
	p.logger.Log(fmt.Sprintf("[%s] predict succeeded (took %d ms): %s", requestID, took, response))
	return response, nil
}
