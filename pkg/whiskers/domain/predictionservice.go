package domain

import "strings"

// PredictionService is the main orchestrator: it runs user input through a list of input filters one after another
// and submits whatever comes out of the last one to the predictor. Holds no per-call state, so it's safe to call
// concurrently.
type PredictionService struct {
	predictor    Predictor
	inputFilters []InputFilter
}

func NewPredictionService(predictor Predictor, inputFilters []InputFilter) *PredictionService {
	return &PredictionService{
		predictor:    predictor,
		inputFilters: inputFilters,
	}
}

// Predict see API.Predict
func (p *PredictionService) Predict(image string) (string, error) {
	return p.predictor.Predict(image)
}

// PredictFromInput see API.PredictFromInput
func (p *PredictionService) PredictFromInput(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", ErrEmptyInput
	}
	return p.applyInputFilterAtIndex(input, 0)
}

func (p *PredictionService) applyInputFilterAtIndex(input string, index int) (string, error) {
	if index >= len(p.inputFilters) {
		return p.predictor.Predict(input)
	}
	return p.inputFilters[index].Apply(input, func(input string) (string, error) {
		return p.applyInputFilterAtIndex(input, index+1)
	})
}
