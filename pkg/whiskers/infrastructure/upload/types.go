package upload

import (
	"encoding/json"
	"errors"
)

type predictionResponse struct {
	Result     *string `json:"result"`
	Confidence *string `json:"confidence"`
}

type errorResponse struct {
	Error *string `json:"error"`
}

type prediction struct {
	Result     string
	Confidence string
}

type remoteFailure struct {
	Error string
}

func parsePredictionResponse(body []byte) (*prediction, error) {
	var response predictionResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, err
	}
	if response.Result == nil {
		return nil, errors.New("missing field \"result\"")
	}
	if response.Confidence == nil {
		return nil, errors.New("missing field \"confidence\"")
	}
	return &prediction{
		Result:     *response.Result,
		Confidence: *response.Confidence,
	}, nil
}

func parseErrorResponse(body []byte) (*remoteFailure, error) {
	var response errorResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, err
	}
	if response.Error == nil {
		return nil, errors.New("missing field \"error\"")
	}
	return &remoteFailure{Error: *response.Error}, nil
}
