package rest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kgeyst.com/whiskers/pkg/common"
	"kgeyst.com/whiskers/pkg/whiskers/api"
	"kgeyst.com/whiskers/pkg/whiskers/domain"
)

type stubPredictor struct {
	result string
	err    error
	inputs []string
}

func (s *stubPredictor) PredictFromInput(input string) (string, error) {
	s.inputs = append(s.inputs, input)
	return s.result, s.err
}

func performRequest(t *testing.T, predictor Predictor, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := NewRouter(predictor, common.NewNopLogger())
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestHealth(t *testing.T) {
	w := performRequest(t, &stubPredictor{}, http.MethodGet, EndPointHealth, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
}

func TestPredictSuccess(t *testing.T) {
	predictor := &stubPredictor{result: "Result: cat, Confidence: 0.97"}
	w := performRequest(t, predictor, http.MethodPost, EndPointPredict, `{"image":"aGVsbG8="}`)

	assert.Equal(t, http.StatusOK, w.Code)
	var response PredictResponse
	decodeBody(t, w, &response)
	assert.Equal(t, "Result: cat, Confidence: 0.97", response.Result)
	assert.Equal(t, []string{"aGVsbG8="}, predictor.inputs)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestPredictInvalidRequest(t *testing.T) {
	predictor := &stubPredictor{}
	for _, body := range []string{"not json", `{}`, `{"image":""}`} {
		w := performRequest(t, predictor, http.MethodPost, EndPointPredict, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
	assert.Empty(t, predictor.inputs)
}

func TestPredictErrorStatusCodes(t *testing.T) {
	for _, tc := range []struct {
		err        error
		statusCode int
	}{
		{&domain.RemoteError{StatusCode: 500, Message: "model unavailable"}, http.StatusBadGateway},
		{fmt.Errorf("%w: connection refused", domain.ErrTransport), http.StatusBadGateway},
		{fmt.Errorf("%w: unexpected EOF", domain.ErrParseResponse), http.StatusBadGateway},
		{fmt.Errorf("%w: illegal base64 data at input byte 3", domain.ErrDecodeImage), http.StatusBadRequest},
		{domain.ErrEmptyInput, http.StatusBadRequest},
		{fmt.Errorf("%w: invalid media type", domain.ErrBuildRequest), http.StatusInternalServerError},
	} {
		w := performRequest(t, &stubPredictor{err: tc.err}, http.MethodPost, EndPointPredict, `{"image":"x"}`)

		assert.Equal(t, tc.statusCode, w.Code, tc.err.Error())
		var response ErrorResponse
		decodeBody(t, w, &response)
		assert.Equal(t, tc.err.Error(), response.Error)
	}
}

func TestPreflight(t *testing.T) {
	w := performRequest(t, &stubPredictor{}, http.MethodOptions, EndPointPredict, "")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "GET, POST, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
}

func TestPredictDoesNotReadLocalFiles(t *testing.T) {
	var uploads atomic.Int32
	endpoint := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uploads.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":"leaked","confidence":"1"}`))
	}))
	defer endpoint.Close()
	whiskers := api.NewPublicAPIWithLogger(common.NewConfig(map[string]any{
		api.ConfigKeyEndpointURL: endpoint.URL,
	}), common.NewNopLogger())
	path := filepath.Join(t.TempDir(), "secret.txt")
	require.NoError(t, os.WriteFile(path, []byte("DB_PASSWORD=hunter2"), 0644))
	missingPath := filepath.Join(t.TempDir(), "missing.txt")

	for _, input := range []string{path, "'" + path + "'", missingPath} {
		body, err := json.Marshal(PredictRequest{Image: input})
		require.NoError(t, err)
		w := performRequest(t, whiskers, http.MethodPost, EndPointPredict, string(body))

		assert.Equal(t, http.StatusBadRequest, w.Code, input)
		var response ErrorResponse
		decodeBody(t, w, &response)
		assert.True(t, strings.HasPrefix(response.Error, domain.ErrDecodeImage.Error()), response.Error)
		assert.NotContains(t, response.Error, "too large")
	}
	assert.Zero(t, uploads.Load())
}
