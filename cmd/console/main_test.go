package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAPI struct {
	inputs []string
}

func (s *stubAPI) Predict(image string) (string, error) {
	return s.PredictFromInput(image)
}

func (s *stubAPI) PredictFromInput(input string) (string, error) {
	s.inputs = append(s.inputs, input)
	if input == "bad" {
		return "", errors.New("model unavailable")
	}
	return "Result: " + input + ", Confidence: 1", nil
}

func TestPredictBatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inputs.txt")
	require.NoError(t, os.WriteFile(path, []byte("cat\n# skipped\n\nbad\n"), 0644))
	whiskers := &stubAPI{}
	var out bytes.Buffer

	require.NoError(t, predictBatch(whiskers, path, &out))
	assert.Equal(t, []string{"cat", "bad"}, whiskers.inputs)
	assert.Equal(t, "[1/2] cat\nResult: cat, Confidence: 1\n[2/2] bad\nAn error occurred during prediction: model unavailable\n", out.String())
}

func TestPredictBatchErrors(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, predictBatch(&stubAPI{}, "", &out))
	assert.Error(t, predictBatch(&stubAPI{}, filepath.Join(t.TempDir(), "missing.txt"), &out))
}

func TestShorten(t *testing.T) {
	assert.Equal(t, "short", shorten("short"))
	long := strings.Repeat("a", 100)
	assert.Equal(t, strings.Repeat("a", 80)+"...", shorten(long))
}
