package domain

type NextFilterFunc func(input string) (string, error)

// InputFilter transforms free-form user input (a file path, a URL, a data URL...) on its way to the Predictor. A filter
// which doesn't recognize the input must pass it to `nextFilterFunc` unchanged.
type InputFilter interface {
	Apply(input string, nextFilterFunc NextFilterFunc) (string, error)
}
