package domain

import "fmt"

// OutcomeKind the shape of the inference endpoint's response.
type OutcomeKind int

const (
	// OutcomeKindSuccess a structured success response: result and confidence
	OutcomeKindSuccess = OutcomeKind(iota)
	// OutcomeKindFailure a structured failure response: an error message
	OutcomeKindFailure
	// OutcomeKindRawText a response which isn't JSON; Failed tells if the status code reported a failure
	OutcomeKindRawText
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeKindSuccess:
		return "success"
	case OutcomeKindFailure:
		return "failure"
	case OutcomeKindRawText:
		return "raw text"
	}
	return fmt.Sprintf("OutcomeKind(%d)", int(k))
}

// Outcome is the classified response of a single upload.
type Outcome struct {
	Kind       OutcomeKind
	StatusCode int
	Result     string
	Confidence string
	Error      string
	Body       string
	Failed     bool
}

// Message returns what should be displayed to the user.
func (o *Outcome) Message() string {
	switch o.Kind {
	case OutcomeKindSuccess:
		return fmt.Sprintf("Result: %s, Confidence: %s", o.Result, o.Confidence)
	case OutcomeKindFailure:
		return o.Error
	default:
		return o.Body
	}
}

// Err returns a *RemoteError if the outcome is a failure, nil otherwise.
func (o *Outcome) Err() error {
	if o.Kind == OutcomeKindFailure || (o.Kind == OutcomeKindRawText && o.Failed) {
		return &RemoteError{
			StatusCode: o.StatusCode,
			Message:    o.Message(),
		}
	}
	return nil
}
