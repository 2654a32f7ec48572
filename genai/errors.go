package genai

import "errors"

// ErrorKind classifies a failed backend call. Callers collapse all kinds into
// one user-facing error; the kind survives for logging and metrics only.
type ErrorKind string

const (
	KindNetwork   ErrorKind = "network"
	KindAuth      ErrorKind = "auth"
	KindQuota     ErrorKind = "quota"
	KindMalformed ErrorKind = "malformed"
)

// APIError wraps a backend failure with its classification.
type APIError struct {
	Kind ErrorKind
	err  error
}

func (e *APIError) Error() string {
	return string(e.Kind) + ": " + e.err.Error()
}

func (e *APIError) Unwrap() error {
	return e.err
}

// NewAPIError wraps err with the given kind.
func NewAPIError(kind ErrorKind, err error) error {
	return &APIError{Kind: kind, err: err}
}

// KindOf returns the classification of err, defaulting to KindNetwork for
// errors that did not come from the client.
func KindOf(err error) ErrorKind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindNetwork
}
