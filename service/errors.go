package service

import "github.com/structcodes/assistant/genai"

// Fixed user-facing strings. Backend error text is logged but never shown.
const (
	chatFallbackText      = "Sorry, I could not extract an answer from the available sources."
	checklistFallbackText = "Failed to generate checklist."
	chatErrorMessage      = "Service is currently busy. Please try again in a moment."
	checklistErrorMessage = "Could not generate inspection checklist."
	defaultLinkTitle      = "Source Reference"
)

// RequestError is the single opaque failure surfaced to callers. All backend
// failure kinds collapse into it; the user message is fixed per flow and the
// underlying error is kept only for logging.
type RequestError struct {
	Kind        genai.ErrorKind
	UserMessage string
	err         error
}

// Error returns the user-facing message.
func (e *RequestError) Error() string {
	return e.UserMessage
}

// Unwrap exposes the underlying backend error for logging and inspection.
func (e *RequestError) Unwrap() error {
	return e.err
}

func newRequestError(userMessage string, err error) *RequestError {
	return &RequestError{
		Kind:        genai.KindOf(err),
		UserMessage: userMessage,
		err:         err,
	}
}
