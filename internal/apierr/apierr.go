// Package apierr defines the failure taxonomy of the OCR services. Every
// failure a handler can surface carries a fixed HTTP status and a JSON body,
// so clients never see an empty response or a raw stack trace.
package apierr

import "net/http"

// Error is a request-terminating failure. Body is what gets serialized to the
// client; the original cause stays reachable via Unwrap for logging.
type Error struct {
	Status  int
	Body    any
	message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}
	return e.message
}

func (e *Error) Unwrap() error {
	return e.cause
}

type detailBody struct {
	Detail string `json:"detail"`
}

type messageBody struct {
	Message string `json:"message"`
	Err     string `json:"error,omitempty"`
}

type languageBody struct {
	Invalid string   `json:"invalid language entry"`
	Allowed []string `json:"allowed languages"`
}

// InvalidInput reports a malformed upload or base64 payload. The original
// decode error text is preserved in the body.
func InvalidInput(message string, cause error) *Error {
	return &Error{
		Status:  http.StatusBadRequest,
		Body:    messageBody{Message: message, Err: causeText(cause)},
		message: message,
		cause:   cause,
	}
}

// InvalidImage reports a byte buffer that no registered decoder recognizes.
func InvalidImage() *Error {
	return &Error{
		Status:  http.StatusBadRequest,
		Body:    detailBody{Detail: "Invalid image file"},
		message: "Invalid image file",
	}
}

// ImageProcessing reports a decode-time failure on a recognized format,
// e.g. a truncated or corrupt file.
func ImageProcessing(message string, cause error) *Error {
	return &Error{
		Status:  http.StatusBadRequest,
		Body:    messageBody{Message: message, Err: causeText(cause)},
		message: message,
		cause:   cause,
	}
}

// Detail reports a pure input error with a flat {detail} body.
func Detail(message string) *Error {
	return &Error{
		Status:  http.StatusBadRequest,
		Body:    detailBody{Detail: message},
		message: message,
	}
}

// UnsupportedLanguage rejects a language code outside the supported set.
// The body enumerates the offending value and the full sorted set.
func UnsupportedLanguage(code string, allowed []string) *Error {
	return &Error{
		Status:  http.StatusUnprocessableEntity,
		Body:    languageBody{Invalid: code, Allowed: allowed},
		message: "unsupported language " + code,
	}
}

// Engine wraps a failure raised by an OCR engine.
func Engine(cause error) *Error {
	return &Error{
		Status:  http.StatusInternalServerError,
		Body:    messageBody{Message: "Error during OCR", Err: causeText(cause)},
		message: "Error during OCR",
		cause:   cause,
	}
}

func causeText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
