// Package apierror provides the error envelopes returned by the API.
// Handlers never put database errors or stack traces into these.
package apierror

// APIError is the envelope for 4xx/5xx responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError lists failing fields by their validator tag.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Validation failed", Fields: fields}
}

// Result is the body of the activation form endpoints.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func OK() Result { return Result{Success: true} }

func Fail(msg string) Result { return Result{Success: false, Error: msg} }
