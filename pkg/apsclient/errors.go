package apsclient

import (
	"errors"
	"fmt"
)

// Kind distinguishes the three request families; each reports failures with its own prefix.
type Kind string

const (
	KindAPI    Kind = "API"
	KindUpload Kind = "Upload"
	KindExport Kind = "Export"
)

// StatusError is returned for any non-2xx backend response.
type StatusError struct {
	Kind      Kind
	Operation string
	Status    int
	Body      string
}

// Error renders the status with the family prefix, e.g. "Upload Error: 413".
func (e *StatusError) Error() string {
	return fmt.Sprintf("%s Error: %d", e.Kind, e.Status)
}

// StatusCode returns the HTTP status carried by err, or 0 when err is not a *StatusError.
func StatusCode(err error) int {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Status
	}
	return 0
}
