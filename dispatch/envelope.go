package dispatch

import (
	"fmt"
)

// Envelope is the uniform outcome of one dispatch. It is either an
// *ImageResult or an *ErrorResult.
type Envelope interface {
	envelope()
}

// ImageResult carries a rendered chart.
type ImageResult struct {
	Bytes    []byte
	MIMEType string
}

// ErrorResult carries a caller-readable message. Err holds the typed cause
// (*charts.UnknownCapabilityError, *shape.ValidationError or *BackendError).
type ErrorResult struct {
	Message string
	Err     error
}

func (*ImageResult) envelope() {}
func (*ErrorResult) envelope() {}

func (r *ErrorResult) Error() string { return r.Message }
func (r *ErrorResult) Unwrap() error { return r.Err }

// BackendError is a rendering failure for one capability.
type BackendError struct {
	Capability string
	Err        error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("error generating %s chart: %v", e.Capability, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }
