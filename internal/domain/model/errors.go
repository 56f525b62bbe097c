package model

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a request failure. Classification happens in the
// search use case; controllers only translate kinds to HTTP status codes.
type ErrorKind int

const (
	// KindBadInput covers caller-correctable failures: missing fields and
	// locations the geocoding provider cannot resolve.
	KindBadInput ErrorKind = iota
	// KindNoData means the input was valid but no forecast is available.
	KindNoData
	// KindInternal covers store failures and unclassified faults.
	KindInternal
)

// RequestError is a classified request failure carrying a caller-safe message.
type RequestError struct {
	Kind    ErrorKind
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

// BadInput builds a KindBadInput RequestError.
func BadInput(format string, args ...any) error {
	return &RequestError{Kind: KindBadInput, Message: fmt.Sprintf(format, args...)}
}

// NoData builds a KindNoData RequestError.
func NoData(format string, args ...any) error {
	return &RequestError{Kind: KindNoData, Message: fmt.Sprintf(format, args...)}
}

// Internal builds a KindInternal RequestError.
func Internal(format string, args ...any) error {
	return &RequestError{Kind: KindInternal, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the classification from err. Anything that is not a
// RequestError counts as internal.
func KindOf(err error) ErrorKind {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Kind
	}
	return KindInternal
}
