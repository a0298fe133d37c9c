package gateway

import "fmt"

// NoDataError signals that the upstream returned nothing for the request.
type NoDataError struct {
	Ticker string
	Detail string
}

func (e *NoDataError) Error() string {
	return fmt.Sprintf("%s: no data: %s", e.Ticker, e.Detail)
}

// MissingFieldError signals that an expected field is absent after
// normalization.
type MissingFieldError struct {
	Ticker string
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing field %q", e.Ticker, e.Field)
}

// SchemaError signals that the expected table or column structure was not
// found in an upstream document.
type SchemaError struct {
	Detail string
}

func (e *SchemaError) Error() string {
	return "schema: " + e.Detail
}

// FetchError wraps a transport-level failure.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
