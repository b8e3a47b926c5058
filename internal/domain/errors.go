package domain

import "fmt"

// TransportError marks a run-fatal failure while fetching the live feed:
// the request errored, timed out, or returned a non-success status.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// SchemaError marks a run-fatal failure in the shape of uploaded input:
// a required column or field is absent, the file extension is unsupported,
// or the payload could not be parsed at all.
type SchemaError struct {
	Reason string
}

func (e *SchemaError) Error() string {
	return e.Reason
}
