package blossom

import "fmt"

// FetchError is returned when the Blossom API answers with a non-ok status.
// It aborts the operation that triggered the request; partial results are
// never returned alongside it.
type FetchError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("blossom: GET %s returned status %d", e.Endpoint, e.StatusCode)
}
