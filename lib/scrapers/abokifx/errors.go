package abokifx

import (
	"fmt"
	"net/http"
)

var (
	ErrEmptyResponse = fmt.Errorf("empty response")
	ErrStructure     = fmt.Errorf("unexpected page structure")
)

// TransportError is returned when the site could not be reached or
// answered with anything other than 200.
type TransportError struct {
	Url        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %s", e.Url, e.Err.Error())
	}
	return fmt.Sprintf("fetch %s: %d %s", e.Url, e.StatusCode, http.StatusText(e.StatusCode))
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
