package gate

import (
	"fmt"
	"net/http"
)

// NetworkError is a failed light-state query: a transport error, a non-2xx
// status or a body that could not be understood.
type NetworkError struct {
	Provider Provider
	Op       string
	Status   int
	Err      error
}

func (e *NetworkError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("gate: %s %s: %v", e.Provider, e.Op, e.Err)
	case e.Status != 0:
		return fmt.Sprintf("gate: %s %s: %d %s", e.Provider, e.Op, e.Status, http.StatusText(e.Status))
	default:
		return fmt.Sprintf("gate: %s %s failed", e.Provider, e.Op)
	}
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
