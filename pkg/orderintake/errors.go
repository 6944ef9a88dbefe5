package orderintake

import (
	"errors"
	"fmt"
)

var (
	// ErrServiceUnreachable is returned when the order-intake service
	// cannot be reached at all, as opposed to rejecting the order.
	ErrServiceUnreachable = errors.New("order service unreachable")
)

// APIError is a rejection from the order-intake service, carrying the
// detail the service provided.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("order service rejected the order (status %d): %s", e.StatusCode, e.Detail)
}
