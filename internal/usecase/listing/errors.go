package listing

import "errors"

var (
	// ErrLoadInProgress is returned when a page request is rejected because
	// another request for the same query is already in flight.
	ErrLoadInProgress = errors.New("page load already in progress")

	// ErrStaleResult is returned to a direct LoadPage caller whose result
	// arrived after the active query changed. Subscribers never observe a
	// stale result; it is discarded before notification.
	ErrStaleResult = errors.New("stale page result discarded")

	// ErrNoActiveQuery is returned by RequestNextPage before any query has
	// been configured.
	ErrNoActiveQuery = errors.New("no active query configured")
)
