package event

import "errors"

// Domain-specific errors for the event package. All three are distinct,
// user-facing conditions; none are retried here.
var (
	// ErrEmptyInput means there was nothing to extract after trimming.
	ErrEmptyInput = errors.New("input text is empty")

	// ErrExtractionFailed means the model call failed (network, auth, quota,
	// timeout). The underlying cause is attached by wrapping.
	ErrExtractionFailed = errors.New("failed to extract events")

	// ErrNoEventsFound means the model responded but zero parsable events
	// survived block parsing and date resolution.
	ErrNoEventsFound = errors.New("no events found in the text")

	// ErrNoRecords means a create request carried no event records.
	ErrNoRecords = errors.New("no event records to create")
)
