package event

import "calendar-automation/pkg/gcalendar"

// ProcessInput carries the raw text to turn into calendar event records.
type ProcessInput struct {
	Text string
}

// ProcessOutput is the ordered list of records extracted from the text, in
// the order the events appeared.
type ProcessOutput struct {
	Events []gcalendar.EventRecord
	// Timezone is the IANA zone all records were resolved in.
	Timezone string
}

// CreateInput carries previously extracted records to insert into the
// user's calendar.
type CreateInput struct {
	Records []gcalendar.EventRecord
}

// CreatedEvent describes one successfully inserted calendar event.
type CreatedEvent struct {
	ID       string
	Summary  string
	HtmlLink string
}

// CreateOutput lists the events that were actually inserted. Failed inserts
// are dropped, not retried.
type CreateOutput struct {
	Created []CreatedEvent
}
