package gcalendar

// EventDateTime pairs a wall-clock timestamp with the IANA timezone that
// gives it meaning. DateTime is formatted "2006-01-02T15:04:05" with no UTC
// offset suffix; the TimeZone field supplies the offset semantics, matching
// the Google Calendar API's expected shape.
type EventDateTime struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone"`
}

// EventRecord is a calendar event ready for insertion. Records are built
// once per extracted event and never mutated afterwards.
type EventRecord struct {
	Summary     string        `json:"summary"`
	Description string        `json:"description"`
	Start       EventDateTime `json:"start"`
	End         EventDateTime `json:"end"`
}

// Event is a simplified representation of a created Google Calendar event.
type Event struct {
	ID       string
	Summary  string
	HtmlLink string
}
