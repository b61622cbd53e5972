package usecase

import "time"

// Wall-clock serialization layout for calendar records: no UTC offset
// suffix, the paired timeZone field supplies the offset semantics.
const wallClockLayout = "2006-01-02T15:04:05"

// Title markers for the two event classifications.
const (
	deadlineMarker = "⚠️ DUE: "
	eventMarker    = "🗓️ "
)

// Plain events run one hour; deadlines are a point in time.
const defaultEventDuration = time.Hour

// deadlineKeywords classify a block as a deadline when any of them appears
// in its title or details (case-insensitive).
var deadlineKeywords = []string{"deadline", "due", "submission"}

// dayPart maps an informal time-of-day word found in the original input to a
// fixed clock time phrase. The prompt's example output uses "12:00 PM" as a
// placeholder, so a block carrying exactly that (or no time at all) falls
// back to the first day-part word found, scanned in this order.
type dayPart struct {
	keyword string
	clock   string
}

var dayParts = []dayPart{
	{"morning", "9:00 AM"},
	{"afternoon", "2:00 PM"},
	{"evening", "6:00 PM"},
	{"night", "8:00 PM"},
	{"lunch", "12:00 PM"},
	{"dinner", "7:00 PM"},
	{"breakfast", "8:00 AM"},
}

// placeholderTime is the literal time the prompt's own few-shot example
// emits when the source text names no time.
const placeholderTime = "12:00 PM"
