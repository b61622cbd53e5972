package usecase

import "calendar-automation/pkg/gcalendar"

// assembleRecord turns a resolved event into the calendar record shape.
// Deadlines are a point in time (end == start), plain events run one hour.
// Timestamps serialize from local wall-clock fields with no offset; the
// paired timezone name is what gives them meaning.
func assembleRecord(ev resolvedEvent, timezone string) gcalendar.EventRecord {
	start := ev.start
	end := start
	summary := eventMarker + ev.title
	if ev.deadline {
		summary = deadlineMarker + ev.title
	} else {
		end = start.Add(defaultEventDuration)
	}

	return gcalendar.EventRecord{
		Summary:     summary,
		Description: ev.details,
		Start: gcalendar.EventDateTime{
			DateTime: start.Format(wallClockLayout),
			TimeZone: timezone,
		},
		End: gcalendar.EventDateTime{
			DateTime: end.Format(wallClockLayout),
			TimeZone: timezone,
		},
	}
}
