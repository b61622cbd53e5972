package usecase

import (
	"strings"
	"testing"
	"time"

	"calendar-automation/pkg/datemath"
)

func utcParser(t *testing.T) *datemath.Parser {
	t.Helper()
	p, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	return p
}

func TestParseBlocksBasic(t *testing.T) {
	parser := utcParser(t)
	// Wednesday, May 1, 2024.
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	reply := "Event Title: Team Sync\nDate: tomorrow\nTime: 3:00 PM\nDetails: Weekly sync with the platform team\n\n" +
		"Event Title: Report Submission\nDate: next monday\nTime: 5:00 PM\nDetails: Deadline for report submission"

	events := parseBlocks(reply, "team sync tomorrow, report due next monday", parser, now)

	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	first := events[0]
	if first.title != "Team Sync" {
		t.Errorf("unexpected title: %q", first.title)
	}
	if first.deadline {
		t.Errorf("sync should not classify as deadline")
	}
	want := time.Date(2024, 5, 2, 15, 0, 0, 0, time.UTC)
	if !first.start.Equal(want) {
		t.Errorf("first start = %v, want %v", first.start, want)
	}

	second := events[1]
	if !second.deadline {
		t.Errorf("submission block should classify as deadline")
	}
	// Wednesday -> next Monday is +5 days.
	wantSecond := time.Date(2024, 5, 6, 17, 0, 0, 0, time.UTC)
	if !second.start.Equal(wantSecond) {
		t.Errorf("second start = %v, want %v", second.start, wantSecond)
	}
}

func TestParseBlocksSameAsAbove(t *testing.T) {
	parser := utcParser(t)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	reply := "Event Title: Christmas Lunch\nDate: 12/25/2024\nTime: 1:00 PM\nDetails: N/A\n\n" +
		"Event Title: Gift Exchange\nDate: same as above\nTime: 4:00 PM\nDetails: N/A"

	events := parseBlocks(reply, "", parser, now)

	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	y1, m1, d1 := events[0].start.Date()
	y2, m2, d2 := events[1].start.Date()
	if y1 != y2 || m1 != m2 || d1 != d2 {
		t.Errorf("second block should share the first block's date: %v vs %v",
			events[0].start, events[1].start)
	}
	if events[1].start.Hour() != 16 {
		t.Errorf("second block keeps its own time, got hour %d", events[1].start.Hour())
	}
}

func TestParseBlocksSameAsAboveWithoutPrior(t *testing.T) {
	parser := utcParser(t)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	// No prior explicit date: "same as above" is taken literally and the
	// block drops as unresolvable.
	reply := "Event Title: Orphan\nDate: same as above\nTime: 2:00 PM\nDetails: N/A"

	events := parseBlocks(reply, "", parser, now)
	if len(events) != 0 {
		t.Fatalf("expected orphan block to drop, got %d events", len(events))
	}
}

func TestParseBlocksDayPartFallback(t *testing.T) {
	parser := utcParser(t)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		reply    string
		original string
		wantHour int
	}{
		{
			name:     "missing time with dinner in original",
			reply:    "Event Title: Team Dinner\nDate: tomorrow\nDetails: N/A",
			original: "we're having a team dinner tomorrow",
			wantHour: 19,
		},
		{
			name:     "placeholder noon overridden by morning",
			reply:    "Event Title: Gym\nDate: tomorrow\nTime: 12:00 PM\nDetails: N/A",
			original: "going to the gym tomorrow morning",
			wantHour: 9,
		},
		{
			name:     "explicit time beats day part",
			reply:    "Event Title: Call\nDate: tomorrow\nTime: 4:30 PM\nDetails: N/A",
			original: "call tomorrow evening at 4:30 pm",
			wantHour: 16,
		},
		{
			name:     "morning wins over dinner in table order",
			reply:    "Event Title: Long Day\nDate: tomorrow\nDetails: N/A",
			original: "busy tomorrow: morning run then dinner",
			wantHour: 9,
		},
		{
			name:     "no time and no day part defaults to noon",
			reply:    "Event Title: Errand\nDate: tomorrow\nDetails: N/A",
			original: "running an errand tomorrow",
			wantHour: 12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := parseBlocks(tt.reply, tt.original, parser, now)
			if len(events) != 1 {
				t.Fatalf("expected 1 event, got %d", len(events))
			}
			if events[0].start.Hour() != tt.wantHour {
				t.Errorf("hour = %d, want %d", events[0].start.Hour(), tt.wantHour)
			}
		})
	}
}

func TestParseBlocksTolerance(t *testing.T) {
	parser := utcParser(t)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	reply := "Here are the events I found:\n\n" + // leading prose, no title
		"Event Title: Good One\nDate: tomorrow\nTime: 9:00 AM\nDetails: N/A\n\n" +
		"Title:\nDate: tomorrow\n\n" + // empty title drops
		"Event Title: No Date At All\nTime: 2:00 PM\nDetails: nothing to anchor on\n\n" + // unresolvable, drops
		"Title: Short Label Works\nDate: 20/03/2024\nTime: 8:00 AM\nDetails: plain Title label"

	events := parseBlocks(reply, "", parser, now)

	if len(events) != 2 {
		t.Fatalf("expected 2 surviving events, got %d", len(events))
	}
	if events[0].title != "Good One" || events[1].title != "Short Label Works" {
		t.Errorf("unexpected survivors: %q, %q", events[0].title, events[1].title)
	}
}

func TestParseBlocksNoBlocks(t *testing.T) {
	parser := utcParser(t)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	if events := parseBlocks("I could not find any events in this text.", "", parser, now); len(events) != 0 {
		t.Fatalf("expected no events, got %d", len(events))
	}
}

func TestIsDeadlineIdempotent(t *testing.T) {
	title, details := "Report Submission", "Deadline for report submission"

	first := isDeadline(title, details)
	second := isDeadline(title, details)
	if first != second || !first {
		t.Errorf("classification must be stable and true for deadline keywords")
	}

	if isDeadline("Coffee Chat", "catching up with an old friend") {
		t.Errorf("plain event misclassified as deadline")
	}
}

func TestAssembleRecord(t *testing.T) {
	start := time.Date(2024, 5, 6, 15, 0, 0, 0, time.UTC)

	t.Run("plain event runs one hour", func(t *testing.T) {
		rec := assembleRecord(resolvedEvent{
			title:   "Team Sync",
			start:   start,
			details: "weekly",
		}, "Europe/Berlin")

		if !strings.HasPrefix(rec.Summary, eventMarker) {
			t.Errorf("missing event marker: %q", rec.Summary)
		}
		if rec.Start.DateTime != "2024-05-06T15:00:00" {
			t.Errorf("start = %q", rec.Start.DateTime)
		}
		if rec.End.DateTime != "2024-05-06T16:00:00" {
			t.Errorf("end = %q", rec.End.DateTime)
		}
		if rec.Start.TimeZone != "Europe/Berlin" || rec.End.TimeZone != "Europe/Berlin" {
			t.Errorf("timezone not carried: %+v", rec)
		}
		if rec.End.DateTime < rec.Start.DateTime {
			t.Errorf("end before start")
		}
	})

	t.Run("deadline is a point in time", func(t *testing.T) {
		rec := assembleRecord(resolvedEvent{
			deadline: true,
			title:    "Report Submission",
			start:    start,
		}, "UTC")

		if !strings.HasPrefix(rec.Summary, deadlineMarker) {
			t.Errorf("missing deadline marker: %q", rec.Summary)
		}
		if rec.Start.DateTime != rec.End.DateTime {
			t.Errorf("deadline start != end: %q vs %q", rec.Start.DateTime, rec.End.DateTime)
		}
	})
}

// End-to-end over the parser pipeline: "I have to submit the report by next
// monday 3pm" with the reference now on a Monday. Same-weekday offset is 0,
// so the event lands on the reference Monday itself.
func TestParsePipelineReportSubmission(t *testing.T) {
	parser := utcParser(t)
	// Monday, May 6, 2024.
	now := time.Date(2024, 5, 6, 8, 0, 0, 0, time.UTC)

	reply := "Event Title: Report Submission\nDate: next monday\nTime: 3:00 PM\nDetails: Deadline for report submission"

	events := parseBlocks(reply, "I have to submit the report by next monday 3pm", parser, now)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}

	ev := events[0]
	if !ev.deadline {
		t.Errorf("expected deadline classification")
	}
	if ev.start.Weekday() != time.Monday {
		t.Errorf("expected Monday, got %v", ev.start.Weekday())
	}
	if ev.start.Day() != 6 {
		t.Errorf("same-weekday 'next monday' resolves to the reference Monday, got day %d", ev.start.Day())
	}
	if ev.start.Hour() != 15 {
		t.Errorf("expected 15:00, got %d", ev.start.Hour())
	}

	rec := assembleRecord(ev, "UTC")
	if rec.Start.DateTime != rec.End.DateTime {
		t.Errorf("deadline record must have start == end")
	}
	if rec.Start.DateTime != "2024-05-06T15:00:00" {
		t.Errorf("start = %q", rec.Start.DateTime)
	}
}

func TestScanEvents(t *testing.T) {
	text := "I have a meeting with John on 12/03/2024.\n" +
		"Assignment due: Monday, 25 December 2024, 3:00 PM\n" +
		"Nothing dated in this line at all."

	events := scanEvents(text, time.UTC)

	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	if events[0].start.Day() != 12 || events[0].start.Month() != time.March {
		t.Errorf("numeric date read as DD/MM/YYYY, got %v", events[0].start)
	}

	second := events[1]
	if second.start.Hour() != 15 {
		t.Errorf("long form time = %d, want 15", second.start.Hour())
	}
	if second.start.Day() != 25 || second.start.Month() != time.December {
		t.Errorf("long form date wrong: %v", second.start)
	}
	if !second.deadline {
		t.Errorf("'due' line should classify as deadline")
	}
}
