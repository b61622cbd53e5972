package usecase

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// The paragraph scanner is a model-free fallback: it walks the raw input
// line by line and keeps anything carrying an explicit date. It handles no
// relative dates and no shared-date blocks, but keeps the endpoint useful
// when the model is down.

var (
	scanDMYRe = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4})\b`)
	// "Monday, 25 December 2024, 3:00 PM"
	scanLongRe = regexp.MustCompile(`(?i)([A-Za-z]+day),\s*(\d{1,2})\s+([A-Za-z]+)\s+(\d{4}),\s*(\d{1,2}):(\d{2})\s*(AM|PM)`)

	titlePrefixRe  = regexp.MustCompile(`^[:\-–—]+`)
	titleKeywordRe = regexp.MustCompile(`(?i)^(opened|due|deadline|submission):`)
)

// titleKeywords mark lines likely to name the event.
var titleKeywords = []string{"opened", "due", "deadline", "submission", "assignment", "project"}

func scanEvents(text string, loc *time.Location) []resolvedEvent {
	var events []resolvedEvent

	for _, paragraph := range splitParagraphs(text) {
		start, matched, ok := scanDate(paragraph, loc)
		if !ok {
			continue
		}

		title := scanTitle(paragraph, matched)
		if title == "" {
			title = "Untitled Event"
		}

		events = append(events, resolvedEvent{
			deadline: isDeadline(title, paragraph),
			title:    title,
			start:    start,
			details:  paragraph,
		})
	}

	return events
}

func splitParagraphs(text string) []string {
	var paragraphs []string
	for _, p := range regexp.MustCompile(`\n+`).Split(text, -1) {
		if p = strings.TrimSpace(p); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// scanDate returns the paragraph's first explicit date, the matched text,
// and whether anything matched at all.
func scanDate(paragraph string, loc *time.Location) (time.Time, string, bool) {
	if m := scanDMYRe.FindStringSubmatch(paragraph); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc), m[0], true
	}

	if m := scanLongRe.FindStringSubmatch(paragraph); m != nil {
		month, ok := monthByName(m[3])
		if !ok {
			return time.Time{}, "", false
		}
		day, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[4])
		hours, _ := strconv.Atoi(m[5])
		minutes, _ := strconv.Atoi(m[6])
		switch strings.ToLower(m[7]) {
		case "pm":
			if hours < 12 {
				hours += 12
			}
		case "am":
			if hours == 12 {
				hours = 0
			}
		}
		return time.Date(year, month, day, hours, minutes, 0, 0, loc), m[0], true
	}

	return time.Time{}, "", false
}

func monthByName(name string) (time.Month, bool) {
	months := map[string]time.Month{
		"january": time.January, "february": time.February, "march": time.March,
		"april": time.April, "may": time.May, "june": time.June,
		"july": time.July, "august": time.August, "september": time.September,
		"october": time.October, "november": time.November, "december": time.December,
	}
	m, ok := months[strings.ToLower(name)]
	return m, ok
}

// scanTitle picks the most event-like line of the paragraph: first a line
// carrying a title keyword, else the first line, stripped of the date text
// and leading punctuation.
func scanTitle(paragraph, dateText string) string {
	lines := strings.Split(paragraph, "\n")

	title := ""
	for _, line := range lines {
		lower := strings.ToLower(line)
		for _, kw := range titleKeywords {
			if strings.Contains(lower, kw) {
				title = line
				break
			}
		}
		if title != "" {
			break
		}
	}
	if title == "" {
		title = lines[0]
	}

	title = strings.TrimSpace(strings.ReplaceAll(title, dateText, ""))
	title = titlePrefixRe.ReplaceAllString(title, "")
	title = titleKeywordRe.ReplaceAllString(title, "")
	return strings.TrimSpace(title)
}
