package usecase

import (
	"regexp"
	"strings"
	"time"

	"calendar-automation/pkg/datemath"
)

// resolvedEvent is one candidate event with its start instant fully
// resolved. The instant is always a complete wall-clock point; blocks whose
// date cannot be resolved never reach this type.
type resolvedEvent struct {
	deadline bool
	title    string
	start    time.Time
	details  string
}

var (
	blockBoundaryRe = regexp.MustCompile(`(?i)(?:Event )?Title:`)
	titleLineRe     = regexp.MustCompile(`(?i)(?:Event )?Title:[ \t]*(.+)`)
	dateLineRe      = regexp.MustCompile(`(?i)Date:[ \t]*(.+)`)
	timeLineRe      = regexp.MustCompile(`(?i)Time:[ \t]*(.+)`)
	detailsRe       = regexp.MustCompile(`(?is)Details:[ \t]*(.*)`)
)

// parseBlocks splits the model's free-text reply into labeled blocks and
// resolves each into an event. The reply is untrusted: every field except
// the title is optional, malformed blocks are dropped, and processing always
// continues with the remaining blocks.
//
// The "same as above" date carry-over lives in a loop-local variable so it
// can never leak across requests.
func parseBlocks(reply, originalText string, parser *datemath.Parser, now time.Time) []resolvedEvent {
	var events []resolvedEvent
	lastDate := ""

	for _, block := range splitBlocks(reply) {
		titleMatch := titleLineRe.FindStringSubmatch(block)
		if titleMatch == nil {
			continue
		}
		title := strings.TrimSpace(titleMatch[1])
		if title == "" {
			continue
		}

		dateStr := matchLine(dateLineRe, block)
		if strings.Contains(strings.ToLower(dateStr), "same as above") && lastDate != "" {
			dateStr = lastDate
		} else if dateStr != "" {
			lastDate = dateStr
		}

		timeStr := matchLine(timeLineRe, block)
		if timeStr == "" || timeStr == placeholderTime {
			if inferred := inferDayPartTime(originalText); inferred != "" {
				timeStr = inferred
			}
		}
		if timeStr == "" {
			// No stated time and no day-part word: default to noon, the
			// same placeholder the prompt's examples use.
			timeStr = placeholderTime
		}

		details := ""
		if m := detailsRe.FindStringSubmatch(block); m != nil {
			details = strings.TrimSpace(m[1])
		}

		start, err := parser.Resolve(dateStr, timeStr, now)
		if err != nil {
			// Unresolvable date: drop this block, keep processing siblings.
			continue
		}

		events = append(events, resolvedEvent{
			deadline: isDeadline(title, details),
			title:    title,
			start:    start,
			details:  details,
		})
	}

	return events
}

// splitBlocks cuts the reply at every "Title:"/"Event Title:" label so each
// segment starts with its own title line. Text before the first label has no
// title and is discarded.
func splitBlocks(reply string) []string {
	bounds := blockBoundaryRe.FindAllStringIndex(reply, -1)
	if len(bounds) == 0 {
		return nil
	}

	blocks := make([]string, 0, len(bounds))
	for i, b := range bounds {
		end := len(reply)
		if i+1 < len(bounds) {
			end = bounds[i+1][0]
		}
		block := strings.TrimSpace(reply[b[0]:end])
		if block != "" {
			blocks = append(blocks, block)
		}
	}
	return blocks
}

func matchLine(re *regexp.Regexp, block string) string {
	if m := re.FindStringSubmatch(block); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// inferDayPartTime scans the original input for day-part words, first match
// in table order wins.
func inferDayPartTime(originalText string) string {
	lower := strings.ToLower(originalText)
	for _, dp := range dayParts {
		if strings.Contains(lower, dp.keyword) {
			return dp.clock
		}
	}
	return ""
}

// isDeadline reports whether title or details carry a deadline keyword.
// Classification is a pure function of the text, recomputed, never stored.
func isDeadline(title, details string) bool {
	lowerTitle := strings.ToLower(title)
	lowerDetails := strings.ToLower(details)
	for _, kw := range deadlineKeywords {
		if strings.Contains(lowerTitle, kw) || strings.Contains(lowerDetails, kw) {
			return true
		}
	}
	return false
}
