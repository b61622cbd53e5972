package usecase

import (
	"context"
	"fmt"
	"strings"

	"calendar-automation/internal/auth"
	"calendar-automation/internal/event"
	"calendar-automation/internal/model"
	"calendar-automation/pkg/datemath"
	"calendar-automation/pkg/gcalendar"
	"calendar-automation/pkg/gemini"
)

// Process turns raw text into calendar event records: one model call, block
// parsing, date/time resolution, record assembly. Nothing is inserted.
func (uc *implUseCase) Process(ctx context.Context, sc model.Scope, input event.ProcessInput) (event.ProcessOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return event.ProcessOutput{}, event.ErrEmptyInput
	}

	sess, err := uc.sessions.Session(ctx, sc.UserID)
	if err != nil {
		return event.ProcessOutput{}, err
	}

	uc.l.Infof(ctx, "Process: user=%s input_length=%d", sc.UserID, len(text))

	timezone := uc.userTimezone(ctx, sess)
	parser, err := datemath.NewParser(timezone)
	if err != nil {
		uc.l.Warnf(ctx, "Process: invalid timezone %q, falling back to UTC: %v", timezone, err)
		timezone = "UTC"
		parser, _ = datemath.NewParser(timezone)
	}

	now := uc.now().In(parser.Location())

	var resolved []resolvedEvent
	reply, err := uc.extract(ctx, text)
	if err != nil {
		if !uc.fallbackEnabled {
			return event.ProcessOutput{}, err
		}
		uc.l.Warnf(ctx, "Process: model extraction failed, using paragraph scanner: %v", err)
		resolved = scanEvents(text, parser.Location())
	} else {
		resolved = parseBlocks(reply, text, parser, now)
	}

	if len(resolved) == 0 {
		return event.ProcessOutput{}, event.ErrNoEventsFound
	}

	records := make([]gcalendar.EventRecord, 0, len(resolved))
	for _, ev := range resolved {
		records = append(records, assembleRecord(ev, timezone))
	}

	uc.l.Infof(ctx, "Process: extracted %d events (timezone=%s)", len(records), timezone)

	return event.ProcessOutput{Events: records, Timezone: timezone}, nil
}

// extract sends the fixed prompt plus the user text to the model under a
// bounded timeout. Any failure, timeout included, surfaces as
// ErrExtractionFailed with the cause attached.
func (uc *implUseCase) extract(ctx context.Context, text string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.extractTimeout)
	defer cancel()

	resp, err := uc.llm.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Parts: []gemini.Part{{Text: gemini.BuildEventExtractionPrompt(text)}}},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     0.2,
			MaxOutputTokens: 2048,
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", event.ErrExtractionFailed, err)
	}

	reply := resp.Text()
	if strings.TrimSpace(reply) == "" {
		return "", fmt.Errorf("%w: empty model response", event.ErrExtractionFailed)
	}
	return reply, nil
}

// userTimezone reads the user's calendar timezone setting, defaulting to UTC
// when the calendar is unreachable.
func (uc *implUseCase) userTimezone(ctx context.Context, sess auth.Session) string {
	cal, err := uc.calendarFor(ctx, sess.Token)
	if err != nil {
		uc.l.Warnf(ctx, "Process: calendar client unavailable, assuming UTC: %v", err)
		return "UTC"
	}

	tz, err := cal.UserTimezone(ctx)
	if err != nil {
		uc.l.Warnf(ctx, "Process: could not read user timezone, assuming UTC: %v", err)
		return "UTC"
	}
	return tz
}
