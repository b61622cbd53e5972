package usecase

import (
	"context"
	"fmt"

	"calendar-automation/internal/event"
	"calendar-automation/internal/model"
)

// Create inserts previously extracted records into the user's calendar.
// A single failed insert drops that record and continues; partial success is
// preferred over total failure.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input event.CreateInput) (event.CreateOutput, error) {
	if len(input.Records) == 0 {
		return event.CreateOutput{}, event.ErrNoRecords
	}

	sess, err := uc.sessions.Session(ctx, sc.UserID)
	if err != nil {
		return event.CreateOutput{}, err
	}

	cal, err := uc.calendarFor(ctx, sess.Token)
	if err != nil {
		return event.CreateOutput{}, fmt.Errorf("calendar client unavailable: %w", err)
	}

	created := make([]event.CreatedEvent, 0, len(input.Records))
	var lastErr error

	for _, rec := range input.Records {
		ins, insErr := cal.InsertEvent(ctx, uc.calendarID, rec)
		if insErr != nil {
			uc.l.Warnf(ctx, "Create: insert failed for %q (non-fatal): %v", rec.Summary, insErr)
			lastErr = insErr
			continue
		}

		created = append(created, event.CreatedEvent{
			ID:       ins.ID,
			Summary:  ins.Summary,
			HtmlLink: ins.HtmlLink,
		})

		uc.l.Infof(ctx, "Create: inserted %q id=%s", ins.Summary, ins.ID)
	}

	if len(created) == 0 {
		return event.CreateOutput{}, fmt.Errorf("failed to create any calendar event: %w", lastErr)
	}

	return event.CreateOutput{Created: created}, nil
}
