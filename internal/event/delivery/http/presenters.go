package http

import (
	"calendar-automation/internal/event"
	"calendar-automation/pkg/gcalendar"
)

// --- Response DTOs ---

type eventDateTimeResp struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone"`
}

type eventRecordResp struct {
	Summary     string            `json:"summary"`
	Description string            `json:"description"`
	Start       eventDateTimeResp `json:"start"`
	End         eventDateTimeResp `json:"end"`
}

func newEventRecordResp(rec gcalendar.EventRecord) eventRecordResp {
	return eventRecordResp{
		Summary:     rec.Summary,
		Description: rec.Description,
		Start:       eventDateTimeResp{DateTime: rec.Start.DateTime, TimeZone: rec.Start.TimeZone},
		End:         eventDateTimeResp{DateTime: rec.End.DateTime, TimeZone: rec.End.TimeZone},
	}
}

type processResp struct {
	Events   []eventRecordResp `json:"events"`
	Timezone string            `json:"timezone"`
}

func (h *handler) newProcessResp(out event.ProcessOutput) processResp {
	events := make([]eventRecordResp, len(out.Events))
	for i, rec := range out.Events {
		events[i] = newEventRecordResp(rec)
	}
	return processResp{
		Events:   events,
		Timezone: out.Timezone,
	}
}

type createdEventResp struct {
	ID       string `json:"id"`
	Summary  string `json:"summary"`
	HtmlLink string `json:"htmlLink"`
}

type createResp struct {
	Created []createdEventResp `json:"created"`
	Count   int                `json:"count"`
}

func (h *handler) newCreateResp(out event.CreateOutput) createResp {
	created := make([]createdEventResp, len(out.Created))
	for i, ev := range out.Created {
		created[i] = createdEventResp{
			ID:       ev.ID,
			Summary:  ev.Summary,
			HtmlLink: ev.HtmlLink,
		}
	}
	return createResp{
		Created: created,
		Count:   len(created),
	}
}
