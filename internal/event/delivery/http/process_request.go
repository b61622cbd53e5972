package http

import (
	"github.com/gin-gonic/gin"

	"calendar-automation/internal/event"
	"calendar-automation/pkg/gcalendar"
)

// --- Request DTOs ---

type processReq struct {
	Text string `json:"text" binding:"required"`
}

func (r processReq) toInput() event.ProcessInput {
	return event.ProcessInput{Text: r.Text}
}

type eventDateTimeReq struct {
	DateTime string `json:"dateTime" binding:"required"`
	TimeZone string `json:"timeZone" binding:"required"`
}

type eventRecordReq struct {
	Summary     string           `json:"summary" binding:"required"`
	Description string           `json:"description"`
	Start       eventDateTimeReq `json:"start" binding:"required"`
	End         eventDateTimeReq `json:"end" binding:"required"`
}

type createReq struct {
	Events []eventRecordReq `json:"events" binding:"required,dive"`
}

func (r createReq) toInput() event.CreateInput {
	records := make([]gcalendar.EventRecord, len(r.Events))
	for i, ev := range r.Events {
		records[i] = gcalendar.EventRecord{
			Summary:     ev.Summary,
			Description: ev.Description,
			Start:       gcalendar.EventDateTime{DateTime: ev.Start.DateTime, TimeZone: ev.Start.TimeZone},
			End:         gcalendar.EventDateTime{DateTime: ev.End.DateTime, TimeZone: ev.End.TimeZone},
		}
	}
	return event.CreateInput{Records: records}
}

// processProcessReq binds and validates the text extraction request body.
func (h *handler) processProcessReq(c *gin.Context) (processReq, error) {
	var req processReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processCreateReq binds and validates the event creation request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
