package http

import (
	"github.com/gin-gonic/gin"

	"calendar-automation/internal/middleware"
	"calendar-automation/pkg/response"
)

// Process godoc
// @Summary     Extract events from text
// @Description Runs the extraction pipeline over free-form text and returns resolved event records for review. Nothing is written to the calendar.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string     true "Session ID from the OAuth callback"
// @Param       body      body   processReq true "Text to extract events from"
// @Success     200 {object} processResp
// @Failure     400 {object} response.Resp "Bad Request or no events found"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     502 {object} response.Resp "Extraction failed"
// @Router      /api/v1/events/process [POST]
func (h *handler) Process(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c, "missing session")
		return
	}

	req, err := h.processProcessReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Process(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Process: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newProcessResp(output))
}

// Create godoc
// @Summary     Create calendar events
// @Description Inserts previously extracted event records into the user's Google Calendar. Individual insert failures are skipped.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    true "Session ID from the OAuth callback"
// @Param       body      body   createReq true "Event records to insert"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/create [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c, "missing session")
		return
	}

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCreateResp(output))
}
