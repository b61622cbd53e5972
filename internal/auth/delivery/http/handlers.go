package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"calendar-automation/pkg/response"
)

// AuthURL godoc
// @Summary     Get the Google OAuth consent URL
// @Description Returns the URL the client should open to start the OAuth flow.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} authURLResp
// @Router      /api/v1/auth/google [GET]
func (h *handler) AuthURL(c *gin.Context) {
	response.OK(c, authURLResp{URL: h.uc.AuthURL(c.Request.Context())})
}

// Callback godoc
// @Summary     OAuth callback
// @Description Exchanges the authorization code for a token, opens a session and redirects the browser back to the frontend with the session ID.
// @Tags        Auth
// @Produce     json
// @Param       code query string true "Authorization code from Google"
// @Success     302 "Redirect to frontend"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Token exchange failed"
// @Router      /api/v1/auth/google/callback [GET]
func (h *handler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	sess, err := h.uc.HandleCallback(ctx, c.Query("code"))
	if err != nil {
		h.l.Errorf(ctx, "uc.HandleCallback: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	if h.frontendURL == "" {
		response.OK(c, callbackResp{UserID: sess.UserID})
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("%s?userId=%s",
		strings.TrimRight(h.frontendURL, "/"), url.QueryEscape(sess.UserID)))
}

// Check godoc
// @Summary     Check session status
// @Description Reports whether the given session is still active.
// @Tags        Auth
// @Produce     json
// @Param       X-User-ID header string false "Session ID"
// @Param       userId    query  string false "Session ID (alternative to header)"
// @Success     200 {object} checkResp
// @Router      /api/v1/auth/check [GET]
func (h *handler) Check(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		userID = c.Query("userId")
	}

	response.OK(c, checkResp{Authenticated: h.uc.Check(c.Request.Context(), userID)})
}

// Logout godoc
// @Summary     Log out
// @Description Drops the session and its stored token.
// @Tags        Auth
// @Produce     json
// @Param       X-User-ID header string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unknown session"
// @Router      /api/v1/auth/logout [POST]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Logout(ctx, c.GetHeader("X-User-ID")); err != nil {
		h.l.Warnf(ctx, "uc.Logout: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
