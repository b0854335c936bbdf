package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"health-tracker/internal/model"
	"health-tracker/pkg/response"
	"health-tracker/pkg/twiml"
)

// HandleMessage godoc
// @Summary     Handle an inbound chat message
// @Description Classifies a message, logs it and returns the reply. Accepts Twilio form fields (Body, From) or JSON. Replies with TwiML unless Accept asks for JSON.
// @Tags        Messages
// @Accept      x-www-form-urlencoded,json
// @Produce     xml,json
// @Param       Body formData string false "Message text (Twilio)"
// @Param       From formData string false "Sender, whatsapp: prefix allowed (Twilio)"
// @Success     200 {object} messageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /webhook/message [POST]
func (h *handler) HandleMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMessageReq(c)
	if err != nil {
		h.l.Warnf(ctx, "internal.health.delivery.http.HandleMessage: %v", err)
		h.writeRequestError(c, err)
		return
	}

	output, err := h.uc.HandleMessage(ctx, req.toScope(), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.HandleMessage: %v", err)
		h.writeError(c, err)
		return
	}

	if wantsJSON(c) {
		c.JSON(http.StatusOK, h.newMessageResp(output))
		return
	}

	body, err := twiml.MessagingResponse(output.Response)
	if err != nil {
		h.l.Errorf(ctx, "twiml.MessagingResponse: %v", err)
		response.InternalError(c, err)
		return
	}
	c.Data(http.StatusOK, twiml.ContentType, []byte(body))
}

// HealthLogs godoc
// @Summary     List health logs
// @Description Returns the caller's exercise and food logs, newest first.
// @Tags        Health
// @Produce     json
// @Security    BearerAuth
// @Param       limit query int false "Maximum number of entries"
// @Success     200 {object} logsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/health-logs [GET]
func (h *handler) HealthLogs(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processLogsReq(c)
	if err != nil {
		h.l.Warnf(ctx, "internal.health.delivery.http.HealthLogs: %v", err)
		h.writeRequestError(c, err)
		return
	}

	output, err := h.uc.ListLogs(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListLogs: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newLogsResp(output))
}

// WeeklySummary godoc
// @Summary     Get the activity summary
// @Description Aggregates the trailing window (7 days by default) for the caller.
// @Tags        Health
// @Produce     json
// @Security    BearerAuth
// @Param       days query int false "Window length in days (default: 7)"
// @Success     200 {object} summaryResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/weekly-summary [GET]
func (h *handler) WeeklySummary(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processSummaryReq(c)
	if err != nil {
		h.l.Warnf(ctx, "internal.health.delivery.http.WeeklySummary: %v", err)
		h.writeRequestError(c, err)
		return
	}

	summary, err := h.uc.Summarize(ctx, sc, req.days())
	if err != nil {
		h.l.Errorf(ctx, "uc.Summarize: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newSummaryResp(summary))
}

// Verify godoc
// @Summary     Register a user
// @Description Makes sure a user exists for the phone number. No code is checked.
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       body body verifyReq true "Phone number"
// @Success     200 {object} userResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/verify [POST]
func (h *handler) Verify(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processVerifyReq(c)
	if err != nil {
		h.l.Warnf(ctx, "internal.health.delivery.http.Verify: %v", err)
		h.writeRequestError(c, err)
		return
	}

	user, err := h.uc.RegisterUser(ctx, model.Scope{UserID: strings.TrimSpace(req.PhoneNumber)})
	if err != nil {
		h.l.Errorf(ctx, "uc.RegisterUser: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newUserResp(user))
}

func wantsJSON(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "application/json")
}
