package http

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"health-tracker/internal/middleware"
	"health-tracker/internal/model"
)

// processMessageReq binds a Twilio form post or a JSON body, by content type.
func (h *handler) processMessageReq(c *gin.Context) (messageReq, error) {
	var req messageReq
	var err error
	if c.ContentType() == binding.MIMEJSON {
		err = c.ShouldBindJSON(&req)
	} else {
		err = c.ShouldBindWith(&req, binding.Form)
	}
	if err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processLogsReq(c *gin.Context) (model.Scope, logsReq, error) {
	var req logsReq
	sc, ok := middleware.GetScope(c)
	if !ok {
		return sc, req, errUnauthenticated
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return sc, req, err
	}
	return sc, req, nil
}

func (h *handler) processSummaryReq(c *gin.Context) (model.Scope, summaryReq, error) {
	var req summaryReq
	sc, ok := middleware.GetScope(c)
	if !ok {
		return sc, req, errUnauthenticated
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return sc, req, err
	}
	return sc, req, nil
}

func (h *handler) processVerifyReq(c *gin.Context) (verifyReq, error) {
	var req verifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
