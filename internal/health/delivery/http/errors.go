package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"health-tracker/internal/health"
	"health-tracker/pkg/response"
)

var (
	errUnauthenticated = errors.New("missing caller scope")
	errBadRequest      = errors.New("sorry, that request could not be read, please check it and try again")
)

// mapError returns the client-facing error, or nil when err must stay internal.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, health.ErrEmptyUserID),
		errors.Is(err, health.ErrEmptyInput),
		errors.Is(err, errUnauthenticated):
		return err
	default:
		return nil
	}
}

func (h *handler) writeError(c *gin.Context, err error) {
	if mapped := h.mapError(err); mapped != nil {
		response.Error(c, mapped, nil)
		return
	}
	response.InternalError(c, err)
}

// writeRequestError answers 400 for a request that failed binding or
// validation. Binding details stay in the log.
func (h *handler) writeRequestError(c *gin.Context, err error) {
	if mapped := h.mapError(err); mapped != nil {
		response.Error(c, mapped, nil)
		return
	}
	response.Error(c, errBadRequest, nil)
}
