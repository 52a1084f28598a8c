package http

import (
	"errors"
	"net/http"
	"strings"

	"craftledger/pkg/logger"
	"craftledger/services/api/internal/entity"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every API route answers with.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func respond(c *gin.Context, status int, data interface{}) {
	c.JSON(status, Response{Success: true, Data: data})
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, Response{Error: entity.ErrValidation.Error() + ": " + err.Error()})
}

// respondError maps domain errors to status codes. Anything unrecognized is
// logged and hidden behind a generic message.
func respondError(c *gin.Context, log *logger.Logger, err error) {
	switch {
	case errors.Is(err, entity.ErrValidation),
		errors.Is(err, entity.ErrInsufficientBalance),
		errors.Is(err, entity.ErrPayoutExceedsBalance):
		c.JSON(http.StatusBadRequest, Response{Error: rootMessage(err)})
	case errors.Is(err, entity.ErrNotFound):
		c.JSON(http.StatusNotFound, Response{Error: rootMessage(err)})
	default:
		log.Error("Request %s %s failed: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, Response{Error: "internal server error"})
	}
}

// rootMessage drops the "failed to ..." context added on the way up.
func rootMessage(err error) string {
	for strings.HasPrefix(err.Error(), "failed to ") {
		next := errors.Unwrap(err)
		if next == nil {
			break
		}
		err = next
	}
	return err.Error()
}
