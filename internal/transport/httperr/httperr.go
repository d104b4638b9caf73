package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domaingraph "github.com/alanyang/gaas-console/internal/domain/graph"
	"github.com/alanyang/gaas-console/internal/port/rest"
)

// Body mirrors the GaaS API error shape so the UI handles both the same way.
type Body struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

const MessageValidationFailed = "Validation failed"

func Validation(c *gin.Context, details string) {
	c.JSON(http.StatusBadRequest, Body{Message: MessageValidationFailed, Details: details})
}

// Write maps err to a response: local validation → 400, upstream API errors
// keep their status and message, anything else → 502.
func Write(c *gin.Context, err error) {
	var verr *domaingraph.ValidationError
	if errors.As(err, &verr) {
		Validation(c, verr.Detail)
		return
	}

	var apiErr *rest.Error
	if errors.As(err, &apiErr) {
		msg := apiErr.Message
		if msg == "" {
			msg = http.StatusText(apiErr.StatusCode)
		}
		c.JSON(apiErr.StatusCode, Body{Message: msg, Details: apiErr.Details})
		return
	}

	c.JSON(http.StatusBadGateway, Body{Message: err.Error()})
}
