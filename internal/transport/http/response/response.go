package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shuttle-checkin/internal/service"
)

// Resp is the body of every failed request.
type Resp struct {
	Error string `json:"error"`
}

// Error builds the body for status; an empty msg falls back to StatusMsg.
func Error(status int, msg string) Resp {
	if msg == "" {
		msg = StatusMsg[status]
	}
	return Resp{Error: msg}
}

func Abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, Error(status, msg))
}

// StatusOf maps a service error to its HTTP status. The bool is false for unexpected
// errors, whose message must not reach the client.
func StatusOf(err error) (int, bool) {
	switch service.KindOf(err) {
	case service.KindValidation, service.KindRule:
		return http.StatusBadRequest, true
	case service.KindUnauthenticated:
		return http.StatusUnauthorized, true
	case service.KindForbidden:
		return http.StatusForbidden, true
	case service.KindNotFound:
		return http.StatusNotFound, true
	}
	return http.StatusInternalServerError, false
}

// FromError writes err. Unexpected errors get the generic 500 body.
func FromError(c *gin.Context, err error) {
	status, known := StatusOf(err)
	if !known {
		Abort(c, status, "")
		return
	}
	Abort(c, status, err.Error())
}
