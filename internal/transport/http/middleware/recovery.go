package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resp "shuttle-checkin/internal/transport/http/response"
)

// OnPanic answers a recovered panic with the generic 500 body. The stack trace is
// logged by the recovery middleware that calls it.
func OnPanic(c *gin.Context, _ any) {
	resp.Abort(c, http.StatusInternalServerError, "")
}

func abortTooLarge(c *gin.Context) {
	resp.Abort(c, http.StatusRequestEntityTooLarge, "")
}
