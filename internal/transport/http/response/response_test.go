package response

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"shuttle-checkin/internal/service"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err   error
		code  int
		known bool
	}{
		{service.ErrEmailTaken, http.StatusBadRequest, true},
		{service.Validation("campo"), http.StatusBadRequest, true},
		{service.ErrUnauthenticated, http.StatusUnauthorized, true},
		{service.ErrAdminOnly, http.StatusForbidden, true},
		{fmt.Errorf("get: %w", service.ErrTripNotFound), http.StatusNotFound, true},
		{errors.New("redis: connection refused"), http.StatusInternalServerError, false},
	}
	for _, tt := range tests {
		code, known := StatusOf(tt.err)
		assert.Equal(t, tt.code, code, tt.err.Error())
		assert.Equal(t, tt.known, known, tt.err.Error())
	}
}

func TestFromErrorHidesUnexpected(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	FromError(c, errors.New("redis: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Erro no servidor"}`, w.Body.String())

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	FromError(c, service.ErrTripUsed)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Viagem já utilizada"}`, w.Body.String())
}
