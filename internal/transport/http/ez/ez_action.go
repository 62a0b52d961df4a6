package ez

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shuttle-checkin/internal/service"
	resp "shuttle-checkin/internal/transport/http/response"
)

// Groups are the three access tiers a module mounts its routes into.
type Groups struct {
	Public  *gin.RouterGroup
	Session *gin.RouterGroup
	Admin   *gin.RouterGroup
}

type Binder string

const (
	BindJSON  Binder = "json"
	BindQuery Binder = "query"
	BindNone  Binder = "none" // path params only, read inside the handler
)

// Action is one route: I is bound from the request, O is written as JSON.
type Action[I any, O any] struct {
	Method  string
	Path    string
	Binder  Binder
	Status  int // success status, 200 when zero; 204 writes no body
	Handler func(c *gin.Context, in *I) (O, error)
}

type EZ struct {
	g   gin.IRoutes
	log *zap.Logger
}

func New(g gin.IRoutes, l *zap.Logger) EZ {
	if l == nil {
		l = zap.NewNop()
	}
	return EZ{g: g, log: l}
}

// Register mounts a on e. Binding failures become one 400 message, service errors
// map through their kind, anything else is logged and answered with a bare 500.
func Register[I any, O any](e EZ, a Action[I, O]) {
	status := a.Status
	if status == 0 {
		status = http.StatusOK
	}
	h := func(c *gin.Context) {
		var in I
		var err error
		switch a.Binder {
		case BindJSON:
			err = c.ShouldBindJSON(&in)
		case BindQuery:
			err = c.ShouldBindQuery(&in)
		}
		if err != nil {
			resp.Abort(c, http.StatusBadRequest, BindMessage(err))
			return
		}

		out, err := a.Handler(c, &in)
		if err != nil {
			e.fail(c, err)
			return
		}
		if status == http.StatusNoContent {
			c.Status(status)
			return
		}
		c.JSON(status, out)
	}
	e.g.Handle(strings.ToUpper(a.Method), a.Path, h)
}

func (e EZ) fail(c *gin.Context, err error) {
	if _, known := resp.StatusOf(err); !known {
		e.log.Error("request failed",
			zap.String("rid", c.GetString("rid")),
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err))
	}
	resp.FromError(c, err)
}

// ParamID reads a positive integer path parameter.
func ParamID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, service.Validation("Identificador inválido")
	}
	return id, nil
}
