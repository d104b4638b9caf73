package namespace

import (
	"net/http"

	"github.com/gin-gonic/gin"

	namespacesvc "github.com/alanyang/gaas-console/internal/service/namespace"
	"github.com/alanyang/gaas-console/internal/transport/httperr"
)

func Register(rg *gin.RouterGroup, svc *namespacesvc.Service) {
	rg.GET("/", listNamespaces(svc))
}

func listNamespaces(svc *namespacesvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ns, err := svc.List(c.Request.Context())
		if err != nil {
			httperr.Write(c, err)
			return
		}
		if ns == nil {
			ns = []string{}
		}
		c.JSON(http.StatusOK, ns)
	}
}
