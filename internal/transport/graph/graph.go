package graph

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	domaingraph "github.com/alanyang/gaas-console/internal/domain/graph"
	graphsvc "github.com/alanyang/gaas-console/internal/service/graph"
	"github.com/alanyang/gaas-console/internal/transport/httperr"
)

func Register(rg *gin.RouterGroup, svc *graphsvc.Service) {
	registerValidations()

	rg.POST("/", createGraph(svc))
	rg.GET("/", listGraphs(svc))
	rg.GET("/:id", getGraph(svc))
	rg.DELETE("/:id", deleteGraph(svc))
}

var validationsOnce sync.Once

// registerValidations teaches gin's validator the graph id and store type rules.
func registerValidations() {
	validationsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("graphid", func(fl validator.FieldLevel) bool {
			return domaingraph.IsValidID(fl.Field().String())
		})
		_ = v.RegisterValidation("storetype", func(fl validator.FieldLevel) bool {
			return domaingraph.StoreType(fl.Field().String()).Valid()
		})
	})
}

type createGraphReq struct {
	GraphID     string `json:"graphId" binding:"required,graphid"`
	Description string `json:"description" binding:"required"`
	StoreType   string `json:"storeType" binding:"required,storetype"`
}

// bindDetails turns binding failures into the API's "Validation failed" details.
func bindDetails(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Malformed request body"
	}
	fe := verrs[0]
	switch fe.Field() {
	case "GraphID":
		if fe.Tag() == "required" {
			return domaingraph.DetailIDRequired
		}
		return domaingraph.DetailIDCharset
	case "Description":
		return domaingraph.DetailDescriptionRequired
	case "StoreType":
		return "Store type should be one of mapStore, accumulo, federatedStore"
	}
	return fe.Error()
}

func createGraph(svc *graphsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createGraphReq
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.Validation(c, bindDetails(err))
			return
		}

		g, err := svc.Create(c.Request.Context(), req.GraphID, req.Description, domaingraph.StoreType(req.StoreType))
		if err != nil {
			httperr.Write(c, err)
			return
		}
		c.JSON(http.StatusCreated, g)
	}
}

func listGraphs(svc *graphsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		graphs, err := svc.List(c.Request.Context())
		if err != nil {
			httperr.Write(c, err)
			return
		}
		c.JSON(http.StatusOK, graphs)
	}
}

func getGraph(svc *graphsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		g, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			httperr.Write(c, err)
			return
		}
		c.JSON(http.StatusOK, g)
	}
}

func deleteGraph(svc *graphsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			httperr.Write(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
