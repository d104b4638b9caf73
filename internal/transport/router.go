package transport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alanyang/gaas-console/internal/domain/event"
	porteventbus "github.com/alanyang/gaas-console/internal/port/eventbus"
	graphsvc "github.com/alanyang/gaas-console/internal/service/graph"
	namespacesvc "github.com/alanyang/gaas-console/internal/service/namespace"

	graphhandler "github.com/alanyang/gaas-console/internal/transport/graph"
	mcptransport "github.com/alanyang/gaas-console/internal/transport/mcp"
	nshandler "github.com/alanyang/gaas-console/internal/transport/namespace"
	wshandler "github.com/alanyang/gaas-console/internal/transport/ws"
)

func NewRouter(
	ctx context.Context,
	graphSvc *graphsvc.Service,
	nsSvc *namespacesvc.Service,
	mcpServer *mcptransport.Server,
	eventBus porteventbus.EventBus,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger())
	r.Use(CORSMiddleware())

	api := r.Group("/api")

	api.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
	graphhandler.Register(api.Group("/graphs"), graphSvc)
	nshandler.Register(api.Group("/namespaces"), nsSvc)

	hub := wshandler.NewHub()
	hub.Register(api.Group("/ws"))

	api.Any("/mcp", gin.WrapH(mcpServer.Handler()))

	// Every graph event goes to browsers and MCP sessions alike.
	for _, ch := range event.Channels() {
		c := ch
		if _, err := eventBus.Subscribe(ctx, c, func(_ context.Context, e event.Event) {
			hub.Broadcast(e)
			mcpServer.Broadcast(e)
		}); err != nil {
			slog.Error("failed to subscribe channel to WS hub", "channel", c, "error", err)
		}
	}

	return r
}
