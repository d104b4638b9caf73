package mcp

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/alanyang/gaas-console/internal/domain/event"
	graphsvc "github.com/alanyang/gaas-console/internal/service/graph"
	namespacesvc "github.com/alanyang/gaas-console/internal/service/namespace"
)

const (
	serverName    = "gaas-console"
	serverVersion = "1.0.0"

	notificationMethod = "notifications/message"
)

// Server exposes the graph operations to MCP clients over streamable HTTP.
// Tools are registered in tools.go, prompts in prompts.go.
type Server struct {
	mcpSrv  *mcpserver.MCPServer
	httpSrv *mcpserver.StreamableHTTPServer
}

func New(graphSvc *graphsvc.Service, nsSvc *namespacesvc.Service) *Server {
	mcpSrv := mcpserver.NewMCPServer(
		serverName,
		serverVersion,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithPromptCapabilities(true),
	)

	RegisterTools(mcpSrv, graphSvc, nsSvc)
	RegisterPrompts(mcpSrv)

	return &Server{
		mcpSrv:  mcpSrv,
		httpSrv: mcpserver.NewStreamableHTTPServer(mcpSrv),
	}
}

// Handler returns an http.Handler that serves the MCP endpoint.
func (s *Server) Handler() http.Handler {
	return s.httpSrv
}

// MCPServer exposes the underlying server, mostly for in-process clients.
func (s *Server) MCPServer() *mcpserver.MCPServer {
	return s.mcpSrv
}

// Broadcast pushes a graph event to every connected session.
func (s *Server) Broadcast(e event.Event) {
	params, err := toParams(e)
	if err != nil {
		slog.Error("mcp: serialize notification", "error", err)
		return
	}
	s.mcpSrv.SendNotificationToAllClients(notificationMethod, params)
}

func toParams(v any) (map[string]any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}
	var params map[string]any
	if err := json.Unmarshal(data, &params); err != nil {
		return map[string]any{"data": v}, nil
	}
	return params, nil
}
