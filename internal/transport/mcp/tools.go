package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	mcpmcp "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	domaingraph "github.com/alanyang/gaas-console/internal/domain/graph"
	"github.com/alanyang/gaas-console/internal/port/rest"
	graphsvc "github.com/alanyang/gaas-console/internal/service/graph"
	namespacesvc "github.com/alanyang/gaas-console/internal/service/namespace"
)

func RegisterTools(s *mcpserver.MCPServer, graphSvc *graphsvc.Service, nsSvc *namespacesvc.Service) {
	storeTypes := make([]string, 0, len(domaingraph.StoreTypes()))
	for _, st := range domaingraph.StoreTypes() {
		storeTypes = append(storeTypes, st.String())
	}

	s.AddTool(mcpmcp.NewTool("create_graph",
		mcpmcp.WithDescription("Create a simple graph on the GaaS platform."),
		mcpmcp.WithString("graph_id", mcpmcp.Required(), mcpmcp.Description("Graph id: lowercase letters, digits and _ only")),
		mcpmcp.WithString("description", mcpmcp.Required(), mcpmcp.Description("Free-text description")),
		mcpmcp.WithString("store_type", mcpmcp.Required(), mcpmcp.Description("Backing store"), mcpmcp.Enum(storeTypes...)),
	), createGraphHandler(graphSvc))

	s.AddTool(mcpmcp.NewTool("get_graph",
		mcpmcp.WithDescription("Fetch a single graph by id."),
		mcpmcp.WithString("graph_id", mcpmcp.Required(), mcpmcp.Description("Graph id")),
	), getGraphHandler(graphSvc))

	s.AddTool(mcpmcp.NewTool("list_graphs",
		mcpmcp.WithDescription("List every graph the platform knows about."),
	), listGraphsHandler(graphSvc))

	s.AddTool(mcpmcp.NewTool("delete_graph",
		mcpmcp.WithDescription("Delete a graph by id."),
		mcpmcp.WithString("graph_id", mcpmcp.Required(), mcpmcp.Description("Graph id")),
	), deleteGraphHandler(graphSvc))

	s.AddTool(mcpmcp.NewTool("list_namespaces",
		mcpmcp.WithDescription("List the namespaces available for graph creation."),
	), listNamespacesHandler(nsSvc))
}

// ── Tool handlers ─────────────────────────────────────────────────────────

func createGraphHandler(svc *graphsvc.Service) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		graphID := mcpmcp.ParseString(req, "graph_id", "")
		description := mcpmcp.ParseString(req, "description", "")
		storeType := mcpmcp.ParseString(req, "store_type", "")

		g, err := svc.Create(ctx, strings.TrimSpace(graphID), description, domaingraph.StoreType(storeType))
		if err != nil {
			return errorResult(err), nil
		}
		return jsonResult(g), nil
	}
}

func getGraphHandler(svc *graphsvc.Service) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		graphID := mcpmcp.ParseString(req, "graph_id", "")
		if graphID == "" {
			return mcpmcp.NewToolResultText("error: graph_id is required"), nil
		}

		g, err := svc.Get(ctx, graphID)
		if err != nil {
			return errorResult(err), nil
		}
		return jsonResult(g), nil
	}
}

func listGraphsHandler(svc *graphsvc.Service) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, _ mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		graphs, err := svc.List(ctx)
		if err != nil {
			return errorResult(err), nil
		}
		if graphs == nil {
			return mcpmcp.NewToolResultText("[]"), nil
		}
		return jsonResult(graphs), nil
	}
}

func deleteGraphHandler(svc *graphsvc.Service) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		graphID := mcpmcp.ParseString(req, "graph_id", "")
		if graphID == "" {
			return mcpmcp.NewToolResultText("error: graph_id is required"), nil
		}

		if err := svc.Delete(ctx, graphID); err != nil {
			return errorResult(err), nil
		}
		return mcpmcp.NewToolResultText(fmt.Sprintf("deleted %s", graphID)), nil
	}
}

func listNamespacesHandler(svc *namespacesvc.Service) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, _ mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		ns, err := svc.List(ctx)
		if err != nil {
			return errorResult(err), nil
		}
		if ns == nil {
			return mcpmcp.NewToolResultText("[]"), nil
		}
		return jsonResult(ns), nil
	}
}

func jsonResult(v any) *mcpmcp.CallToolResult {
	data, _ := json.Marshal(v)
	return mcpmcp.NewToolResultText(string(data))
}

// errorResult reports failures as tool output so the model can react to them.
func errorResult(err error) *mcpmcp.CallToolResult {
	var verr *domaingraph.ValidationError
	if errors.As(err, &verr) {
		return mcpmcp.NewToolResultText("error: " + verr.Detail)
	}
	var apiErr *rest.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return mcpmcp.NewToolResultText(fmt.Sprintf("error: %d %s", apiErr.StatusCode, apiErr.Message))
	}
	return mcpmcp.NewToolResultText(fmt.Sprintf("error: %s", err))
}
