package mcp

import (
	"context"
	"fmt"
	"strings"

	mcpmcp "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	domaingraph "github.com/alanyang/gaas-console/internal/domain/graph"
)

const promptCreateGraph = "create_graph"

// RegisterPrompts registers the graph creation guide.
func RegisterPrompts(s *mcpserver.MCPServer) {
	s.AddPrompt(
		mcpmcp.NewPrompt(promptCreateGraph,
			mcpmcp.WithPromptDescription("Walks through the rules for creating a simple graph."),
			mcpmcp.WithArgument("purpose",
				mcpmcp.ArgumentDescription("What the graph will hold. Used to suggest an id and description."),
			),
		),
		createGraphPrompt,
	)
}

func createGraphPrompt(_ context.Context, req mcpmcp.GetPromptRequest) (*mcpmcp.GetPromptResult, error) {
	stores := make([]string, 0, len(domaingraph.StoreTypes()))
	for _, st := range domaingraph.StoreTypes() {
		stores = append(stores, st.String())
	}

	var b strings.Builder
	b.WriteString("Create a graph with the create_graph tool.\n")
	b.WriteString("- graph_id must be non-empty and use only lowercase letters, digits and _.\n")
	b.WriteString("- description must not be empty.\n")
	fmt.Fprintf(&b, "- store_type is one of: %s.\n", strings.Join(stores, ", "))
	if purpose := strings.TrimSpace(req.Params.Arguments["purpose"]); purpose != "" {
		fmt.Fprintf(&b, "The graph will hold: %s\n", purpose)
	}

	return mcpmcp.NewGetPromptResult(
		"Create a GaaS graph",
		[]mcpmcp.PromptMessage{
			mcpmcp.NewPromptMessage(
				mcpmcp.RoleUser,
				mcpmcp.TextContent{
					Type: "text",
					Text: b.String(),
				},
			),
		},
	), nil
}
