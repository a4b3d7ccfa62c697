package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "launchpad/internal/adapters/mcp"
	"launchpad/internal/config"
)

func main() {
	siteFlag := flag.String("site", config.SiteDir(), "default directory to scan")
	flag.Parse()

	mcpServer := server.NewMCPServer(
		"launchpad-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check that returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterTools(mcpServer, *siteFlag)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("launchpad-mcp: %v", err)
	}
}
