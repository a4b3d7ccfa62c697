package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"launchpad/internal/adapters/filesystem"
	"launchpad/internal/application"
	"launchpad/internal/application/commands"
	"launchpad/internal/domain"
)

// RegisterTools adds the launcher-page tools to the MCP server.
// defaultDir is used when a tool call omits the source directory.
func RegisterTools(s *server.MCPServer, defaultDir string) {
	s.AddTool(scanTool(), scanHandler(defaultDir))
	s.AddTool(generateTool(), generateHandler(defaultDir))
}

// --- scan ---

func scanTool() mcp.Tool {
	return mcp.NewTool("scan",
		mcp.WithDescription("List the launcher cards that would be generated for a directory tree, without writing anything."),
		mcp.WithString("source",
			mcp.Description("Directory to scan for .html files. Defaults to the configured site directory."),
		),
		mcp.WithString("output",
			mcp.Description("Directory the index would be written to (hrefs are computed relative to it). Defaults to the source directory."),
		),
	)
}

func scanHandler(defaultDir string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		source, output, err := resolveDirs(req, defaultDir)
		if err != nil {
			return toolError(err)
		}

		repo := filesystem.NewRepository(source, output)
		cards, err := commands.NewScanCommand(repo).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if len(cards) == 0 {
			return mcp.NewToolResultText("No pages found."), nil
		}

		var sb strings.Builder
		for _, c := range cards {
			fmt.Fprintf(&sb, "%s  %s  %s\n", c.Icon, c.DisplayName, c.Href)
		}
		fmt.Fprintf(&sb, "\n%d pages\n", len(cards))
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- generate ---

func generateTool() mcp.Tool {
	return mcp.NewTool("generate",
		mcp.WithDescription("Generate index.html: scan a directory tree for .html files and write a launcher page linking to each of them."),
		mcp.WithString("source",
			mcp.Description("Directory to scan for .html files. Defaults to the configured site directory."),
		),
		mcp.WithString("output",
			mcp.Description("Directory to write index.html into. Defaults to the source directory."),
		),
	)
}

func generateHandler(defaultDir string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		source, output, err := resolveDirs(req, defaultDir)
		if err != nil {
			return toolError(err)
		}

		repo := filesystem.NewRepository(source, output)
		result, err := commands.NewGenerateCommand(repo, nil).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(
			fmt.Sprintf("Generated %s with %d pages: %s", domain.IndexFileName, result.Count, result.OutputPath),
		), nil
	}
}

// --- helpers ---

func resolveDirs(req mcp.CallToolRequest, defaultDir string) (source, output string, err error) {
	source = req.GetString("source", defaultDir)
	output = req.GetString("output", source)

	if err := application.ValidateRequired("sourceDir", source); err != nil {
		return "", "", err
	}
	if err := application.ValidateRequired("outputDir", output); err != nil {
		return "", "", err
	}
	return source, output, nil
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
