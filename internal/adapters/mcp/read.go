package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"snipkit/internal/application"
	"snipkit/internal/application/commands"
	"snipkit/internal/domain"
	"snipkit/internal/ports"
)

// Deps carries the adapters and defaults the tools run against
type Deps struct {
	Store   ports.RegistryStore
	Dest    ports.Destination
	Scanner ports.SourceScanner
	Journal ports.InstallJournal // optional

	RegistryPath string
	SourceDir    string
	DestRoot     string
}

// RegisterReadTools adds all read-only registry tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, deps Deps) {
	s.AddTool(listTool(), listHandler(deps))
	s.AddTool(showTool(), showHandler(deps))
	s.AddTool(planTool(), planHandler(deps))
}

// --- list_snippets ---

func listTool() mcp.Tool {
	return mcp.NewTool("list_snippets",
		mcp.WithDescription("List the snippet names in the registry, sorted."),
	)
}

func listHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		names, err := commands.NewListCommand(deps.Store, deps.RegistryPath).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(names) == 0 {
			return mcp.NewToolResultText("Registry is empty."), nil
		}
		return mcp.NewToolResultText(strings.Join(names, "\n")), nil
	}
}

// --- show_snippet ---

func showTool() mcp.Tool {
	return mcp.NewTool("show_snippet",
		mcp.WithDescription("Show the files of one snippet with their contents."),
		mcp.WithString("name",
			mcp.Description("Snippet name"),
			mcp.Required(),
		),
	)
}

func showHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := req.GetString("name", "")

		result, err := commands.NewShowCommand(deps.Store, deps.RegistryPath, name).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		for _, f := range result.Item.Files {
			fmt.Fprintf(&sb, "--- %s\n%s", f.Path, f.Content)
			if !strings.HasSuffix(f.Content, "\n") {
				sb.WriteByte('\n')
			}
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- plan_install ---

func planTool() mcp.Tool {
	return mcp.NewTool("plan_install",
		mcp.WithDescription("Count how many existing files installing the snippets would collide with. Writes nothing; unknown names are ignored."),
		namesParam(),
		destParam(),
		renamesParam(),
	)
}

func planHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		renames, err := application.ParseRenames(req.GetStringSlice("renames", nil))
		if err != nil {
			return toolError(err)
		}
		dest := req.GetString("dest", deps.DestRoot)

		plan, err := commands.NewPlanCommand(deps.Store, deps.Dest, deps.RegistryPath, req.GetStringSlice("names", nil), dest, renames).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("%d existing file(s) in %s would be overwritten", plan.Collisions, dest)), nil
	}
}

// --- helpers ---

func namesParam() mcp.ToolOption {
	return mcp.WithArray("names",
		mcp.Description("Snippet names, in install order"),
		mcp.Required(),
		mcp.Items(map[string]any{"type": "string"}),
	)
}

func destParam() mcp.ToolOption {
	return mcp.WithString("dest",
		mcp.Description("Destination directory. Defaults to the configured install destination."),
	)
}

func renamesParam() mcp.ToolOption {
	return mcp.WithArray("renames",
		mcp.Description("Optional NAME=LEAF pairs renaming the file of single-file snippets (e.g. button=Btn)"),
		mcp.Items(map[string]any{"type": "string"}),
	)
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatResults(results []domain.InstallResult) string {
	var sb strings.Builder
	for _, r := range results {
		fmt.Fprintf(&sb, "%s: written=%d skipped=%d\n", r.Name, r.Written, r.Skipped)
		for _, c := range r.Collisions {
			fmt.Fprintf(&sb, "  skipped %s\n", c)
		}
	}
	return sb.String()
}
