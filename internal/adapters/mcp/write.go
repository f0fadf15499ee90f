package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"snipkit/internal/application"
	"snipkit/internal/application/commands"
)

// RegisterWriteTools adds the tools that write the registry or install files.
func RegisterWriteTools(s *server.MCPServer, deps Deps) {
	s.AddTool(buildTool(), buildHandler(deps))
	s.AddTool(installTool(), installHandler(deps))
}

// --- build_registry ---

func buildTool() mcp.Tool {
	return mcp.NewTool("build_registry",
		mcp.WithDescription("Rebuild the registry from the snippet source directory. Every subdirectory becomes one snippet."),
		mcp.WithString("source",
			mcp.Description("Source directory. Defaults to the configured source directory."),
		),
	)
}

func buildHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		source := req.GetString("source", deps.SourceDir)

		result, err := commands.NewBuildCommand(deps.Scanner, deps.Store, source, deps.RegistryPath).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- install_snippets ---

func installTool() mcp.Tool {
	return mcp.NewTool("install_snippets",
		mcp.WithDescription("Copy snippets into the destination directory. Existing files are skipped unless overwrite is true. Run plan_install first to see how many files would be overwritten."),
		namesParam(),
		destParam(),
		renamesParam(),
		mcp.WithBoolean("overwrite",
			mcp.Description("Replace files that already exist"),
		),
	)
}

func installHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		renames, err := application.ParseRenames(req.GetStringSlice("renames", nil))
		if err != nil {
			return toolError(err)
		}

		cmd := commands.NewInstallCommand(
			deps.Store,
			deps.Dest,
			deps.RegistryPath,
			req.GetStringSlice("names", nil),
			req.GetString("dest", deps.DestRoot),
			req.GetBool("overwrite", false),
			renames,
		)
		if deps.Journal != nil {
			cmd.WithJournal(deps.Journal)
		}

		results, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(fmt.Errorf("%s%w", formatResults(results), err))
		}
		return mcp.NewToolResultText(formatResults(results)), nil
	}
}
