package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"snipkit/internal/adapters/filesystem"
	mcpadapter "snipkit/internal/adapters/mcp"
	"snipkit/internal/adapters/sqlite"
	"snipkit/internal/config"
	"snipkit/internal/logging"
)

func main() {
	registryFlag := flag.String("registry", "", "path to the registry file (default from config)")
	verbosity := flag.Int("v", 0, "log verbosity written to the log file (0-3)")
	flag.Parse()

	// stdout carries the protocol
	logging.SetupFileLogger(*verbosity)
	logger := logging.GetLogger("mcp")

	wd, err := os.Getwd()
	if err != nil {
		log.Fatalf("snipkit-mcp: %v", err)
	}
	cfg, err := config.Load(wd)
	if err != nil {
		log.Fatalf("snipkit-mcp: %v", err)
	}
	if *registryFlag != "" {
		cfg.Registry.Path = *registryFlag
	}

	deps := mcpadapter.Deps{
		Store:        filesystem.NewStore(),
		Dest:         filesystem.NewDestination(),
		Scanner:      filesystem.NewBuilder(cfg.Build.ReadConcurrency),
		RegistryPath: cfg.Registry.Path,
		SourceDir:    cfg.Source.Dir,
		DestRoot:     cfg.Install.Dest,
	}
	if cfg.History.Enabled {
		j := sqlite.NewJournal()
		if err := j.Open(cfg.History.Path); err != nil {
			logger.Warn().Err(err).Msg("Install history unavailable")
		} else {
			defer j.Close()
			deps.Journal = j
		}
	}

	mcpServer := server.NewMCPServer(
		"snipkit-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, deps)
	mcpadapter.RegisterWriteTools(mcpServer, deps)

	logger.Info().Str("registry", cfg.Registry.Path).Msg("Serving on stdio")
	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("snipkit-mcp: %v", err)
	}
}
