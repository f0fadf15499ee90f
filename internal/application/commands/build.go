package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"snipkit/internal/application"
	"snipkit/internal/domain"
	"snipkit/internal/logging"
	"snipkit/internal/ports"
)

// BuildResult contains the result of a build operation
type BuildResult struct {
	Registry domain.Registry
	Snippets int
	Files    int
	Message  string
}

// BuildCommand scans a source tree and persists the resulting registry
type BuildCommand struct {
	scanner      ports.SourceScanner
	store        ports.RegistryStore
	logger       zerolog.Logger
	SourceRoot   string
	RegistryPath string
}

// NewBuildCommand creates a new BuildCommand
func NewBuildCommand(scanner ports.SourceScanner, store ports.RegistryStore, sourceRoot, registryPath string) *BuildCommand {
	return &BuildCommand{
		scanner:      scanner,
		store:        store,
		logger:       logging.GetLogger("build"),
		SourceRoot:   sourceRoot,
		RegistryPath: registryPath,
	}
}

// Validate checks if the build command is valid
func (c *BuildCommand) Validate() error {
	if err := application.ValidateRequired("sourceRoot", c.SourceRoot); err != nil {
		return err
	}
	return application.ValidateRequired("registryPath", c.RegistryPath)
}

// Execute runs the build command
func (c *BuildCommand) Execute(ctx context.Context) (*BuildResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	defer logging.LogOperationStart(c.logger, "build")()

	reg, err := c.scanner.Scan(ctx, c.SourceRoot)
	if err != nil {
		return nil, err
	}

	if err := c.store.Save(c.RegistryPath, reg); err != nil {
		return nil, err
	}

	return &BuildResult{
		Registry: reg,
		Snippets: len(reg),
		Files:    reg.FileCount(),
		Message:  fmt.Sprintf("Wrote %s (%d snippets, %d files)", c.RegistryPath, len(reg), reg.FileCount()),
	}, nil
}
