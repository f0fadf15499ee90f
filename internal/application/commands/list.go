package commands

import (
	"context"

	"snipkit/internal/application"
	"snipkit/internal/ports"
)

// ListCommand lists the snippet names of a registry, sorted
type ListCommand struct {
	store        ports.RegistryStore
	RegistryPath string
}

// NewListCommand creates a new ListCommand
func NewListCommand(store ports.RegistryStore, registryPath string) *ListCommand {
	return &ListCommand{store: store, RegistryPath: registryPath}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context) ([]string, error) {
	if err := application.ValidateRequired("registryPath", c.RegistryPath); err != nil {
		return nil, err
	}

	reg, err := c.store.Load(c.RegistryPath)
	if err != nil {
		return nil, err
	}
	return reg.Names(), nil
}
