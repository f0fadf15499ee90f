package commands

import (
	"context"

	"snipkit/internal/application"
	"snipkit/internal/domain"
	"snipkit/internal/ports"
)

// PlanCommand counts how many files an install would collide with. It never
// writes, and unknown snippet names contribute nothing.
type PlanCommand struct {
	store        ports.RegistryStore
	dest         ports.Destination
	RegistryPath string
	Names        []string
	DestRoot     string
	Renames      domain.Renames
}

// NewPlanCommand creates a new PlanCommand
func NewPlanCommand(store ports.RegistryStore, dest ports.Destination, registryPath string, names []string, destRoot string, renames domain.Renames) *PlanCommand {
	return &PlanCommand{
		store:        store,
		dest:         dest,
		RegistryPath: registryPath,
		Names:        names,
		DestRoot:     destRoot,
		Renames:      renames,
	}
}

// Validate checks if the plan command is valid
func (c *PlanCommand) Validate() error {
	if err := application.ValidateRequired("registryPath", c.RegistryPath); err != nil {
		return err
	}
	return application.ValidateRequired("destRoot", c.DestRoot)
}

// Execute runs the plan command
func (c *PlanCommand) Execute(ctx context.Context) (*domain.InstallPlan, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	// Always load fresh so the plan reflects the latest build
	reg, err := c.store.Load(c.RegistryPath)
	if err != nil {
		return nil, err
	}

	plan := &domain.InstallPlan{}
	for _, name := range c.Names {
		item, ok := reg[name]
		if !ok {
			continue
		}
		for _, outRel := range item.OutputPaths(c.Renames.For(name)) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			exists, err := c.dest.Exists(c.DestRoot, outRel)
			if err != nil {
				return nil, err
			}
			if exists {
				plan.Collisions++
			}
		}
	}

	return plan, nil
}
