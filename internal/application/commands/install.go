package commands

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"snipkit/internal/application"
	"snipkit/internal/domain"
	"snipkit/internal/logging"
	"snipkit/internal/ports"
)

// InstallCommand copies requested snippets into a destination tree.
//
// Items and files are processed sequentially in request order. An unknown
// name or a failed write stops the run; everything written before that stays
// written and is reported in the returned results alongside the error.
type InstallCommand struct {
	store   ports.RegistryStore
	dest    ports.Destination
	journal ports.InstallJournal
	logger  zerolog.Logger

	RegistryPath string
	Names        []string
	DestRoot     string
	Overwrite    bool
	Renames      domain.Renames
}

// NewInstallCommand creates a new InstallCommand
func NewInstallCommand(store ports.RegistryStore, dest ports.Destination, registryPath string, names []string, destRoot string, overwrite bool, renames domain.Renames) *InstallCommand {
	return &InstallCommand{
		store:        store,
		dest:         dest,
		logger:       logging.GetLogger("installer"),
		RegistryPath: registryPath,
		Names:        names,
		DestRoot:     destRoot,
		Overwrite:    overwrite,
		Renames:      renames,
	}
}

// WithJournal records every run in j once it ends
func (c *InstallCommand) WithJournal(j ports.InstallJournal) *InstallCommand {
	c.journal = j
	return c
}

// Validate checks if the install command is valid
func (c *InstallCommand) Validate() error {
	if err := application.ValidateRequired("registryPath", c.RegistryPath); err != nil {
		return err
	}
	return application.ValidateRequired("destRoot", c.DestRoot)
}

// Execute runs the install command. Results are returned even when err is
// non-nil.
func (c *InstallCommand) Execute(ctx context.Context) ([]domain.InstallResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	defer logging.LogOperationStart(c.logger, "install")()

	started := time.Now()
	results, err := c.run(ctx)
	c.record(ctx, started, results, err)
	return results, err
}

func (c *InstallCommand) run(ctx context.Context) ([]domain.InstallResult, error) {
	reg, err := c.store.Load(c.RegistryPath)
	if err != nil {
		return nil, err
	}

	results := make([]domain.InstallResult, 0, len(c.Names))
	for _, name := range c.Names {
		item, err := reg.Lookup(name)
		if err != nil {
			return results, err
		}

		res, err := c.installItem(ctx, name, item)
		results = append(results, res)
		if err != nil {
			return results, err
		}

		c.logger.Info().
			Str("snippet", name).
			Int("written", res.Written).
			Int("skipped", res.Skipped).
			Msg("Installed snippet")
	}

	return results, nil
}

func (c *InstallCommand) installItem(ctx context.Context, name string, item domain.RegistryItem) (domain.InstallResult, error) {
	res := domain.NewInstallResult(name)

	for i, outRel := range item.OutputPaths(c.Renames.For(name)) {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		exists, err := c.dest.Exists(c.DestRoot, outRel)
		if err != nil {
			return res, err
		}

		if exists && !c.Overwrite {
			c.logger.Debug().Str("snippet", name).Str("path", outRel).Msg("Skipping existing file")
			res.RecordSkip(outRel)
			continue
		}

		if err := c.dest.WriteFile(c.DestRoot, outRel, item.Files[i].Content); err != nil {
			return res, err
		}
		c.logger.Debug().Str("snippet", name).Str("path", outRel).Bool("replaced", exists).Msg("Wrote file")
		res.RecordWrite()
	}

	return res, nil
}

// record stores the run in the journal. Journal failures never change the
// install outcome.
func (c *InstallCommand) record(ctx context.Context, started time.Time, results []domain.InstallResult, runErr error) {
	if c.journal == nil {
		return
	}

	run := domain.InstallRun{
		StartedAt: started,
		Registry:  c.RegistryPath,
		DestRoot:  c.DestRoot,
		Overwrite: c.Overwrite,
		Results:   results,
	}
	if runErr != nil {
		run.Error = runErr.Error()
	}

	if err := c.journal.Record(context.WithoutCancel(ctx), run); err != nil {
		c.logger.Warn().Err(err).Msg("Failed to record install run")
	}
}
