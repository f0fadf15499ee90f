package commands

import (
	"context"
	"strings"

	"snipkit/internal/application"
	"snipkit/internal/domain"
	"snipkit/internal/ports"
)

// ShowResult holds one snippet as stored in the registry
type ShowResult struct {
	Name string
	Item domain.RegistryItem
}

// ClipboardText returns the content to copy for the snippet. Single-file
// snippets copy their content as is; others are concatenated under
// "// path" headers.
func (r *ShowResult) ClipboardText() string {
	if r.Item.IsSingleFile() {
		return r.Item.Files[0].Content
	}

	var sb strings.Builder
	for i, f := range r.Item.Files {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("// ")
		sb.WriteString(f.Path)
		sb.WriteString("\n")
		sb.WriteString(f.Content)
		if !strings.HasSuffix(f.Content, "\n") {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// ShowCommand looks up a single snippet
type ShowCommand struct {
	store        ports.RegistryStore
	RegistryPath string
	Name         string
}

// NewShowCommand creates a new ShowCommand
func NewShowCommand(store ports.RegistryStore, registryPath, name string) *ShowCommand {
	return &ShowCommand{store: store, RegistryPath: registryPath, Name: name}
}

// Validate checks if the show command is valid
func (c *ShowCommand) Validate() error {
	if err := application.ValidateRequired("registryPath", c.RegistryPath); err != nil {
		return err
	}
	return application.ValidateRequired("name", c.Name)
}

// Execute runs the show command
func (c *ShowCommand) Execute(ctx context.Context) (*ShowResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	reg, err := c.store.Load(c.RegistryPath)
	if err != nil {
		return nil, err
	}

	item, err := reg.Lookup(c.Name)
	if err != nil {
		return nil, err
	}
	return &ShowResult{Name: c.Name, Item: item}, nil
}
