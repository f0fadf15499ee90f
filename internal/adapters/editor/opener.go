package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"snipkit/internal/ports"
)

// fallbacks are tried in order when neither $VISUAL nor $EDITOR is set
var fallbacks = []string{"nvim", "vim", "vi", "nano"}

// Opener implements ports.Editor
type Opener struct {
	getenv   func(string) string
	lookPath func(string) (string, error)
}

// Ensure Opener implements the port
var _ ports.Editor = (*Opener)(nil)

// NewOpener creates an opener that reads the environment of this process
func NewOpener() *Opener {
	return &Opener{getenv: os.Getenv, lookPath: exec.LookPath}
}

// Command returns the editor invocation for path, attached to this
// process's terminal. Editor variables may carry arguments ("code -w").
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	argv, err := o.resolve()
	if err != nil {
		return nil, err
	}

	cmd := exec.Command(argv[0], append(argv[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd, nil
}

func (o *Opener) resolve() ([]string, error) {
	for _, name := range []string{"VISUAL", "EDITOR"} {
		if argv := strings.Fields(o.getenv(name)); len(argv) > 0 {
			return argv, nil
		}
	}

	for _, name := range fallbacks {
		if path, err := o.lookPath(name); err == nil {
			return []string{path}, nil
		}
	}
	return nil, fmt.Errorf("no editor found: set $EDITOR")
}
