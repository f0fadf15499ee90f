package ports

import "os/exec"

// Editor builds the command that opens a file in the user's editor. The TUI
// runs it through bubbletea's ExecProcess so the terminal is handed over.
type Editor interface {
	Command(path string) (*exec.Cmd, error)
}
