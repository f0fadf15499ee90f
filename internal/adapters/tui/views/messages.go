package views

import "snipkit/internal/domain"

// Messages emitted by the views. The app owns the step sequence and reacts
// to these; views never switch steps themselves.

// CancelMsg aborts the whole flow
type CancelMsg struct{}

// SelectionDoneMsg carries the picked snippet names in registry order
type SelectionDoneMsg struct {
	Names []string
}

// CopyRequestMsg asks for a snippet's content to be put on the clipboard
type CopyRequestMsg struct {
	Name string
}

// CopyDoneMsg reports the outcome of a clipboard copy
type CopyDoneMsg struct {
	Name string
	Err  error
}

// DestinationChosenMsg carries the destination directory
type DestinationChosenMsg struct {
	Dir string
}

// RenamesChosenMsg carries the renames recorded in the rename form
type RenamesChosenMsg struct {
	Renames domain.Renames
}

// OverwriteConfirmedMsg is sent when the user accepts replacing existing files
type OverwriteConfirmedMsg struct{}

// OpenInstalledMsg asks for the first installed file to be opened in the editor
type OpenInstalledMsg struct{}

// QuitMsg is sent when the user dismisses the report
type QuitMsg struct{}
