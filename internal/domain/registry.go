package domain

import "sort"

// FileEntry is one file of a snippet. Path is relative to the snippet root,
// slash-separated, and never starts with a separator.
type FileEntry struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// RegistryItem holds the files of one snippet in build traversal order.
type RegistryItem struct {
	Files []FileEntry `json:"files"`
}

// IsSingleFile reports whether renames apply to this item.
func (it RegistryItem) IsSingleFile() bool {
	return len(it.Files) == 1
}

// OutputPaths returns the destination-relative path of every file, in file
// order. The rename is only honored for single-file items.
func (it RegistryItem) OutputPaths(rename string) []string {
	if !it.IsSingleFile() {
		rename = ""
	}
	out := make([]string, len(it.Files))
	for i, f := range it.Files {
		out[i] = ResolveOutputPath(f.Path, rename)
	}
	return out
}

// Registry maps snippet names to their files.
type Registry map[string]RegistryItem

// Names returns the snippet names sorted lexicographically.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the named item or a *LookupError.
func (r Registry) Lookup(name string) (RegistryItem, error) {
	item, ok := r[name]
	if !ok {
		return RegistryItem{}, &LookupError{Name: name}
	}
	return item, nil
}

// FileCount returns the total number of files across all snippets.
func (r Registry) FileCount() int {
	n := 0
	for _, item := range r {
		n += len(item.Files)
	}
	return n
}

// Renames maps a snippet name to the leaf requested for its single output
// file. A missing key and a blank value both mean no rename.
type Renames map[string]string

// For returns the rename requested for name, or "".
func (r Renames) For(name string) string {
	if r == nil {
		return ""
	}
	return r[name]
}
