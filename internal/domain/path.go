package domain

import (
	"path"
	"strings"
)

const separators = `/\`

// ResolveOutputPath computes where a snippet file lands relative to the
// destination root. rel is the file's path inside the snippet; rename is an
// optional new leaf name for the file.
//
// A blank rename, or one equal to the current leaf, returns rel unchanged
// (after stripping leading separators). Otherwise only the final segment of
// rename is used, and it inherits the original extension when it has none.
// The directory part of rel is always preserved.
func ResolveOutputPath(rel, rename string) string {
	rel = strings.TrimLeft(rel, separators)
	dir := path.Dir(rel)
	base := path.Base(rel)

	rename = strings.TrimSpace(rename)
	if rename == "" || rename == base {
		return rel
	}

	leaf := sanitizeLeaf(rename)
	if leaf == "" || leaf == base {
		return rel
	}
	if Ext(leaf) == "" {
		leaf += Ext(base)
	}

	if dir == "." {
		return leaf
	}
	return dir + "/" + leaf
}

// sanitizeLeaf reduces a user-supplied name to its last non-empty path
// segment so a rename can never move a file into another directory.
func sanitizeLeaf(name string) string {
	name = strings.TrimLeft(name, separators)
	segments := strings.FieldsFunc(name, func(r rune) bool {
		return strings.ContainsRune(separators, r)
	})
	if len(segments) == 0 {
		return ""
	}
	return strings.TrimSpace(segments[len(segments)-1])
}

// Ext returns the extension of a leaf name, including the dot. A leading dot
// alone does not start an extension, so ".env" has none while "app.env" has
// ".env".
func Ext(leaf string) string {
	trimmed := strings.TrimLeft(leaf, ".")
	if trimmed == "" {
		return ""
	}
	offset := len(leaf) - len(trimmed)
	if i := strings.LastIndexByte(trimmed, '.'); i >= 0 {
		return leaf[offset+i:]
	}
	return ""
}
