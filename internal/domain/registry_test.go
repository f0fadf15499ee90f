package domain

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Names(t *testing.T) {
	reg := Registry{
		"tooltip": {},
		"button":  {},
		"Alert":   {},
	}
	assert.Equal(t, []string{"Alert", "button", "tooltip"}, reg.Names())
	assert.Empty(t, Registry{}.Names())
}

func TestRegistry_Lookup(t *testing.T) {
	reg := Registry{"button": {Files: []FileEntry{{Path: "button.tsx"}}}}

	item, err := reg.Lookup("button")
	require.NoError(t, err)
	assert.Len(t, item.Files, 1)

	_, err = reg.Lookup("dialog")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSnippetNotFound))

	var lookupErr *LookupError
	require.True(t, errors.As(err, &lookupErr))
	assert.Equal(t, "dialog", lookupErr.Name)
}

func TestRegistry_FileCount(t *testing.T) {
	reg := Registry{
		"a": {Files: []FileEntry{{Path: "a.go"}}},
		"b": {Files: []FileEntry{{Path: "b.go"}, {Path: "b_test.go"}}},
	}
	assert.Equal(t, 3, reg.FileCount())
}

func TestRenames_For(t *testing.T) {
	var none Renames
	assert.Equal(t, "", none.For("button"))
	assert.Equal(t, "Btn", Renames{"button": "Btn"}.For("button"))
}

func TestInstallResult_Accounting(t *testing.T) {
	res := NewInstallResult("card")
	res.RecordWrite()
	res.RecordSkip("card.css")
	res.RecordWrite()

	assert.Equal(t, 2, res.Written)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, []string{"card.css"}, res.Collisions)

	run := InstallRun{Results: []InstallResult{res, {Written: 1}}}
	written, skipped := run.Totals()
	assert.Equal(t, 3, written)
	assert.Equal(t, 1, skipped)
}

func TestErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
	}{
		{name: "registry missing", err: &RegistryError{Path: "r.json", Err: fs.ErrNotExist}, target: ErrRegistryNotFound},
		{name: "parse", err: &ParseError{Path: "r.json", Err: errors.New("bad")}, target: ErrRegistryParse},
		{name: "lookup", err: &LookupError{Name: "x"}, target: ErrSnippetNotFound},
		{name: "io", err: &IOError{Op: "write", Path: "a", Err: fs.ErrPermission}, target: ErrIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.target)
			assert.NotEmpty(t, tt.err.Error())
		})
	}

	assert.ErrorIs(t, &RegistryError{Err: fs.ErrNotExist}, fs.ErrNotExist)
	assert.ErrorIs(t, &IOError{Err: fs.ErrPermission}, fs.ErrPermission)
	assert.NotErrorIs(t, &LookupError{Name: "x"}, ErrIO)
}
