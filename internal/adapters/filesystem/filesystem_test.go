package filesystem

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snipkit/internal/domain"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func TestBuilder_SingleFileSnippet(t *testing.T) {
	src := t.TempDir()
	writeTree(t, src, map[string]string{
		"button/button.tsx": "export default Button",
	})

	reg, err := NewBuilder(4).Scan(context.Background(), src)
	require.NoError(t, err)

	assert.Equal(t, domain.Registry{
		"button": {Files: []domain.FileEntry{{Path: "button.tsx", Content: "export default Button"}}},
	}, reg)
}

func TestBuilder_NestedTreeInTraversalOrder(t *testing.T) {
	src := t.TempDir()
	writeTree(t, src, map[string]string{
		"card/card.tsx":              "card",
		"card/styles/card.css":       ".card{}",
		"card/styles/theme/dark.css": "dark",
		"card/a.md":                  "readme",
		"dialog/dialog.go":           "package dialog",
		"README.md":                  "top-level files are ignored",
	})
	require.NoError(t, os.MkdirAll(filepath.Join(src, "empty"), 0755))

	reg, err := NewBuilder(1).Scan(context.Background(), src)
	require.NoError(t, err)

	assert.Equal(t, []string{"card", "dialog", "empty"}, reg.Names())

	var paths []string
	for _, f := range reg["card"].Files {
		paths = append(paths, f.Path)
	}
	assert.Equal(t, []string{"a.md", "card.tsx", "styles/card.css", "styles/theme/dark.css"}, paths)
	assert.Empty(t, reg["empty"].Files)
	assert.Equal(t, "dark", reg["card"].Files[3].Content)
}

func TestBuilder_ConcurrentReadsKeepOrder(t *testing.T) {
	src := t.TempDir()
	files := map[string]string{}
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"} {
		files["many/"+name+".txt"] = "content " + name
	}
	writeTree(t, src, files)

	reg, err := NewBuilder(8).Scan(context.Background(), src)
	require.NoError(t, err)

	require.Len(t, reg["many"].Files, 10)
	for i, f := range reg["many"].Files {
		name := string(rune('a' + i))
		assert.Equal(t, name+".txt", f.Path)
		assert.Equal(t, "content "+name, f.Content)
	}
}

func TestDecodeText(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{name: "ascii", data: "plain", want: "plain"},
		{name: "valid multibyte", data: "β ✓", want: "β ✓"},
		{name: "invalid bytes", data: "\x89PNG\xff\xfe", want: "\uFFFDPNG\uFFFD\uFFFD"},
		{name: "truncated sequence", data: "a\xe2\x9c", want: "a\uFFFD\uFFFD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeText([]byte(tt.data)))
		})
	}
}

func TestBuilder_UnreadableRoot(t *testing.T) {
	_, err := NewBuilder(1).Scan(context.Background(), filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIO)
}

func TestBuilder_CancelledContext(t *testing.T) {
	src := t.TempDir()
	writeTree(t, src, map[string]string{"x/x.go": "package x"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewBuilder(1).Scan(ctx, src)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuilder_DirectorySymlinkNotFollowed(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	src := t.TempDir()
	writeTree(t, src, map[string]string{
		"loop/file.txt":  "x",
		"shared/util.ts": "util",
	})
	require.NoError(t, os.Symlink(filepath.Join(src, "loop"), filepath.Join(src, "loop", "self")))
	require.NoError(t, os.Symlink(filepath.Join(src, "shared", "util.ts"), filepath.Join(src, "loop", "util.ts")))

	reg, err := NewBuilder(2).Scan(context.Background(), src)
	require.NoError(t, err)

	assert.Equal(t, []domain.FileEntry{
		{Path: "file.txt", Content: "x"},
		{Path: "util.ts", Content: "util"},
	}, reg["loop"].Files)
}

func TestStore_RoundTrip(t *testing.T) {
	src := t.TempDir()
	writeTree(t, src, map[string]string{
		"button/button.tsx":    "export default Button\n",
		"card/card.tsx":        "<Card & \"quotes\">",
		"card/styles/card.css": ".card { color: red; }",
	})
	built, err := NewBuilder(4).Scan(context.Background(), src)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "registry.json")
	store := NewStore()
	require.NoError(t, store.Save(path, built))

	loaded, err := store.Load(path)
	require.NoError(t, err)
	assert.Equal(t, built, loaded)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"button\": {\n    \"files\": [")
	assert.Contains(t, string(data), `<Card & \"quotes\">`)
}

func TestStore_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.json")
	store := NewStore()

	require.NoError(t, store.Save(path, domain.Registry{"old": {}}))
	require.NoError(t, store.Save(path, domain.Registry{"new": {Files: []domain.FileEntry{}}}))

	reg, err := store.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"new"}, reg.Names())
}

func TestStore_LoadErrors(t *testing.T) {
	dir := t.TempDir()
	store := NewStore()

	_, err := store.Load(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, domain.ErrRegistryNotFound)

	tests := map[string]string{
		"truncated": `{"button": {"files": [`,
		"array":     `[1, 2, 3]`,
		"bad files": `{"button": {"files": "nope"}}`,
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".json")
			require.NoError(t, os.WriteFile(path, []byte(content), 0644))

			_, err := store.Load(path)
			assert.ErrorIs(t, err, domain.ErrRegistryParse)

			var parseErr *domain.ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, path, parseErr.Path)
		})
	}
}

func TestStore_LoadToleratesUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.json")
	content := `{"button": {"files": [{"path": "b.tsx", "content": "x"}], "tags": ["ui"]}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	reg, err := NewStore().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "b.tsx", reg["button"].Files[0].Path)
}

func TestStore_LoadNullIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.json")
	require.NoError(t, os.WriteFile(path, []byte("null"), 0644))

	reg, err := NewStore().Load(path)
	require.NoError(t, err)
	assert.NotNil(t, reg)
	assert.Empty(t, reg)
}

func TestDestination_ExistsAndWrite(t *testing.T) {
	root := t.TempDir()
	dest := NewDestination()

	exists, err := dest.Exists(root, "ui/forms/input.ts")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, dest.WriteFile(root, "ui/forms/input.ts", "first"))
	require.NoError(t, dest.WriteFile(root, "/ui/forms/input.ts", "second"))

	exists, err = dest.Exists(root, "ui/forms/input.ts")
	require.NoError(t, err)
	assert.True(t, exists)

	data, err := os.ReadFile(filepath.Join(root, "ui", "forms", "input.ts"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestDestination_RejectsEscapingPaths(t *testing.T) {
	root := t.TempDir()
	dest := NewDestination()

	err := dest.WriteFile(root, "../outside.txt", "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOutsideRoot)
	assert.ErrorIs(t, err, domain.ErrIO)

	_, err = dest.Exists(root, "a/../../outside.txt")
	assert.ErrorIs(t, err, ErrOutsideRoot)
}

func TestSafeJoin(t *testing.T) {
	root := filepath.Join("base", "dir")
	tests := []struct {
		rel     string
		want    string
		wantErr bool
	}{
		{rel: "a.txt", want: filepath.Join(root, "a.txt")},
		{rel: "/a/b.txt", want: filepath.Join(root, "a", "b.txt")},
		{rel: "a/../b.txt", want: filepath.Join(root, "b.txt")},
		{rel: "..", wantErr: true},
		{rel: "../sibling/x", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.rel, func(t *testing.T) {
			got, err := SafeJoin(root, tt.rel)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
