package commands

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snipkit/internal/adapters/filesystem"
	"snipkit/internal/application"
	"snipkit/internal/domain"
)

// fixture is a built registry plus an empty destination tree
type fixture struct {
	registryPath string
	destRoot     string
	store        *filesystem.Store
	dest         *filesystem.Destination
}

func newFixture(t *testing.T, sources map[string]string) *fixture {
	t.Helper()

	src := t.TempDir()
	for rel, content := range sources {
		path := filepath.Join(src, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	f := &fixture{
		registryPath: filepath.Join(t.TempDir(), "registry.json"),
		destRoot:     t.TempDir(),
		store:        filesystem.NewStore(),
		dest:         filesystem.NewDestination(),
	}

	_, err := NewBuildCommand(filesystem.NewBuilder(4), f.store, src, f.registryPath).Execute(context.Background())
	require.NoError(t, err)
	return f
}

func (f *fixture) put(t *testing.T, rel, content string) {
	t.Helper()
	require.NoError(t, f.dest.WriteFile(f.destRoot, rel, content))
}

func (f *fixture) read(t *testing.T, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(f.destRoot, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}

func (f *fixture) plan(t *testing.T, names []string, renames domain.Renames) int {
	t.Helper()
	plan, err := NewPlanCommand(f.store, f.dest, f.registryPath, names, f.destRoot, renames).Execute(context.Background())
	require.NoError(t, err)
	return plan.Collisions
}

func (f *fixture) install(names []string, overwrite bool, renames domain.Renames) ([]domain.InstallResult, error) {
	return NewInstallCommand(f.store, f.dest, f.registryPath, names, f.destRoot, overwrite, renames).Execute(context.Background())
}

var buttonSource = map[string]string{"button/button.tsx": "export default Button"}

func TestPlan_CountsRenamedCollision(t *testing.T) {
	f := newFixture(t, buttonSource)
	f.put(t, "Btn.tsx", "mine")

	assert.Equal(t, 1, f.plan(t, []string{"button"}, domain.Renames{"button": "Btn"}))
	assert.Equal(t, 0, f.plan(t, []string{"button"}, nil))
}

func TestPlan_IgnoresUnknownNames(t *testing.T) {
	f := newFixture(t, buttonSource)
	f.put(t, "button.tsx", "mine")

	assert.Equal(t, 1, f.plan(t, []string{"ghost", "button", "other"}, nil))
	assert.Equal(t, 0, f.plan(t, nil, nil))
}

func TestPlan_HasNoSideEffects(t *testing.T) {
	f := newFixture(t, map[string]string{"card/ui/card.tsx": "card"})

	assert.Equal(t, 0, f.plan(t, []string{"card"}, nil))
	_, err := os.Stat(filepath.Join(f.destRoot, "ui"))
	assert.True(t, os.IsNotExist(err))
}

func TestPlan_ReloadsRegistryEveryCall(t *testing.T) {
	f := newFixture(t, buttonSource)
	f.put(t, "later.tsx", "x")

	assert.Equal(t, 0, f.plan(t, []string{"later"}, nil))

	require.NoError(t, f.store.Save(f.registryPath, domain.Registry{
		"later": {Files: []domain.FileEntry{{Path: "later.tsx", Content: "y"}}},
	}))
	assert.Equal(t, 1, f.plan(t, []string{"later"}, nil))
}

func TestPlan_MissingRegistry(t *testing.T) {
	cmd := NewPlanCommand(filesystem.NewStore(), filesystem.NewDestination(), filepath.Join(t.TempDir(), "nope.json"), []string{"x"}, t.TempDir(), nil)
	_, err := cmd.Execute(context.Background())
	assert.ErrorIs(t, err, application.ErrRegistryNotFound)
}

func TestInstall_SkipsCollisionWithoutOverwrite(t *testing.T) {
	f := newFixture(t, buttonSource)
	f.put(t, "Btn.tsx", "mine")

	results, err := f.install([]string{"button"}, false, domain.Renames{"button": "Btn"})
	require.NoError(t, err)

	assert.Equal(t, []domain.InstallResult{
		{Name: "button", Written: 0, Skipped: 1, Collisions: []string{"Btn.tsx"}},
	}, results)
	assert.Equal(t, "mine", f.read(t, "Btn.tsx"))
}

func TestInstall_OverwritesCollision(t *testing.T) {
	f := newFixture(t, buttonSource)
	f.put(t, "Btn.tsx", "mine")

	results, err := f.install([]string{"button"}, true, domain.Renames{"button": "Btn"})
	require.NoError(t, err)

	assert.Equal(t, []domain.InstallResult{
		{Name: "button", Written: 1, Skipped: 0, Collisions: []string{}},
	}, results)
	assert.Equal(t, "export default Button", f.read(t, "Btn.tsx"))
}

func TestInstall_MultiFileIgnoresRename(t *testing.T) {
	f := newFixture(t, map[string]string{
		"card/card.tsx":        "card",
		"card/styles/card.css": "css",
	})

	results, err := f.install([]string{"card"}, false, domain.Renames{"card": "Tile"})
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, 2, results[0].Written)
	assert.Equal(t, "card", f.read(t, "card.tsx"))
	assert.Equal(t, "css", f.read(t, "styles/card.css"))
	_, err = os.Stat(filepath.Join(f.destRoot, "Tile.tsx"))
	assert.True(t, os.IsNotExist(err))
}

func TestInstall_SecondRunIsIdempotent(t *testing.T) {
	f := newFixture(t, map[string]string{
		"card/card.tsx":        "card",
		"card/styles/card.css": "css",
		"button/button.tsx":    "button",
	})
	names := []string{"card", "button"}

	first, err := f.install(names, false, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, first[0].Written)
	assert.Equal(t, 1, first[1].Written)

	second, err := f.install(names, false, nil)
	require.NoError(t, err)
	assert.Equal(t, []domain.InstallResult{
		{Name: "card", Written: 0, Skipped: 2, Collisions: []string{"card.tsx", "styles/card.css"}},
		{Name: "button", Written: 0, Skipped: 1, Collisions: []string{"button.tsx"}},
	}, second)
}

func TestInstall_ResultsFollowRequestOrder(t *testing.T) {
	f := newFixture(t, map[string]string{
		"a/a.go": "a",
		"b/b.go": "b",
		"c/c.go": "c",
	})

	results, err := f.install([]string{"c", "a", "b"}, false, nil)
	require.NoError(t, err)

	var order []string
	for _, r := range results {
		order = append(order, r.Name)
	}
	assert.Equal(t, []string{"c", "a", "b"}, order)
}

func TestInstall_UnknownNameStopsRun(t *testing.T) {
	f := newFixture(t, map[string]string{
		"a/a.go": "a",
		"b/b.go": "b",
	})

	results, err := f.install([]string{"a", "ghost", "b"}, false, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, application.ErrSnippetNotFound)

	var lookupErr *domain.LookupError
	require.True(t, errors.As(err, &lookupErr))
	assert.Equal(t, "ghost", lookupErr.Name)

	require.Len(t, results, 1)
	assert.Equal(t, "a", results[0].Name)
	assert.Equal(t, "a", f.read(t, "a.go"))
	_, statErr := os.Stat(filepath.Join(f.destRoot, "b.go"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestInstall_EmptyRequest(t *testing.T) {
	f := newFixture(t, buttonSource)

	results, err := f.install([]string{}, false, nil)
	require.NoError(t, err)
	assert.Empty(t, results)

	entries, err := os.ReadDir(f.destRoot)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestInstall_BlankNameIsUnknown(t *testing.T) {
	f := newFixture(t, buttonSource)

	results, err := f.install([]string{"button", ""}, false, nil)

	var lookupErr *domain.LookupError
	require.True(t, errors.As(err, &lookupErr))
	assert.Equal(t, "", lookupErr.Name)
	require.Len(t, results, 1)
	assert.Equal(t, "export default Button", f.read(t, "button.tsx"))
}

func TestInstall_Validate(t *testing.T) {
	tests := []struct {
		name   string
		cmd    *InstallCommand
		errMsg string
	}{
		{name: "missing registry", cmd: &InstallCommand{DestRoot: ".", Names: []string{"a"}}, errMsg: "registry path is required"},
		{name: "missing destination", cmd: &InstallCommand{RegistryPath: "r.json", Names: []string{"a"}}, errMsg: "destination directory is required"},
		{name: "no names", cmd: &InstallCommand{RegistryPath: "r.json", DestRoot: "."}},
		{name: "valid", cmd: &InstallCommand{RegistryPath: "r.json", DestRoot: ".", Names: []string{"a"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}

// failingDestination fails the write with the given index (zero based)
type failingDestination struct {
	*filesystem.Destination
	failAt int
	writes int
}

var errDiskFull = errors.New("disk full")

func (d *failingDestination) WriteFile(root, rel, content string) error {
	defer func() { d.writes++ }()
	if d.writes == d.failAt {
		return &domain.IOError{Op: "write", Path: rel, Err: errDiskFull}
	}
	return d.Destination.WriteFile(root, rel, content)
}

func TestInstall_WriteFailureKeepsPartialResults(t *testing.T) {
	f := newFixture(t, map[string]string{
		"a/a.go":  "a",
		"b/b1.go": "b1",
		"b/b2.go": "b2",
		"c/c.go":  "c",
	})
	dest := &failingDestination{Destination: f.dest, failAt: 2}

	results, err := NewInstallCommand(f.store, dest, f.registryPath, []string{"a", "b", "c"}, f.destRoot, false, nil).
		Execute(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, application.ErrIO)
	assert.ErrorIs(t, err, errDiskFull)

	assert.Equal(t, []domain.InstallResult{
		{Name: "a", Written: 1, Skipped: 0, Collisions: []string{}},
		{Name: "b", Written: 1, Skipped: 0, Collisions: []string{}},
	}, results)
	assert.Equal(t, "a", f.read(t, "a.go"))
	assert.Equal(t, "b1", f.read(t, "b1.go"))
}

func TestInstall_CancelledContext(t *testing.T) {
	f := newFixture(t, buttonSource)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := NewInstallCommand(f.store, f.dest, f.registryPath, []string{"button"}, f.destRoot, false, nil).Execute(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, results, 1)
	assert.Zero(t, results[0].Written)
}

// memoryJournal keeps runs in memory
type memoryJournal struct {
	runs      []domain.InstallRun
	recordErr error
}

func (j *memoryJournal) Open(string) error { return nil }
func (j *memoryJournal) Close() error      { return nil }

func (j *memoryJournal) Record(_ context.Context, run domain.InstallRun) error {
	if j.recordErr != nil {
		return j.recordErr
	}
	j.runs = append(j.runs, run)
	return nil
}

func (j *memoryJournal) Recent(_ context.Context, limit int) ([]domain.InstallRun, error) {
	var out []domain.InstallRun
	for i := len(j.runs) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, j.runs[i])
	}
	return out, nil
}

func TestInstall_RecordsRunsInJournal(t *testing.T) {
	f := newFixture(t, buttonSource)
	journal := &memoryJournal{}

	_, err := NewInstallCommand(f.store, f.dest, f.registryPath, []string{"button"}, f.destRoot, false, nil).
		WithJournal(journal).
		Execute(context.Background())
	require.NoError(t, err)

	_, err = NewInstallCommand(f.store, f.dest, f.registryPath, []string{"ghost"}, f.destRoot, true, nil).
		WithJournal(journal).
		Execute(context.Background())
	require.Error(t, err)

	require.Len(t, journal.runs, 2)
	assert.Equal(t, f.destRoot, journal.runs[0].DestRoot)
	assert.Empty(t, journal.runs[0].Error)
	assert.Equal(t, 1, journal.runs[0].Results[0].Written)
	assert.True(t, journal.runs[1].Overwrite)
	assert.Contains(t, journal.runs[1].Error, "ghost")

	runs, err := NewHistoryCommand(journal, 0).Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.True(t, runs[0].Overwrite)
}

func TestInstall_JournalFailureDoesNotFailInstall(t *testing.T) {
	f := newFixture(t, buttonSource)
	journal := &memoryJournal{recordErr: errors.New("db locked")}

	results, err := NewInstallCommand(f.store, f.dest, f.registryPath, []string{"button"}, f.destRoot, false, nil).
		WithJournal(journal).
		Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, results[0].Written)
}
