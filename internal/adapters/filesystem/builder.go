package filesystem

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"snipkit/internal/domain"
	"snipkit/internal/logging"
	"snipkit/internal/ports"
)

// Builder implements ports.SourceScanner over a directory tree. Every
// immediate subdirectory of the source root is one snippet.
type Builder struct {
	concurrency int
	logger      zerolog.Logger
}

// Ensure Builder implements SourceScanner
var _ ports.SourceScanner = (*Builder)(nil)

// NewBuilder creates a builder reading at most concurrency files at once
// per snippet
func NewBuilder(concurrency int) *Builder {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Builder{
		concurrency: concurrency,
		logger:      logging.GetLogger("builder"),
	}
}

// Scan builds a registry from sourceRoot
func (b *Builder) Scan(ctx context.Context, sourceRoot string) (domain.Registry, error) {
	entries, err := os.ReadDir(sourceRoot)
	if err != nil {
		return nil, &domain.IOError{Op: "read source", Path: sourceRoot, Err: err}
	}

	reg := domain.Registry{}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		base := filepath.Join(sourceRoot, entry.Name())
		rels, err := b.walk(base)
		if err != nil {
			return nil, err
		}

		files, err := b.readAll(ctx, base, rels)
		if err != nil {
			return nil, err
		}

		b.logger.Debug().
			Str("snippet", entry.Name()).
			Int("files", len(files)).
			Msg("Scanned snippet")
		reg[entry.Name()] = domain.RegistryItem{Files: files}
	}

	return reg, nil
}

// walk returns the slash-separated paths of every regular file under base,
// in lexical traversal order. Directory symlinks are not followed.
func (b *Builder) walk(base string) ([]string, error) {
	var rels []string

	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return &domain.IOError{Op: "walk", Path: path, Err: err}
		}
		if d.IsDir() {
			return nil
		}

		mode := d.Type()
		if mode&fs.ModeSymlink != 0 {
			info, err := os.Stat(path)
			if err != nil {
				return &domain.IOError{Op: "stat", Path: path, Err: err}
			}
			if info.IsDir() {
				b.logger.Warn().Str("path", path).Msg("Skipping directory symlink")
				return nil
			}
			mode = info.Mode()
		}
		if !mode.IsRegular() {
			b.logger.Debug().Str("path", path).Msg("Skipping non-regular file")
			return nil
		}

		rel, err := filepath.Rel(base, path)
		if err != nil {
			return &domain.IOError{Op: "relativize", Path: path, Err: err}
		}
		rels = append(rels, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return rels, nil
}

// readAll reads files concurrently and keeps them in rels order
func (b *Builder) readAll(ctx context.Context, base string, rels []string) ([]domain.FileEntry, error) {
	files := make([]domain.FileEntry, len(rels))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	for i, rel := range rels {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(base, filepath.FromSlash(rel))
			data, err := os.ReadFile(path)
			if err != nil {
				return &domain.IOError{Op: "read", Path: path, Err: err}
			}
			files[i] = domain.FileEntry{Path: rel, Content: decodeText(data)}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return files, nil
}

// decodeText reads data as UTF-8 text. Each byte that is not part of a valid
// sequence becomes U+FFFD, the same substitution the registry encoder makes,
// so a saved registry loads back with identical content.
func decodeText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}

	var b strings.Builder
	b.Grow(len(data) + 8)
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		b.WriteRune(r)
		data = data[size:]
	}
	return b.String()
}
