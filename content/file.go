package content

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/lixenwraith/wikijump/diag"
	"github.com/lixenwraith/wikijump/document"
)

// FilePrefix marks identifiers that name local files
const FilePrefix = "file:"

// ErrOutsideRoot rejects identifiers that leave the resolver's Root
var ErrOutsideRoot = fmt.Errorf("%w: outside content root", ErrNotFound)

// FileResolver loads local documents by extension
// Relative links inside a document are rewritten to file identifiers next to it
// With a Root, every identifier is relative to it and reads cannot leave it;
// without one, identifiers are plain paths for a trusted local user
type FileResolver struct {
	Root string
}

// local returns p relative to Root, accepting absolute paths only below it
func (f *FileResolver) local(p string) (string, error) {
	if filepath.IsAbs(p) {
		root, err := filepath.Abs(f.Root)
		if err != nil {
			return "", fmt.Errorf("%w: %s", ErrOutsideRoot, p)
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return "", fmt.Errorf("%w: %s", ErrOutsideRoot, p)
		}
		p = rel
	}
	if !filepath.IsLocal(p) {
		return "", fmt.Errorf("%w: %s", ErrOutsideRoot, p)
	}
	return p, nil
}

// open returns the display path, the link base directory and the open file
// Under a Root the file is opened through os.Root, so symlinks cannot escape either
func (f *FileResolver) open(id string) (string, string, *os.File, error) {
	p := filepath.Clean(filepath.FromSlash(strings.TrimPrefix(id, FilePrefix)))
	if f.Root == "" {
		file, err := os.Open(p)
		return p, filepath.Dir(p), file, err
	}
	rel, err := f.local(p)
	if err != nil {
		return "", "", nil, err
	}
	root, err := os.OpenRoot(f.Root)
	if err != nil {
		return "", "", nil, fmt.Errorf("open root %s: %w", f.Root, err)
	}
	defer root.Close()
	file, err := root.Open(rel)
	return filepath.Join(f.Root, rel), filepath.Dir(rel), file, err
}

func (f *FileResolver) Resolve(ctx context.Context, id string) (*document.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	parser, err := ForFile(strings.TrimPrefix(id, FilePrefix))
	if err != nil {
		return nil, err
	}

	path, dir, file, err := f.open(id)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", id, err)
	}
	data, err := io.ReadAll(file)
	file.Close()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	doc, err := parser.Parse(bytes.NewReader(data), filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	doc.Source = path
	relink(doc, dir)
	return doc, nil
}

// relink rewrites relative links to supported files into file identifiers
func relink(doc *document.Document, dir string) {
	for i := range doc.Blocks {
		runs := doc.Blocks[i].Runs
		for j := range runs {
			if target, ok := localLink(runs[j].Link, dir); ok {
				runs[j].Link = target
			}
		}
	}
}

func localLink(link, dir string) (string, bool) {
	if link == "" || strings.Contains(link, "://") || strings.HasPrefix(link, FilePrefix) ||
		strings.HasPrefix(link, "mailto:") || strings.HasPrefix(link, "/wiki/") {
		return "", false
	}
	p, _, _ := strings.Cut(link, "#")
	if p == "" || !IsSupportedExtension(p) {
		return "", false
	}
	if !filepath.IsAbs(p) {
		p = filepath.Join(dir, filepath.FromSlash(p))
	}
	return FilePrefix + filepath.Clean(p), true
}

// Discover lists supported files under Root as identifiers, skipping hidden files and directories
func (f *FileResolver) Discover() ([]string, error) {
	root := f.Root
	if root == "" {
		root = "."
	}
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if path != root && strings.HasPrefix(name, ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !IsSupportedExtension(name) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, FilePrefix+rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discover %s: %w", root, err)
	}
	slices.Sort(files)
	diag.Logger().Debug("discovered documents", "root", root, "count", len(files))
	return files, nil
}

// Exists reports whether id names a readable supported file
func (f *FileResolver) Exists(id string) bool {
	if !IsSupportedExtension(strings.TrimPrefix(id, FilePrefix)) {
		return false
	}
	_, _, file, err := f.open(id)
	if err != nil {
		return false
	}
	defer file.Close()
	info, err := file.Stat()
	return err == nil && info.Mode().IsRegular()
}

// Qualify prefixes id with FilePrefix when it names an existing local document
func (f *FileResolver) Qualify(id string) string {
	if strings.HasPrefix(id, FilePrefix) || !f.Exists(id) {
		return id
	}
	return FilePrefix + id
}
