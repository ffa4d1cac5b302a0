package content

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/wikijump/document"
)

type stubResolver struct {
	ids []string
}

func (s *stubResolver) Resolve(_ context.Context, id string) (*document.Document, error) {
	s.ids = append(s.ids, id)
	return &document.Document{Title: "wiki:" + id}, nil
}

func TestRouterDispatch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "local.txt"), "hello")
	wiki := &stubResolver{}
	r := &Router{Files: &FileResolver{Root: dir}, Wiki: wiki}
	ctx := context.Background()

	for _, id := range []string{"local.txt", FilePrefix + "local.txt", FilePrefix + filepath.Join(dir, "local.txt")} {
		doc, err := r.Resolve(ctx, id)
		if err != nil || doc.Title != "local" {
			t.Errorf("Resolve(%q) = %+v, %v", id, doc, err)
		}
	}

	doc, err := r.Resolve(ctx, "Ice")
	if err != nil || doc.Title != "wiki:Ice" || len(wiki.ids) != 1 {
		t.Errorf("wiki dispatch = %+v, %v (%v)", doc, err, wiki.ids)
	}

	if _, err := r.Resolve(ctx, FilePrefix+"nope.md"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing file prefix: %v", err)
	}
}

func TestRouterBareNamesNeedRoot(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "local.txt"), "hello")
	t.Chdir(dir)

	wiki := &stubResolver{}
	r := &Router{Files: &FileResolver{}, Wiki: wiki}
	doc, err := r.Resolve(context.Background(), "local.txt")
	if err != nil || doc.Title != "wiki:local.txt" {
		t.Errorf("bare name without root = %+v, %v", doc, err)
	}
	doc, err = r.Resolve(context.Background(), FilePrefix+"local.txt")
	if err != nil || doc.Title != "local" {
		t.Errorf("prefixed name = %+v, %v", doc, err)
	}
}

func TestRouterWithoutFiles(t *testing.T) {
	wiki := &stubResolver{}
	r := &Router{Wiki: wiki}
	if _, err := r.Resolve(context.Background(), FilePrefix+"/etc/hosts.txt"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("err = %v", err)
	}
	if len(wiki.ids) != 0 {
		t.Errorf("file identifier reached the wiki: %v", wiki.ids)
	}
}

func TestRouterWithoutWiki(t *testing.T) {
	r := &Router{Files: &FileResolver{}}
	if _, err := r.Resolve(context.Background(), "Ice"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("err = %v", err)
	}
}
