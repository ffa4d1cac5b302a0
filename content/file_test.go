package content

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/fumiama/go-docx"

	"github.com/lixenwraith/wikijump/document"
)

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestFileResolverRelinks(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.md"), "# A\n\nGo to [b](sub/b.txt), [web](https://example.org) or [c](c.md#top).\n")

	f := &FileResolver{Root: dir}
	doc, err := f.Resolve(context.Background(), "a.md")
	if err != nil {
		t.Fatal(err)
	}
	if doc.Title != "A" || doc.Source != filepath.Join(dir, "a.md") {
		t.Errorf("title %q source %q", doc.Title, doc.Source)
	}
	want := []string{
		FilePrefix + filepath.Join("sub", "b.txt"),
		"https://example.org",
		FilePrefix + "c.md",
	}
	if got := doc.Links(); !reflect.DeepEqual(got, want) {
		t.Errorf("links = %q, want %q", got, want)
	}
}

func TestFileResolverFollowsRewrittenLink(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.md"), "[next](sub/b.txt)\n")
	writeFile(t, filepath.Join(dir, "sub", "b.txt"), "plain body\n")

	f := &FileResolver{Root: dir}
	a, err := f.Resolve(context.Background(), "a.md")
	if err != nil {
		t.Fatal(err)
	}
	b, err := f.Resolve(context.Background(), a.Links()[0])
	if err != nil {
		t.Fatal(err)
	}
	if b.Title != "b" || b.Blocks[0].Text() != "plain body" {
		t.Errorf("b = %+v", b)
	}
}

func TestFileResolverErrors(t *testing.T) {
	f := &FileResolver{Root: t.TempDir()}
	if _, err := f.Resolve(context.Background(), "missing.md"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing file: %v", err)
	}
	if _, err := f.Resolve(context.Background(), "image.png"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("unsupported ext: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := f.Resolve(ctx, "a.md"); !errors.Is(err, context.Canceled) {
		t.Errorf("canceled: %v", err)
	}
}

func TestFileResolverStaysInRoot(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "root")
	outside := filepath.Join(base, "outside", "secret.txt")
	writeFile(t, filepath.Join(root, "inside.txt"), "public words")
	writeFile(t, filepath.Join(root, "up.md"), "[leak](../outside/secret.txt)\n")
	writeFile(t, outside, "hunter2 password")

	f := &FileResolver{Root: root}
	ctx := context.Background()
	for _, id := range []string{
		FilePrefix + outside,
		outside,
		FilePrefix + filepath.Join("..", "outside", "secret.txt"),
		filepath.Join("..", "outside", "secret.txt"),
		FilePrefix + filepath.Join("sub", "..", "..", "outside", "secret.txt"),
	} {
		doc, err := f.Resolve(ctx, id)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Resolve(%q) = %+v, %v; want ErrNotFound", id, doc, err)
		}
		if f.Exists(id) {
			t.Errorf("Exists(%q) = true", id)
		}
	}

	// relative links out of the root are rewritten but still refused
	up, err := f.Resolve(ctx, "up.md")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Resolve(ctx, up.Links()[0]); !errors.Is(err, ErrOutsideRoot) {
		t.Errorf("escaping link: %v", err)
	}

	// absolute paths below the root are accepted
	doc, err := f.Resolve(ctx, FilePrefix+filepath.Join(root, "inside.txt"))
	if err != nil || doc.Blocks[0].Text() != "public words" {
		t.Errorf("inside = %+v, %v", doc, err)
	}
}

func TestFileResolverRefusesSymlinkEscape(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "root")
	writeFile(t, filepath.Join(base, "secret.txt"), "hunter2")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(filepath.Join(base, "secret.txt"), filepath.Join(root, "link.txt")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	if doc, err := (&FileResolver{Root: root}).Resolve(context.Background(), "link.txt"); err == nil {
		t.Errorf("symlink escape read %+v", doc)
	}
}

func TestQualify(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "notes.md"), "x")
	f := &FileResolver{Root: dir}
	for id, want := range map[string]string{
		"notes.md":              FilePrefix + "notes.md",
		FilePrefix + "notes.md": FilePrefix + "notes.md",
		"missing.md":            "missing.md",
		"Ice":                   "Ice",
	} {
		if got := f.Qualify(id); got != want {
			t.Errorf("Qualify(%q) = %q, want %q", id, got, want)
		}
	}
}

func TestFileResolverDiscover(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.md", "a.txt", "sub/c.html", ".hidden.md", ".git/x.md", "skip.png"} {
		writeFile(t, filepath.Join(dir, name), "x")
	}
	files, err := (&FileResolver{Root: dir}).Discover()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{FilePrefix + "a.txt", FilePrefix + "b.md", FilePrefix + filepath.Join("sub", "c.html")}
	if !reflect.DeepEqual(files, want) {
		t.Errorf("Discover = %q, want %q", files, want)
	}
}

func TestForFile(t *testing.T) {
	for _, name := range []string{"a.txt", "a.MD", "a.markdown", "a.html", "a.htm", "a.pdf", "a.docx"} {
		if _, err := ForFile(name); err != nil {
			t.Errorf("ForFile(%q) = %v", name, err)
		}
	}
	if _, err := ForFile("a.csv"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("csv: %v", err)
	}
}

func TestDOCXParser(t *testing.T) {
	w := docx.New().WithDefaultTheme()
	w.AddParagraph().AddText("plain words")
	w.AddParagraph().AddText("bold words").Bold()
	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}

	doc, err := (&DOCXParser{}).Parse(&buf, "report.docx")
	if err != nil {
		t.Fatal(err)
	}
	if doc.Title != "report" || len(doc.Blocks) != 2 {
		t.Fatalf("doc = %+v", doc)
	}
	if doc.Blocks[0].Text() != "plain words" || doc.Blocks[1].Kind != document.KindParagraph {
		t.Errorf("blocks = %+v", doc.Blocks)
	}
	if !doc.Blocks[1].Runs[0].Style.Bold {
		t.Errorf("bold lost: %+v", doc.Blocks[1].Runs)
	}
}

func TestPDFParserRejectsGarbage(t *testing.T) {
	if _, err := (&PDFParser{}).Parse(bytes.NewReader([]byte("not a pdf")), "x.pdf"); err == nil {
		t.Error("expected error for invalid pdf")
	}
}
