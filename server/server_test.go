package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/wikijump/config"
	"github.com/lixenwraith/wikijump/content"
	"github.com/lixenwraith/wikijump/document"
	"github.com/lixenwraith/wikijump/layout"
)

type fakeResolver map[string]*document.Document

func (f fakeResolver) Resolve(_ context.Context, id string) (*document.Document, error) {
	switch id {
	case "Broken":
		return nil, fmt.Errorf("fetch %s: %w", id, content.ErrNotFound)
	case "notes.xls":
		return nil, fmt.Errorf("%s: %w", id, content.ErrUnsupported)
	case "Down":
		return nil, fmt.Errorf("fetch %s: status 503", id)
	}
	doc, ok := f[id]
	if !ok {
		return nil, content.ErrNotFound
	}
	return doc, nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	resolver := fakeResolver{
		"T": {
			Title:  "T",
			Blocks: []document.Block{document.Paragraph(document.Text("hello world"))},
		},
		"Links": {
			Title: "Links",
			Blocks: []document.Block{document.Paragraph(
				document.Text("see"), document.Text(" "), document.Link("Ice", "Ice"),
			)},
		},
	}
	engine := layout.NewEngine(layout.DefaultConfig(), layout.MonoMeasurer{})
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.Default().Server
	cfg.MaxUploadBytes = 256
	srv := httptest.NewServer(NewServer(resolver, engine, log, cfg))
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, v any) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}
	if v != nil {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			t.Fatalf("decode: %v", err)
		}
	}
	return resp.StatusCode
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	var body map[string]string
	if code := getJSON(t, srv.URL+"/health", &body); code != http.StatusOK || body["status"] != "ok" {
		t.Errorf("health = %d %v", code, body)
	}
}

func TestLayoutPage(t *testing.T) {
	srv := newTestServer(t)
	var page pageJSON
	if code := getJSON(t, srv.URL+"/api/layout?id=T", &page); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if page.Title != "T" || len(page.Words) != 3 {
		t.Fatalf("page = %+v", page)
	}
	if got := page.Boundaries; len(got) != 2 || got[0] != 0 || got[1] != 3 {
		t.Errorf("boundaries = %v, want [0 3]", got)
	}
	hello := page.Words[1]
	if hello.Text != "hello" || hello.Rect.Left != 0 || hello.Rect.Right != 100 {
		t.Errorf("hello = %+v", hello)
	}
	if page.Words[0].Size != "large" || hello.Size != "small" {
		t.Errorf("sizes = %q %q", page.Words[0].Size, hello.Size)
	}
	if len(page.Lines) == 0 {
		t.Error("title rule missing")
	}
}

func TestLayoutLinks(t *testing.T) {
	srv := newTestServer(t)
	var page pageJSON
	getJSON(t, srv.URL+"/api/layout?id=Links", &page)
	var links []string
	for _, w := range page.Words {
		if w.Link != "" {
			links = append(links, w.Link)
		}
	}
	if len(links) != 1 || links[0] != "Ice" {
		t.Errorf("links = %v", links)
	}
}

func TestLayoutErrors(t *testing.T) {
	srv := newTestServer(t)
	for _, tc := range []struct {
		query string
		want  int
	}{
		{"", http.StatusBadRequest},
		{"?id=Broken", http.StatusNotFound},
		{"?id=notes.xls", http.StatusUnsupportedMediaType},
		{"?id=Down", http.StatusBadGateway},
	} {
		var body map[string]string
		code := getJSON(t, srv.URL+"/api/layout"+tc.query, &body)
		if code != tc.want || body["error"] == "" {
			t.Errorf("%q: status %d body %v, want %d", tc.query, code, body, tc.want)
		}
	}
}

func TestSections(t *testing.T) {
	srv := newTestServer(t)
	var secs sectionsJSON
	if code := getJSON(t, srv.URL+"/api/layout/sections?id=Links", &secs); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if secs.Title != "Links" || len(secs.Sections) != 1 {
		t.Fatalf("sections = %+v", secs)
	}
	sec := secs.Sections[0]
	if sec.Lo != 0 || sec.Hi != secs.Words || sec.Links != 1 {
		t.Errorf("section = %+v", sec)
	}
	if sec.Preview != "Links see Ice" {
		t.Errorf("preview = %q", sec.Preview)
	}
}

func TestLayoutMarkdown(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Post(srv.URL+"/api/layout", "text/markdown",
		strings.NewReader("# Notes\n\nslide on [ice](Ice)\n"))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var page pageJSON
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK || page.Title != "Notes" {
		t.Fatalf("status %d page %+v", resp.StatusCode, page)
	}
	last := page.Words[len(page.Words)-1]
	if last.Text != "ice" || last.Link != "Ice" {
		t.Errorf("last word = %+v", last)
	}
}

func TestLayoutMarkdownTooLarge(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Post(srv.URL+"/api/layout", "text/markdown",
		strings.NewReader(strings.Repeat("word ", 100)))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d", resp.StatusCode)
	}
}

func TestResolverFilesNeedRoot(t *testing.T) {
	if r := NewResolver(content.DefaultConfig()); r.Files != nil {
		t.Errorf("files enabled without a content root: %+v", r.Files)
	}

	base := t.TempDir()
	root := filepath.Join(base, "docs")
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "page.md"), []byte("# Page\n\nopen words\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	secret := filepath.Join(base, "secret.txt")
	if err := os.WriteFile(secret, []byte("hunter2"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := content.DefaultConfig()
	cfg.Root = root
	cfg.WikiBase = "http://127.0.0.1:1"
	cfg.MaxRetries = 0
	engine := layout.NewEngine(layout.DefaultConfig(), layout.MonoMeasurer{})
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(NewServer(NewResolver(cfg), engine, log, config.Default().Server))
	defer srv.Close()

	var page pageJSON
	if code := getJSON(t, srv.URL+"/api/layout?id="+url.QueryEscape("file:page.md"), &page); code != http.StatusOK || page.Title != "Page" {
		t.Errorf("inside root = %d %+v", code, page)
	}
	for _, id := range []string{"file:" + secret, "file:../secret.txt"} {
		var body map[string]string
		code := getJSON(t, srv.URL+"/api/layout?id="+url.QueryEscape(id), &body)
		if code != http.StatusNotFound || strings.Contains(body["error"], "hunter2") {
			t.Errorf("%q: status %d body %v", id, code, body)
		}
	}
}
