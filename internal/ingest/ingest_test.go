package ingest

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestLoadGlob(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{
		"a.txt":     "First document.\n",
		"b.md":      "# Second\n",
		"c.csv":     "x,y\n",
		"notes.TXT": "Upper case extension.",
	})
	docs, err := Load([]string{filepath.Join(dir, "*")})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("len = %d, want 3 (csv skipped)", len(docs))
	}
	if filepath.Base(docs[0].Path) != "a.txt" || docs[0].Content != "First document.\n" {
		t.Errorf("first = %+v", docs[0])
	}
	if docs[0].ID == "" || len(docs[0].ID) != 16 || docs[0].ID == docs[1].ID {
		t.Errorf("ids = %q, %q", docs[0].ID, docs[1].ID)
	}
}

func TestLoadLiteralPath(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{"[draft].txt": "Bracketed name."})
	docs, err := Load([]string{filepath.Join(dir, "[draft].txt")})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(docs) != 1 || docs[0].Content != "Bracketed name." {
		t.Errorf("docs = %+v", docs)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{"data.csv": "x"})
	if _, err := Load([]string{filepath.Join(dir, "*.csv")}); !errors.Is(err, ErrNoDocuments) {
		t.Errorf("unsupported only: err = %v", err)
	}
	if _, err := Load([]string{filepath.Join(dir, "missing.txt")}); err == nil || errors.Is(err, ErrNoDocuments) {
		t.Errorf("missing file: err = %v", err)
	}
	if _, err := Load(nil); !errors.Is(err, ErrNoDocuments) {
		t.Errorf("no paths: err = %v", err)
	}
}

func TestLoadFileBadPDF(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{"broken.pdf": "not a pdf"})
	if _, err := LoadFile(filepath.Join(dir, "broken.pdf")); err == nil {
		t.Error("expected error for invalid pdf")
	}
}

func TestReadAll(t *testing.T) {
	t.Parallel()

	doc, err := ReadAll(strings.NewReader("from stdin"))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if doc.Path != "-" || doc.Content != "from stdin" {
		t.Errorf("doc = %+v", doc)
	}
}

func TestJoin(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{"1.txt": "  One.\n", "2.txt": "\nTwo.  "})
	docs, err := Load([]string{filepath.Join(dir, "*.txt")})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := Join(docs); got != "One.\n\nTwo." {
		t.Errorf("Join = %q", got)
	}
}

func TestSupported(t *testing.T) {
	t.Parallel()

	for path, want := range map[string]bool{
		"a.txt": true, "b.MD": true, "c.pdf": true, "d.docx": false, "noext": false,
	} {
		if got := Supported(path); got != want {
			t.Errorf("Supported(%q) = %v, want %v", path, got, want)
		}
	}
}
