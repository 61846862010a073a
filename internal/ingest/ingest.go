// Package ingest loads input documents from files for the CLI.
package ingest

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"writeassist/internal/domain"
)

// ErrNoDocuments is returned when no path matched a supported file.
var ErrNoDocuments = errors.New("no .txt, .md or .pdf documents found")

// Supported reports whether path has an extension Load can read.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md", ".pdf":
		return true
	}
	return false
}

// Load expands globs in paths and reads every supported file. A pattern with no
// matches is tried as a literal path. Unsupported extensions are skipped.
func Load(paths []string) ([]domain.Document, error) {
	var documents []domain.Document
	for _, p := range paths {
		matches, err := filepath.Glob(p)
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", p, err)
		}
		if matches == nil {
			matches = []string{p}
		}
		for _, m := range matches {
			if !Supported(m) {
				continue
			}
			doc, err := LoadFile(m)
			if err != nil {
				return nil, err
			}
			documents = append(documents, doc)
		}
	}
	if len(documents) == 0 {
		return nil, ErrNoDocuments
	}
	return documents, nil
}

// LoadFile reads one file, extracting text from PDFs.
func LoadFile(path string) (domain.Document, error) {
	var text string
	var err error
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		text, err = parsePDF(path)
	} else {
		var raw []byte
		raw, err = os.ReadFile(path)
		text = string(raw)
	}
	if err != nil {
		return domain.Document{}, fmt.Errorf("read %s: %w", path, err)
	}
	return domain.Document{ID: hashString(path), Path: path, Content: text}, nil
}

// ReadAll reads a document from r, for stdin input.
func ReadAll(r io.Reader) (domain.Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return domain.Document{}, fmt.Errorf("read input: %w", err)
	}
	return domain.Document{ID: hashString("-"), Path: "-", Content: string(raw)}, nil
}

// Join concatenates document contents separated by blank lines.
func Join(docs []domain.Document) string {
	parts := make([]string, 0, len(docs))
	for _, d := range docs {
		parts = append(parts, strings.TrimSpace(d.Content))
	}
	return strings.Join(parts, "\n\n")
}

func parsePDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	total := r.NumPage()
	for i := 1; i <= total; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		content, pageErr := p.GetPlainText(nil)
		if pageErr != nil {
			continue
		}
		b.WriteString(content)
		b.WriteString("\n\n")
	}
	if b.Len() == 0 {
		return "", errors.New("no extractable text found in pdf")
	}
	return b.String(), nil
}

func hashString(s string) string {
	h := sha1.Sum([]byte(s))
	return hex.EncodeToString(h[:8])
}
