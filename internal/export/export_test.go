package export

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"wnotes/internal/notes"
)

func sampleNotes() []notes.Note {
	return []notes.Note{
		{ID: "1", Title: "Groceries", Content: "Milk, eggs"},
		{ID: "2", Title: "", Content: "untitled body"},
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"txt", "rtf", "docx", "pdf"} {
		if _, err := ParseFormat(s); err != nil {
			t.Errorf("ParseFormat(%q) error = %v", s, err)
		}
	}
	if _, err := ParseFormat("odt"); err == nil {
		t.Error("ParseFormat(odt) expected error")
	}
}

func TestExport_FileNames(t *testing.T) {
	single, err := Export(sampleNotes()[:1], FormatText)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if single.Name != "Groceries.txt" {
		t.Errorf("single name = %q", single.Name)
	}

	bulk, err := Export(sampleNotes(), FormatPDF)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if bulk.Name != "all_notes.pdf" {
		t.Errorf("bulk name = %q", bulk.Name)
	}

	untitled, err := Export(sampleNotes()[1:], FormatRTF)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if untitled.Name != "Untitled.rtf" {
		t.Errorf("untitled name = %q", untitled.Name)
	}
}

func TestExport_Text(t *testing.T) {
	file, err := Export(sampleNotes(), FormatText)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	body := string(file.Data)
	if !strings.Contains(body, "Groceries\n\nMilk, eggs") {
		t.Errorf("missing title/body block:\n%s", body)
	}
	if !strings.Contains(body, "\n---\n") {
		t.Error("missing separator between notes")
	}
	if !strings.Contains(body, "Untitled\n\nuntitled body") {
		t.Error("empty title not rendered as Untitled")
	}
}

func TestExport_RTF(t *testing.T) {
	file, err := Export(sampleNotes()[:1], FormatRTF)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	body := string(file.Data)
	if !strings.HasPrefix(body, `{\rtf1\ansi`) {
		t.Errorf("bad RTF prefix: %q", body[:20])
	}
	if !strings.Contains(body, `{\b Groceries}`) {
		t.Error("title not bold")
	}
	if !strings.HasSuffix(body, "}") {
		t.Error("unbalanced RTF document")
	}

	bulk, err := Export(sampleNotes(), FormatRTF)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if !strings.Contains(string(bulk.Data), `\line ---\line\line`) {
		t.Error("missing separator between notes")
	}
}

func TestEscapeRTF(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`a{b}c\d`, `a\{b\}c\\d`},
		{"line1\nline2", "line1\\line\nline2"},
		{"café", `caf\u233?`},
	}
	for _, tt := range tests {
		if got := escapeRTF(tt.in); got != tt.want {
			t.Errorf("escapeRTF(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExport_DocxIsReadableZip(t *testing.T) {
	file, err := Export(sampleNotes(), FormatDocx)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	if !bytes.HasPrefix(file.Data, []byte("PK")) {
		t.Fatal("docx is not a zip")
	}

	zr, err := zip.NewReader(bytes.NewReader(file.Data), int64(len(file.Data)))
	if err != nil {
		t.Fatalf("zip.NewReader() error = %v", err)
	}

	parts := make(map[string]bool)
	for _, f := range zr.File {
		parts[f.Name] = true
	}
	for _, want := range []string{"[Content_Types].xml", "_rels/.rels", "word/document.xml"} {
		if !parts[want] {
			t.Errorf("missing package part %s", want)
		}
	}

	var doc bytes.Buffer
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open document part: %v", err)
		}
		if _, err := doc.ReadFrom(rc); err != nil {
			t.Fatalf("read document part: %v", err)
		}
		rc.Close()
	}
	content := doc.String()
	if !strings.Contains(content, "Groceries") || !strings.Contains(content, "untitled body") {
		t.Error("document part missing note text")
	}
	if !strings.Contains(content, `<w:br w:type="page"/>`) {
		t.Error("multi-note export missing page break")
	}
}

func TestExport_PDF(t *testing.T) {
	file, err := Export(sampleNotes(), FormatPDF)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	body := string(file.Data)
	if !strings.HasPrefix(body, "%PDF-1.4") {
		t.Errorf("bad PDF header: %q", body[:10])
	}
	if !strings.HasSuffix(strings.TrimSpace(body), "%%EOF") {
		t.Error("missing PDF trailer")
	}
	if !strings.Contains(body, "/Count 2") {
		t.Error("expected one page per note")
	}
	if !strings.Contains(body, "(Groceries) Tj") {
		t.Error("title not drawn")
	}
}

func TestWrapLines(t *testing.T) {
	got := wrapLines("one two three four five", 10)
	want := []string{"one two", "three four", "five"}
	if len(got) != len(want) {
		t.Fatalf("wrapLines() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}

	// Short lines and newlines pass through
	got = wrapLines("a\nb", 10)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("wrapLines() = %v", got)
	}
}

func TestEscapePDF(t *testing.T) {
	if got := escapePDF(`a(b)c\d`); got != `a\(b\)c\\d` {
		t.Errorf("escapePDF() = %q", got)
	}
}
