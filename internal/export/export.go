// Package export renders one note or the whole collection into a
// downloadable file: plain text, RTF, a minimal OOXML word document, or a
// paginated PDF. Multi-note exports get one section or page per note.
package export

import (
	"fmt"
	"strings"

	"wnotes/internal/notes"
)

// Format selects an output format.
type Format string

const (
	FormatText Format = "txt"
	FormatRTF  Format = "rtf"
	FormatDocx Format = "docx"
	FormatPDF  Format = "pdf"
)

// ErrUnknownFormat wraps an unrecognized format selector.
var ErrUnknownFormat = fmt.Errorf("unknown export format")

// File is a rendered export blob with its download metadata.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// ParseFormat validates a format selector from user input.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatRTF, FormatDocx, FormatPDF:
		return Format(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Export renders the given notes in the given format. A single note is
// named after its title; a multi-note export is named all_notes.
func Export(list []notes.Note, format Format) (File, error) {
	var data []byte
	var contentType string
	var err error

	switch format {
	case FormatText:
		data = renderText(list)
		contentType = "text/plain; charset=utf-8"
	case FormatRTF:
		data = renderRTF(list)
		contentType = "application/rtf"
	case FormatDocx:
		data, err = renderDocx(list)
		contentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case FormatPDF:
		data = renderPDF(list)
		contentType = "application/pdf"
	default:
		return File{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return File{}, err
	}

	name := "all_notes"
	if len(list) == 1 {
		name = list[0].DisplayTitle()
	}
	return File{
		Name:        name + "." + string(format),
		ContentType: contentType,
		Data:        data,
	}, nil
}

// renderText joins notes as title, blank line, body, with a --- rule
// between notes.
func renderText(list []notes.Note) []byte {
	var b strings.Builder
	for i, n := range list {
		if i > 0 {
			b.WriteString("\n---\n\n")
		}
		b.WriteString(n.DisplayTitle())
		b.WriteString("\n\n")
		b.WriteString(n.Content)
		b.WriteString("\n")
	}
	return []byte(b.String())
}

// renderRTF emits a minimal RTF document: a bold title line, a blank line,
// then the body.
func renderRTF(list []notes.Note) []byte {
	var b strings.Builder
	b.WriteString("{\\rtf1\\ansi\n")
	for i, n := range list {
		if i > 0 {
			b.WriteString("\\line ---\\line\\line\n")
		}
		b.WriteString("{\\b ")
		b.WriteString(escapeRTF(n.DisplayTitle()))
		b.WriteString("}\\line\\line\n")
		b.WriteString(escapeRTF(n.Content))
	}
	b.WriteString("\n}")
	return []byte(b.String())
}

// escapeRTF escapes RTF control characters and encodes non-ASCII runes as
// \u escapes.
func escapeRTF(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '\\' || r == '{' || r == '}':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString("\\line\n")
		case r > 127:
			fmt.Fprintf(&b, "\\u%d?", int16(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
