package export

import (
	"bytes"
	"fmt"
	"strings"

	"wnotes/internal/notes"
)

// A hand-rolled PDF writer: catalog, page tree, two standard fonts, and one
// page per note with a bold title and wrapped body text. Coordinates are in
// points on A4 media.

const (
	pdfPageWidth  = 595
	pdfPageHeight = 842
	pdfMargin     = 57
	pdfTitleSize  = 24
	pdfBodySize   = 12
	pdfLeading    = 16
	// Wrap width for 12pt Helvetica inside the margins, in characters.
	pdfWrapColumns = 80
)

// renderPDF emits the document with one page per note.
func renderPDF(list []notes.Note) []byte {
	var body bytes.Buffer
	offsets := []int{0} // object byte offsets, 1-based

	write := func(format string, args ...any) {
		fmt.Fprintf(&body, format, args...)
	}
	beginObj := func(num int) {
		offsets = append(offsets, body.Len())
		write("%d 0 obj\n", num)
	}

	pageCount := len(list)
	if pageCount == 0 {
		pageCount = 1
	}

	// Object layout: 1 catalog, 2 pages, 3 bold font, 4 body font, then a
	// page and content stream pair per note.
	body.WriteString("%PDF-1.4\n")

	beginObj(1)
	write("<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")

	kids := make([]string, 0, pageCount)
	for i := 0; i < pageCount; i++ {
		kids = append(kids, fmt.Sprintf("%d 0 R", 5+i*2))
	}
	beginObj(2)
	write("<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n",
		strings.Join(kids, " "), pageCount)

	beginObj(3)
	write("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica-Bold >>\nendobj\n")
	beginObj(4)
	write("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n")

	pages := list
	if len(pages) == 0 {
		pages = []notes.Note{{}}
	}
	for i, n := range pages {
		pageNum := 5 + i*2
		beginObj(pageNum)
		write("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %d %d] "+
			"/Resources << /Font << /F1 3 0 R /F2 4 0 R >> >> /Contents %d 0 R >>\nendobj\n",
			pdfPageWidth, pdfPageHeight, pageNum+1)

		stream := noteContentStream(n)
		beginObj(pageNum + 1)
		write("<< /Length %d >>\nstream\n%sendstream\nendobj\n", len(stream), stream)
	}

	xrefStart := body.Len()
	objCount := len(offsets)
	write("xref\n0 %d\n0000000000 65535 f \n", objCount)
	for _, off := range offsets[1:] {
		write("%010d 00000 n \n", off)
	}
	write("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		objCount, xrefStart)

	return body.Bytes()
}

// noteContentStream draws one note: title at the top, body below in wrapped
// lines.
func noteContentStream(n notes.Note) string {
	var b strings.Builder
	titleY := pdfPageHeight - pdfMargin
	fmt.Fprintf(&b, "BT /F1 %d Tf %d %d Td (%s) Tj ET\n",
		pdfTitleSize, pdfMargin, titleY, escapePDF(n.DisplayTitle()))

	fmt.Fprintf(&b, "BT /F2 %d Tf %d %d Td %d TL\n",
		pdfBodySize, pdfMargin, titleY-2*pdfLeading-pdfTitleSize, pdfLeading)
	for _, line := range wrapLines(n.Content, pdfWrapColumns) {
		fmt.Fprintf(&b, "(%s) Tj T*\n", escapePDF(line))
	}
	b.WriteString("ET\n")
	return b.String()
}

// wrapLines splits text on newlines and wraps each line at word boundaries
// to the given column count.
func wrapLines(text string, columns int) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if len(line) <= columns {
			out = append(out, line)
			continue
		}
		var cur string
		for _, word := range strings.Fields(line) {
			switch {
			case cur == "":
				cur = word
			case len(cur)+1+len(word) <= columns:
				cur += " " + word
			default:
				out = append(out, cur)
				cur = word
			}
		}
		if cur != "" {
			out = append(out, cur)
		}
	}
	return out
}

// escapePDF escapes the string-literal delimiters of a PDF text string.
func escapePDF(s string) string {
	r := strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)", "\r", " ")
	return r.Replace(s)
}
