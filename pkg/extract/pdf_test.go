package extract

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

// buildPDF assembles a minimal uncompressed PDF with one Helvetica text
// line per page. Object offsets are computed while writing so the xref
// table is valid.
func buildPDF(pageTexts ...string) []byte {
	var buf bytes.Buffer
	var offsets []int
	writeObj := func(body string) {
		offsets = append(offsets, buf.Len())
		buf.WriteString(body)
	}

	buf.WriteString("%PDF-1.4\n")

	kids := make([]string, len(pageTexts))
	for i := range pageTexts {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}
	writeObj("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	writeObj(fmt.Sprintf("2 0 obj\n<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n",
		strings.Join(kids, " "), len(pageTexts)))
	writeObj("3 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n")

	for i, text := range pageTexts {
		stream := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
		writeObj(fmt.Sprintf("%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>\nendobj\n",
			4+2*i, 5+2*i))
		writeObj(fmt.Sprintf("%d 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n",
			5+2*i, len(stream), stream))
	}

	xrefPos := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(offsets)+1, xrefPos)
	return buf.Bytes()
}

func TestFromPDF_RoundTrip(t *testing.T) {
	e := New()
	got, err := e.FromPDF(buildPDF("alpha bravo charlie", "delta echo"))
	if err != nil {
		t.Fatalf("FromPDF() error = %v", err)
	}

	if got.WordCount != 5 {
		t.Errorf("word count = %d, want 5 (plaintext %q)", got.WordCount, got.Plaintext)
	}
	for _, word := range []string{"alpha", "bravo", "charlie", "delta", "echo"} {
		if !strings.Contains(got.Plaintext, word) {
			t.Errorf("plaintext %q missing word %q", got.Plaintext, word)
		}
	}
	if strings.Index(got.Plaintext, "charlie") > strings.Index(got.Plaintext, "delta") {
		t.Errorf("plaintext %q has pages out of order", got.Plaintext)
	}
	if strings.Contains(got.Plaintext, "charliedelta") {
		t.Errorf("plaintext %q fused text across the page break", got.Plaintext)
	}
	if !strings.HasPrefix(got.ContentHTML, "<p>") {
		t.Errorf("content HTML = %q, want paragraph-wrapped text", got.ContentHTML)
	}
}
