package document

import (
	"archive/zip"
	"bytes"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makePDF(t *testing.T, lines ...string) []byte {
	t.Helper()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 11)
	for _, line := range lines {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
	var buf bytes.Buffer
	require.NoError(t, pdf.Output(&buf))
	return buf.Bytes()
}

func makeDocx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()
	var body strings.Builder
	for _, p := range paragraphs {
		body.WriteString(`<w:p><w:r><w:t>` + p + `</w:t></w:r></w:p>`)
	}

	files := []struct{ name, content string }{
		{"[Content_Types].xml", `<?xml version="1.0" encoding="UTF-8"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/></Types>`},
		{"word/document.xml", `<?xml version="1.0" encoding="UTF-8"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` + body.String() + `</w:body></w:document>`},
		{"word/_rels/document.xml.rels", `<?xml version="1.0" encoding="UTF-8"?><Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`},
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range files {
		w, err := zw.Create(f.name)
		require.NoError(t, err)
		_, err = w.Write([]byte(f.content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// breakObjects renames every object header so the xref offsets still line up
// but no longer point at an object definition.
func breakObjects(data []byte) []byte {
	return bytes.ReplaceAll(data, []byte(" 0 obj"), []byte(" 0 xbj"))
}

func squash(s string) string {
	return strings.Join(strings.Fields(s), "")
}

func TestExtractTextPlain(t *testing.T) {
	text, err := NewReader().ExtractText("resume.txt", []byte("Python, SQL and Docker"))
	require.NoError(t, err)
	assert.Equal(t, "Python, SQL and Docker", text)
}

func TestExtractTextEmpty(t *testing.T) {
	text, err := NewReader().ExtractText("resume.pdf", nil)
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestExtractTextPDF(t *testing.T) {
	data := makePDF(t, "Jane Doe", "Skills: Python Kubernetes")
	assert.Equal(t, MimePDF, Detect("upload.bin", data))

	text, err := NewReader().ExtractText("resume.pdf", data)
	require.NoError(t, err)
	assert.Contains(t, squash(text), "Python")
	assert.Contains(t, squash(text), "Kubernetes")
}

func TestExtractTextDocx(t *testing.T) {
	data := makeDocx(t, "Senior engineer", "React &amp; Node.js")

	text, err := NewReader().ExtractText("resume.docx", data)
	require.NoError(t, err)
	assert.Contains(t, text, "Senior engineer")
	assert.Contains(t, text, "React & Node.js")
	assert.NotContains(t, text, "<w:t>")
}

func TestExtractTextUnsupported(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	_, err := NewReader().ExtractText("photo.png", png)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestExtractTextMalformedPDF(t *testing.T) {
	data := breakObjects(makePDF(t, "Skills: Go"))
	require.Equal(t, MimePDF, Detect("resume.pdf", data))

	var (
		text string
		err  error
	)
	require.NotPanics(t, func() {
		text, err = NewReader().ExtractText("resume.pdf", data)
	})
	assert.Error(t, err)
	assert.Empty(t, text)
}

func TestExtractTextTruncatedPDF(t *testing.T) {
	data := makePDF(t, "Skills: Go")

	_, err := NewReader().ExtractText("resume.pdf", data[:len(data)/2])
	assert.Error(t, err)
}

func TestExtractTextMutatedPDFNeverPanics(t *testing.T) {
	valid := makePDF(t, "Jane Doe", "Skills: Python Kubernetes")
	rnd := rand.New(rand.NewPCG(7, 7))
	reader := NewReader()

	for i := 0; i < 500; i++ {
		data := bytes.Clone(valid)
		for n := 1 + rnd.IntN(4); n > 0; n-- {
			data[rnd.IntN(len(data))] = byte(rnd.IntN(256))
		}
		assert.NotPanics(t, func() {
			_, _ = reader.ExtractText("resume.pdf", data)
		}, "mutation %d", i)
	}
}
