// Package document extracts plain text from uploaded resumes. PDF, DOCX and
// plain text files are supported; the format is sniffed from the content and
// the file extension is only used when sniffing is inconclusive.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeText = "text/plain"
)

var ErrUnsupportedType = errors.New("unsupported file type")

var (
	paragraphEnd = regexp.MustCompile(`</w:p>|<w:br/>|<w:tab/>`)
	xmlTag       = regexp.MustCompile(`<[^>]*>`)
)

type Reader struct{}

func NewReader() *Reader {
	return &Reader{}
}

// Detect reports the normalized MIME type of data.
func Detect(fileName string, data []byte) string {
	mtype := mimetype.Detect(data)
	switch {
	case mtype.Is(MimePDF):
		return MimePDF
	case mtype.Is(MimeDOCX):
		return MimeDOCX
	case mtype.Is(MimeText):
		return MimeText
	}

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return MimePDF
	case ".docx":
		return MimeDOCX
	case ".txt":
		return MimeText
	}
	return mtype.String()
}

func (r *Reader) ExtractText(fileName string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}

	switch kind := Detect(fileName, data); kind {
	case MimeText:
		return string(data), nil
	case MimePDF:
		return extractPDFText(data)
	case MimeDOCX:
		return extractDocxText(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, kind)
	}
}

// extractPDFText converts panics raised by the pdf package on malformed
// objects into errors.
func extractPDFText(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("failed to read pdf: %v", r)
		}
	}()

	pdfReader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var textBuilder strings.Builder
	numPages := pdfReader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, pageErr := page.GetPlainText(nil)
		if pageErr != nil {
			continue
		}
		textBuilder.WriteString(pageText)
		textBuilder.WriteString("\n")
	}
	return textBuilder.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	// GetContent returns the raw document.xml body.
	content := paragraphEnd.ReplaceAllString(doc.Editable().GetContent(), "\n")
	return strings.TrimSpace(html.UnescapeString(xmlTag.ReplaceAllString(content, ""))), nil
}
