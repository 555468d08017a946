package ingestion

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gen2brain/go-fitz"
)

// ErrEmptyDocument is returned when a document yields no usable text.
var ErrEmptyDocument = fmt.Errorf("document contains no extractable text")

// ReadDocument reads a resume file from disk and extracts cleaned plain text.
func ReadDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read document %s: %w", path, err)
	}
	return ExtractText(filepath.Base(path), data)
}

// ExtractText extracts cleaned plain text from raw document bytes, dispatching
// on the file extension. Unknown formats fall back to UTF-8 decoding with
// invalid bytes dropped.
func ExtractText(filename string, data []byte) (string, error) {
	var text string
	var err error

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		text, err = pdfText(data)
	case ".docx", ".doc":
		text, err = docxText(data)
	default:
		text = plainText(data)
	}
	if err != nil {
		return "", err
	}

	cleaned := CleanText(text)
	if cleaned == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptyDocument, filename)
	}
	return cleaned, nil
}

// pdfText extracts text from a PDF page by page.
func pdfText(data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var sb strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		pageText, err := doc.Text(i)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from page %d: %w", i, err)
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// docxText extracts paragraph text from a DOCX archive. DOCX is a zip
// container; the document body lives in word/document.xml and visible text in
// w:t elements grouped under w:p paragraphs.
func docxText(data []byte) (string, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX archive: %w", err)
	}

	var docXML io.ReadCloser
	for _, file := range reader.File {
		if file.Name == "word/document.xml" {
			docXML, err = file.Open()
			if err != nil {
				return "", fmt.Errorf("failed to open document body: %w", err)
			}
			break
		}
	}
	if docXML == nil {
		return "", fmt.Errorf("DOCX archive has no word/document.xml")
	}
	defer func() { _ = docXML.Close() }()

	decoder := xml.NewDecoder(docXML)
	var sb strings.Builder
	var inText bool
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to parse document body: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}
	return sb.String(), nil
}

// plainText decodes bytes as UTF-8, dropping invalid sequences.
func plainText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	return strings.ToValidUTF8(string(data), "")
}
