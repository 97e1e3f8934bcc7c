package services

import (
	"encoding/xml"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ExtractorService converts an uploaded résumé document into plain text.
// Extraction failure is non-fatal: the caller gets empty text and ok=false,
// never an error that crashes the request.
type ExtractorService interface {
	ExtractText(filePath string) (string, bool)
}

type extractorService struct{}

func NewExtractorService() ExtractorService {
	return &extractorService{}
}

// ExtractText dispatches on the file extension. Unsupported extensions and
// unreadable files (corrupt, password-protected) yield empty text.
func (e *extractorService) ExtractText(filePath string) (string, bool) {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".pdf":
		return extractPDFText(filePath)
	case ".docx", ".doc":
		return extractDocxText(filePath)
	default:
		log.Printf("⚠️  Unsupported file format: %s\n", filePath)
		return "", false
	}
}

func extractPDFText(filePath string) (string, bool) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		log.Printf("⚠️  Failed to open PDF %s: %v\n", filePath, err)
		return "", false
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		// Pages without extractable text contribute nothing.
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if text != "" {
			textBuilder.WriteString(text)
			textBuilder.WriteString("\n")
		}
	}

	text := textBuilder.String()
	if strings.TrimSpace(text) == "" {
		log.Printf("⚠️  No text content found in PDF %s\n", filePath)
		return "", false
	}
	return text, true
}

func extractDocxText(filePath string) (string, bool) {
	doc, err := docx.ReadDocxFile(filePath)
	if err != nil {
		log.Printf("⚠️  Failed to parse document %s: %v\n", filePath, err)
		return "", false
	}
	defer doc.Close()

	// GetContent returns the raw word/document.xml markup, not paragraph
	// text. Decode it and keep only the run text, one line per paragraph.
	text, err := docxParagraphText(doc.Editable().GetContent())
	if err != nil {
		log.Printf("⚠️  Failed to decode document XML %s: %v\n", filePath, err)
		return "", false
	}
	if strings.TrimSpace(text) == "" {
		log.Printf("⚠️  No text content found in document %s\n", filePath)
		return "", false
	}
	return text, true
}

// docxParagraphText extracts the visible text from OOXML document markup.
// Text lives in <w:t> runs; <w:tab/> and <w:br/> are whitespace; every
// closed <w:p> paragraph becomes one line.
func docxParagraphText(content string) (string, error) {
	decoder := xml.NewDecoder(strings.NewReader(content))

	var textBuilder strings.Builder
	inText := false

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				textBuilder.WriteString("\t")
			case "br":
				textBuilder.WriteString("\n")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				textBuilder.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				textBuilder.Write(t)
			}
		}
	}

	return textBuilder.String(), nil
}

// CleanText trims blank lines and surrounding whitespace from extracted text.
func CleanText(text string) string {
	text = strings.TrimSpace(text)

	lines := strings.Split(text, "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
