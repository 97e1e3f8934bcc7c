package services

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeDocxFixture builds a minimal valid .docx archive with one <w:p>
// paragraph per input string and returns its path.
func writeDocxFixture(t *testing.T, paragraphs []string) string {
	t.Helper()

	var body strings.Builder
	for _, p := range paragraphs {
		body.WriteString(fmt.Sprintf("<w:p><w:r><w:t>%s</w:t></w:r></w:p>", p))
	}
	document := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>` + body.String() + `</w:body></w:document>`
	rels := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`

	path := filepath.Join(t.TempDir(), "fixture.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	archive := zip.NewWriter(f)
	for name, content := range map[string]string{
		"word/document.xml":            document,
		"word/_rels/document.xml.rels": rels,
	} {
		w, err := archive.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, archive.Close())

	return path
}

func TestExtractTextUnsupportedFormat(t *testing.T) {
	extractor := NewExtractorService()

	for _, path := range []string{"resume.txt", "resume.png", "resume"} {
		text, ok := extractor.ExtractText(path)
		assert.False(t, ok, "path %s", path)
		assert.Empty(t, text)
	}
}

func TestExtractTextMissingFile(t *testing.T) {
	extractor := NewExtractorService()

	for _, path := range []string{"nope.pdf", "nope.docx", "nope.doc"} {
		text, ok := extractor.ExtractText(path)
		assert.False(t, ok, "path %s", path)
		assert.Empty(t, text)
	}
}

func TestExtractTextDocxReturnsParagraphText(t *testing.T) {
	extractor := NewExtractorService()

	paragraphs := []string{
		"Jane Doe",
		"jane@x.com",
		"Experience Education Skills",
		"Built dashboards with python and sql",
	}
	path := writeDocxFixture(t, paragraphs)

	text, ok := extractor.ExtractText(path)
	require.True(t, ok)

	assert.NotContains(t, text, "<")
	assert.NotContains(t, text, "xml")
	assert.NotContains(t, text, "w:document")
	assert.Equal(t, strings.Join(paragraphs, "\n")+"\n", text)
}

func TestExtractTextDocxEmptyDocument(t *testing.T) {
	extractor := NewExtractorService()
	path := writeDocxFixture(t, nil)

	text, ok := extractor.ExtractText(path)
	assert.False(t, ok)
	assert.Empty(t, text)
}

func TestDocxParagraphText(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			"two paragraphs",
			"<w:document><w:body><w:p><w:r><w:t>alpha</w:t></w:r></w:p><w:p><w:r><w:t>beta</w:t></w:r></w:p></w:body></w:document>",
			"alpha\nbeta\n",
		},
		{
			"runs concatenate within a paragraph",
			"<w:document><w:body><w:p><w:r><w:t>al</w:t></w:r><w:r><w:t>pha</w:t></w:r></w:p></w:body></w:document>",
			"alpha\n",
		},
		{
			"tab and break become whitespace",
			"<w:document><w:body><w:p><w:r><w:t>a</w:t><w:tab/><w:t>b</w:t><w:br/><w:t>c</w:t></w:r></w:p></w:body></w:document>",
			"a\tb\nc\n",
		},
		{
			"text outside runs is ignored",
			"<w:document>stray<w:body><w:p><w:pPr>props</w:pPr><w:r><w:t>kept</w:t></w:r></w:p></w:body></w:document>",
			"kept\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := docxParagraphText(tt.content)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDocxParagraphTextMalformedXML(t *testing.T) {
	_, err := docxParagraphText("<w:document><w:body><w:p>")
	assert.Error(t, err)
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"whitespace only", "  \n\t\n  ", ""},
		{"trims lines", "  hello  \n\n  world  \n", "hello\nworld"},
		{"preserves single line", "hello", "hello"},
		{"drops blank interior lines", "a\n\n\n\nb", "a\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.input))
		})
	}
}
