package services

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("resume", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r := multipart.NewReader(&buf, w.Boundary())
	form, err := r.ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	files := form.File["resume"]
	require.Len(t, files, 1)
	return files[0]
}

func TestStorageSaveFile(t *testing.T) {
	dir := t.TempDir()
	storage := NewStorageService(dir)
	require.NoError(t, storage.EnsureUploadDir())

	t.Run("accepts pdf doc and docx", func(t *testing.T) {
		for _, name := range []string{"cv.pdf", "cv.doc", "cv.docx", "CV.PDF"} {
			filename, filePath, err := storage.SaveFile(multipartHeader(t, name, "content"), "resume")
			require.NoError(t, err, "file %s", name)

			assert.True(t, strings.HasPrefix(filename, "resume_"))
			data, err := os.ReadFile(filePath)
			require.NoError(t, err)
			assert.Equal(t, "content", string(data))
		}
	})

	t.Run("rejects other extensions", func(t *testing.T) {
		for _, name := range []string{"cv.txt", "cv.png", "cv"} {
			_, _, err := storage.SaveFile(multipartHeader(t, name, "content"), "resume")
			assert.Error(t, err, "file %s", name)
		}
	})
}

func TestStorageDeleteFile(t *testing.T) {
	dir := t.TempDir()
	storage := NewStorageService(dir)
	require.NoError(t, storage.EnsureUploadDir())

	filename, filePath, err := storage.SaveFile(multipartHeader(t, "cv.pdf", "content"), "resume")
	require.NoError(t, err)

	require.NoError(t, storage.DeleteFile(filename))
	_, err = os.Stat(filePath)
	assert.True(t, os.IsNotExist(err))

	assert.Error(t, storage.DeleteFile(filename))
}

func TestStorageGetFilePath(t *testing.T) {
	storage := NewStorageService("/tmp/uploads")
	assert.Equal(t, filepath.Join("/tmp/uploads", "x.pdf"), storage.GetFilePath("x.pdf"))
}
