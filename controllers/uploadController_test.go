package controllers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUploadRouter(t *testing.T) (*gin.Engine, string) {
	gin.SetMode(gin.TestMode)
	uploadDir := t.TempDir()
	r := gin.New()
	r.POST("/api/upload", UploadImage(uploadDir))
	return r, uploadDir
}

func multipartBody(t *testing.T, fieldName, fileName string, content []byte) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(fieldName, fileName)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUploadImage_MissingFile(t *testing.T) {
	router, _ := newUploadRouter(t)

	body, contentType := multipartBody(t, "wrong_field", "photo.jpg", []byte("jpeg-bytes"))
	req := httptest.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "image file is required")
}

func TestUploadImage_DisallowedExtension(t *testing.T) {
	router, uploadDir := newUploadRouter(t)

	body, contentType := multipartBody(t, "image", "clip.gif", []byte("gif-bytes"))
	req := httptest.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "only jpg, png and webp images are allowed")

	entries, err := os.ReadDir(uploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUploadImage_TooLarge(t *testing.T) {
	router, uploadDir := newUploadRouter(t)

	oversized := make([]byte, maxUploadBytes+1)
	body, contentType := multipartBody(t, "image", "huge.jpg", oversized)
	req := httptest.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	entries, err := os.ReadDir(uploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUploadImage_Success(t *testing.T) {
	router, uploadDir := newUploadRouter(t)

	body, contentType := multipartBody(t, "image", "pothole.JPG", []byte("jpeg-bytes"))
	req := httptest.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		ImageURL string `json:"imageUrl"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp.ImageURL, "/uploads/"))
	assert.True(t, strings.HasSuffix(resp.ImageURL, ".jpg"))

	// the file lands in the configured directory, not in the default one
	saved := filepath.Join(uploadDir, strings.TrimPrefix(resp.ImageURL, "/uploads/"))
	content, err := os.ReadFile(saved)
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), content)
}
