package controller

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartUpload(t *testing.T, filename string, size int) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte("a"), size))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadFile_StoresAndReturnsPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("UPLOAD_DIR", dir)

	rec := httptest.NewRecorder()
	UploadFile(rec, multipartUpload(t, "photo.png", 1<<20))

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Regexp(t, regexp.MustCompile(`^/uploads/[^/]+\.png$`), resp["url"])

	stored := filepath.Join(dir, filepath.Base(resp["url"]))
	info, err := os.Stat(stored)
	require.NoError(t, err)
	assert.Equal(t, int64(1<<20), info.Size())
}

func TestUploadFile_RejectsOversizedFile(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())

	rec := httptest.NewRecorder()
	UploadFile(rec, multipartUpload(t, "big.jpg", 6<<20))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadFile_GeneratedNamesAreUnique(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())

	urls := map[string]bool{}
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		UploadFile(rec, multipartUpload(t, "same-name.jpg", 1024))
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, urls[resp["url"]], "duplicate generated name %s", resp["url"])
		urls[resp["url"]] = true
	}
}

func TestUploadFile_MissingFileField(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("other", "value"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	rec := httptest.NewRecorder()
	UploadFile(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCharityInfo_Defaults(t *testing.T) {
	rec := httptest.NewRecorder()
	GetCharityInfo(rec, httptest.NewRequest(http.MethodGet, "/api/v1/charity", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var info CharityInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.NotEmpty(t, info.Bank)
	assert.Contains(t, info.QRUrl, "img.vietqr.io/image/")
	assert.Contains(t, info.QRUrl, info.Bank+"-"+info.Account+"-"+info.Template)
}

func TestGetCharityInfo_EnvOverrides(t *testing.T) {
	t.Setenv("VIETQR_BANK", "970436")
	t.Setenv("VIETQR_ACCOUNT", "12345678")
	t.Setenv("VIETQR_ACCOUNT_NAME", "Cafe Charity Fund")

	rec := httptest.NewRecorder()
	GetCharityInfo(rec, httptest.NewRequest(http.MethodGet, "/api/v1/charity", nil))

	var info CharityInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "970436", info.Bank)
	assert.Equal(t, "12345678", info.Account)
	assert.Contains(t, info.QRUrl, "accountName=Cafe+Charity+Fund")
}
