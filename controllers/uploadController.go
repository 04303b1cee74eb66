package controller

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// MaxUploadSize caps uploaded files at 5 MiB.
const MaxUploadSize = 5 << 20

// UploadDir is where uploaded files land; overridable for deployments that
// mount a volume elsewhere.
func UploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "./uploads"
}

// UploadFile stores one multipart image under a generated name preserving the
// original extension and returns its relative access path. Callers are
// responsible for absolutizing the path against the server base URL.
func UploadFile(w http.ResponseWriter, r *http.Request) {
	// Allow some slack for the multipart framing around the capped file.
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize+512*1024)

	if err := r.ParseMultipartForm(MaxUploadSize); err != nil {
		http.Error(w, `{"success": false, "message": "File exceeds the 5 MiB limit"}`, http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, `{"success": false, "message": "Multipart field 'file' is required"}`, http.StatusBadRequest)
		return
	}
	defer file.Close()

	if header.Size > MaxUploadSize {
		http.Error(w, `{"success": false, "message": "File exceeds the 5 MiB limit"}`, http.StatusBadRequest)
		return
	}

	name := uuid.New().String() + filepath.Ext(header.Filename)

	dir := UploadDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		http.Error(w, `{"success": false, "message": "Error preparing upload directory"}`, http.StatusInternalServerError)
		return
	}

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error storing file"}`, http.StatusInternalServerError)
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		http.Error(w, `{"success": false, "message": "Error storing file"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"url": "/uploads/" + name,
	})
}
