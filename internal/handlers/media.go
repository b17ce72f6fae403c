package handlers

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// maxUploadSize is the maximum allowed upload (20 MB). Card images are
	// small and recorded clips are short; anything bigger is a mistake.
	maxUploadSize = 20 << 20
)

// allowedMediaTypes defines MIME types accepted for upload: card images
// and recorded audio clips.
var allowedMediaTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
	"audio/mpeg":    true,
	"audio/ogg":     true,
	"audio/wave":    true,
	"audio/webm":    true,
	"video/webm":    true, // MediaRecorder labels audio-only captures video/webm
	"audio/aac":     true,
	"audio/mp4":     true,
}

// MediaUpload handles multipart upload of a card image or audio clip to
// object storage and returns the public URI to store on the card.
func (a *Admin) MediaUpload(w http.ResponseWriter, r *http.Request) {
	if a.storage == nil {
		respondError(w, http.StatusServiceUnavailable, "Object storage is not configured.")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1024)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, http.StatusRequestEntityTooLarge, "File too large. Maximum size is 20 MB.")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "No file provided.")
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		respondError(w, http.StatusRequestEntityTooLarge, "File too large. Maximum size is 20 MB.")
		return
	}

	// Detect content type by sniffing the first 512 bytes.
	sniffBuf := make([]byte, 512)
	n, err := file.Read(sniffBuf)
	if err != nil && err != io.EOF {
		respondError(w, http.StatusInternalServerError, "Failed to read file.")
		return
	}
	contentType := sniffMediaType(sniffBuf[:n], header.Filename)

	if !allowedMediaTypes[contentType] {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("File type %q is not allowed.", contentType))
		return
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to process file.")
		return
	}

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to read file.")
		return
	}

	// Images and clips live under separate prefixes, partitioned by month.
	prefix := "images"
	if strings.HasPrefix(contentType, "audio/") || contentType == "video/webm" {
		prefix = "clips"
	}
	now := time.Now()
	ext := filepath.Ext(header.Filename)
	if ext == "" {
		ext = extensionFromType(contentType)
	}
	key := fmt.Sprintf("%s/%d/%02d/%s%s", prefix, now.Year(), now.Month(), uuid.New().String(), ext)

	if err := a.storage.Upload(r.Context(), key, contentType, bytes.NewReader(fileBytes), int64(len(fileBytes))); err != nil {
		slog.Error("media upload failed", "error", err, "key", key)
		respondError(w, http.StatusInternalServerError, "Failed to upload file.")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"uri":  a.storage.FileURL(key),
		"type": contentType,
		"size": len(fileBytes),
	})
}

// sniffMediaType detects the MIME type from content, with filename-based
// fixes for formats the stdlib sniffer cannot tell apart.
func sniffMediaType(head []byte, filename string) string {
	contentType := http.DetectContentType(head)
	lower := strings.ToLower(filename)

	// SVG sniffs as XML or plain text.
	if strings.HasSuffix(lower, ".svg") &&
		(strings.Contains(contentType, "xml") || strings.Contains(contentType, "text/plain")) {
		return "image/svg+xml"
	}

	// M4A files sniff as video/mp4.
	if strings.HasSuffix(lower, ".m4a") && contentType == "video/mp4" {
		return "audio/mp4"
	}

	return contentType
}

// extensionFromType returns a file extension for known MIME types.
func extensionFromType(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "image/svg+xml":
		return ".svg"
	case "audio/mpeg":
		return ".mp3"
	case "audio/ogg":
		return ".ogg"
	case "audio/wave":
		return ".wav"
	case "audio/webm", "video/webm":
		return ".webm"
	case "audio/aac":
		return ".aac"
	case "audio/mp4":
		return ".m4a"
	default:
		return ""
	}
}
