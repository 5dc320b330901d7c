package media

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrFileNotFound means the prompt file or an attachment path does not
	// exist on disk.
	ErrFileNotFound = errors.New("file not found")

	// ErrUnsupportedFileType means the attachment extension is outside the
	// recognized image/document sets.
	ErrUnsupportedFileType = errors.New("unsupported file type")
)

const maxAttachmentSize = 25 * 1024 * 1024 // base64 adds ~33%, keep well under API limits

// imageExts maps file extensions to MIME types for supported image formats.
var imageExts = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// documentExts maps supported document extensions to MIME types.
var documentExts = map[string]string{
	".pdf":  "application/pdf",
	".csv":  "text/csv",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".xls":  "application/vnd.ms-excel",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".html": "text/html",
	".txt":  "text/plain",
	".md":   "text/markdown",
}

// textualTypes marks document MIME types whose bytes are plain text and can
// be inlined into the prompt instead of shipped as binary payload.
var textualTypes = map[string]bool{
	"text/csv":      true,
	"text/html":     true,
	"text/plain":    true,
	"text/markdown": true,
}

// Classify returns the attachment kind and MIME type for a path, judging by
// extension only. It does not touch the filesystem.
func Classify(path string) (Kind, string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if mimeType, ok := imageExts[ext]; ok {
		return KindImage, mimeType, nil
	}
	if mimeType, ok := documentExts[ext]; ok {
		return KindDocument, mimeType, nil
	}
	return "", "", fmt.Errorf("%w: %s", ErrUnsupportedFileType, path)
}

// ProcessFile reads an attachment from disk and classifies it. Unrecognized
// extensions and missing files are terminal for the whole invocation.
func ProcessFile(path string) (*Attachment, error) {
	kind, mimeType, err := Classify(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrUnsupportedFileType, path)
	}
	if info.Size() > maxAttachmentSize {
		return nil, fmt.Errorf("attachment too large: %s (%.1f MB)", path, float64(info.Size())/(1024*1024))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return &Attachment{
		Path:      path,
		Name:      filepath.Base(path),
		Kind:      kind,
		MediaType: mimeType,
		Data:      data,
	}, nil
}

// ReadPrompt reads the prompt file as UTF-8 text. A missing file maps to
// ErrFileNotFound so the caller can fail before any network call.
func ReadPrompt(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return "", fmt.Errorf("read prompt %s: %w", path, err)
	}
	return string(data), nil
}
