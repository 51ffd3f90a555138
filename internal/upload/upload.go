// Package upload converts a local image file into a base64 data URL for
// storage inside an entity field. Files are validated by MIME allow-list
// and size before any content is stored.
package upload

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
)

// MaxSize is the upload cap. The limit text appears verbatim in user
// errors, so keep MaxSizeLabel in sync.
const (
	MaxSize      = 5 << 20
	MaxSizeLabel = "5MB"
)

var allowedTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

// DataURL reads the file at path and returns it as a data URL string.
// The size check runs against file metadata before the content is read;
// the MIME type is sniffed from the content itself, not the extension.
func DataURL(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("upload: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("upload: %s is a directory", path)
	}
	if info.Size() > MaxSize {
		return "", fmt.Errorf("upload: file exceeds the %s limit", MaxSizeLabel)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("upload: %w", err)
	}
	mime := http.DetectContentType(data)
	if _, ok := allowedTypes[mime]; !ok {
		return "", fmt.Errorf("upload: unsupported file type %s (jpeg, png, gif or webp only)", mime)
	}
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data)), nil
}
