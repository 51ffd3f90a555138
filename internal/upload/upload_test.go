package upload

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// pngHeader is enough of a real PNG for content sniffing to identify it.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 13, 'I', 'H', 'D', 'R'}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestDataURLFromPNG(t *testing.T) {
	path := writeFile(t, "cat.png", pngHeader)
	url, err := DataURL(path)
	if err != nil {
		t.Fatalf("data url: %v", err)
	}
	if !strings.HasPrefix(url, "data:image/png;base64,") {
		t.Fatalf("expected png data url, got %s", url[:min(40, len(url))])
	}
}

func TestOversizedFileRejected(t *testing.T) {
	path := writeFile(t, "big.png", make([]byte, MaxSize+1))
	_, err := DataURL(path)
	if err == nil {
		t.Fatalf("6MB file must be rejected")
	}
	if !strings.Contains(err.Error(), MaxSizeLabel) {
		t.Fatalf("error must name the %s limit, got %v", MaxSizeLabel, err)
	}
}

func TestUnsupportedTypeRejected(t *testing.T) {
	path := writeFile(t, "notes.txt", []byte("just some text, definitely not an image"))
	if _, err := DataURL(path); err == nil {
		t.Fatalf("non-image content must be rejected")
	}
}

func TestMissingFileRejected(t *testing.T) {
	if _, err := DataURL(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Fatalf("missing file must be rejected")
	}
}

func TestDirectoryRejected(t *testing.T) {
	if _, err := DataURL(t.TempDir()); err == nil {
		t.Fatalf("directories must be rejected")
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
