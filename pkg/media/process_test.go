package media

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestClassify_SupportedImages(t *testing.T) {
	cases := map[string]string{
		"photo.png":  "image/png",
		"photo.jpg":  "image/jpeg",
		"photo.JPEG": "image/jpeg",
		"anim.gif":   "image/gif",
		"pic.webp":   "image/webp",
	}
	for path, wantMIME := range cases {
		kind, mime, err := Classify(path)
		if err != nil {
			t.Errorf("Classify(%q): unexpected error: %v", path, err)
			continue
		}
		if kind != KindImage {
			t.Errorf("Classify(%q): expected image kind, got %s", path, kind)
		}
		if mime != wantMIME {
			t.Errorf("Classify(%q): expected MIME %s, got %s", path, wantMIME, mime)
		}
	}
}

func TestClassify_SupportedDocuments(t *testing.T) {
	for _, path := range []string{
		"a.pdf", "a.csv", "a.doc", "a.docx", "a.xls", "a.xlsx", "a.html", "a.txt", "a.md",
	} {
		kind, mime, err := Classify(path)
		if err != nil {
			t.Errorf("Classify(%q): unexpected error: %v", path, err)
			continue
		}
		if kind != KindDocument {
			t.Errorf("Classify(%q): expected document kind, got %s", path, kind)
		}
		if mime == "" {
			t.Errorf("Classify(%q): empty MIME type", path)
		}
	}
}

func TestClassify_Unsupported(t *testing.T) {
	for _, path := range []string{"a.exe", "a.zip", "a.mp4", "noext", "a.go"} {
		_, _, err := Classify(path)
		if !errors.Is(err, ErrUnsupportedFileType) {
			t.Errorf("Classify(%q): expected ErrUnsupportedFileType, got %v", path, err)
		}
	}
}

func TestProcessFile_ReadsImageBytes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dot.png")
	payload := []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a}
	if err := os.WriteFile(path, payload, 0644); err != nil {
		t.Fatal(err)
	}

	att, err := ProcessFile(path)
	if err != nil {
		t.Fatalf("ProcessFile: %v", err)
	}
	if att.Kind != KindImage {
		t.Errorf("expected image kind, got %s", att.Kind)
	}
	if att.MediaType != "image/png" {
		t.Errorf("expected image/png, got %s", att.MediaType)
	}
	if string(att.Data) != string(payload) {
		t.Error("attachment bytes do not match file content")
	}
	if att.Base64() == "" {
		t.Error("expected non-empty base64 encoding")
	}
	if att.Name != "dot.png" {
		t.Errorf("expected Name dot.png, got %s", att.Name)
	}
}

func TestProcessFile_Missing(t *testing.T) {
	_, err := ProcessFile(filepath.Join(t.TempDir(), "missing.png"))
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("expected ErrFileNotFound, got %v", err)
	}
}

func TestProcessFile_TextualDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.md")
	if err := os.WriteFile(path, []byte("# hello"), 0644); err != nil {
		t.Fatal(err)
	}

	att, err := ProcessFile(path)
	if err != nil {
		t.Fatalf("ProcessFile: %v", err)
	}
	if att.Kind != KindDocument {
		t.Errorf("expected document kind, got %s", att.Kind)
	}
	if !att.Textual() {
		t.Error("expected markdown attachment to be textual")
	}
}

func TestProcessFile_PDFNotTextual(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4"), 0644); err != nil {
		t.Fatal(err)
	}

	att, err := ProcessFile(path)
	if err != nil {
		t.Fatalf("ProcessFile: %v", err)
	}
	if att.Textual() {
		t.Error("PDF must not be treated as inline text")
	}
}

func TestReadPrompt_Missing(t *testing.T) {
	_, err := ReadPrompt(filepath.Join(t.TempDir(), "prompt.txt"))
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("expected ErrFileNotFound, got %v", err)
	}
}

func TestReadPrompt_Reads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prompt.txt")
	if err := os.WriteFile(path, []byte("describe the image"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := ReadPrompt(path)
	if err != nil {
		t.Fatalf("ReadPrompt: %v", err)
	}
	if got != "describe the image" {
		t.Errorf("unexpected prompt content: %q", got)
	}
}
