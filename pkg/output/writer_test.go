package output

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriter_CreatesDirAndFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	w := NewWriter(dir)

	paths, err := w.Apply(Decision{
		Mode: ModeCodeBlocks,
		Files: []File{
			{Name: "output_1.py", Content: "print('hi')"},
			{Name: "output_2.txt", Content: "plain"},
		},
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("expected 2 written paths, got %d", len(paths))
	}

	got, err := os.ReadFile(filepath.Join(dir, "output_1.py"))
	if err != nil {
		t.Fatalf("reading written file: %v", err)
	}
	if string(got) != "print('hi')" {
		t.Errorf("unexpected file content: %q", got)
	}
}

func TestWriter_OverwritesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "output.json")
	if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	w := NewWriter(dir)
	_, err := w.Apply(Decision{
		Mode:  ModeSingleFile,
		Files: []File{{Name: "output.json", Content: `{"a":1}`}},
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	got, _ := os.ReadFile(path)
	if string(got) != `{"a":1}` {
		t.Errorf("expected overwrite, got %q", got)
	}
}

func TestWriter_ConsoleWritesNothing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "never-created")
	w := NewWriter(dir)

	paths, err := w.Apply(Decision{Mode: ModeConsole})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("console decision wrote %d files", len(paths))
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("console decision must not create the output directory")
	}
}
