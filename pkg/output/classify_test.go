package output

import (
	"strings"
	"testing"
)

func TestClassify_SinglePythonFence(t *testing.T) {
	text := "Here is the script:\n```python\nprint('hi')\n```\nDone."
	d := Classify(text)

	if d.Mode != ModeCodeBlocks {
		t.Fatalf("expected ModeCodeBlocks, got %v", d.Mode)
	}
	if len(d.Files) != 1 {
		t.Fatalf("expected exactly 1 file, got %d", len(d.Files))
	}
	if d.Files[0].Name != "output_1.py" {
		t.Errorf("expected output_1.py, got %s", d.Files[0].Name)
	}
	if d.Files[0].Content != "print('hi')" {
		t.Errorf("expected verbatim block content, got %q", d.Files[0].Content)
	}
}

func TestClassify_MultipleFences(t *testing.T) {
	text := "```go\npackage main\n```\nand\n```\nplain\n```"
	d := Classify(text)

	if len(d.Files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(d.Files))
	}
	if d.Files[0].Name != "output_1.go" {
		t.Errorf("expected output_1.go, got %s", d.Files[0].Name)
	}
	if d.Files[1].Name != "output_2.txt" {
		t.Errorf("untagged fence should default to .txt, got %s", d.Files[1].Name)
	}
	if d.Files[1].Content != "plain" {
		t.Errorf("expected 'plain', got %q", d.Files[1].Content)
	}
}

func TestClassify_UnknownLanguageTag(t *testing.T) {
	d := Classify("```brainfuck\n+++\n```")
	if len(d.Files) != 1 || d.Files[0].Name != "output_1.txt" {
		t.Errorf("unknown tag should fall back to .txt, got %+v", d.Files)
	}
}

func TestClassify_JSON(t *testing.T) {
	text := `{"a":1}`
	d := Classify(text)

	if d.Mode != ModeSingleFile {
		t.Fatalf("expected ModeSingleFile, got %v", d.Mode)
	}
	if len(d.Files) != 1 || d.Files[0].Name != "output.json" {
		t.Fatalf("expected output.json, got %+v", d.Files)
	}
	if d.Files[0].Content != text {
		t.Errorf("JSON content must be exact, got %q", d.Files[0].Content)
	}
}

func TestClassify_FenceBeatsJSON(t *testing.T) {
	// Precedence is part of the contract: a fence wins even when the whole
	// response would also parse as something else.
	text := "```json\n{\"a\":1}\n```"
	d := Classify(text)

	if d.Mode != ModeCodeBlocks {
		t.Fatalf("expected fence branch, got %v", d.Mode)
	}
	if d.Files[0].Name != "output_1.json" {
		t.Errorf("expected output_1.json, got %s", d.Files[0].Name)
	}
}

func TestClassify_XMLDeclaration(t *testing.T) {
	d := Classify(`<?xml version="1.0"?><root/>`)
	if d.Mode != ModeSingleFile || d.Files[0].Name != "output.xml" {
		t.Errorf("expected output.xml, got %+v", d)
	}
}

func TestClassify_TagLikePrefix(t *testing.T) {
	d := Classify("<html>\n<body>hello</body>\n</html>")
	if d.Mode != ModeSingleFile || d.Files[0].Name != "output.xml" {
		t.Errorf("expected output.xml for tag-like prefix, got %+v", d)
	}
}

func TestClassify_LongPlainText(t *testing.T) {
	d := Classify(strings.Repeat("a", 6000))
	if d.Mode != ModeSingleFile {
		t.Fatalf("expected ModeSingleFile, got %v", d.Mode)
	}
	if d.Files[0].Name != "output.txt" {
		t.Errorf("expected output.txt, got %s", d.Files[0].Name)
	}
}

func TestClassify_ShortPlainText(t *testing.T) {
	d := Classify(strings.Repeat("a", 100))
	if d.Mode != ModeConsole {
		t.Errorf("expected console mode, got %v", d.Mode)
	}
	if len(d.Files) != 0 {
		t.Errorf("console mode must carry no files, got %d", len(d.Files))
	}
}

func TestClassify_LessThanIsNotXML(t *testing.T) {
	d := Classify("x < y and y < z")
	if d.Mode != ModeConsole {
		t.Errorf("comparison text misclassified as %v", d.Mode)
	}
}
