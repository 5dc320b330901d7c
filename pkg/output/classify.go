package output

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Mode is the output-handling decision for a model response.
type Mode int

const (
	// ModeConsole prints the response and writes nothing.
	ModeConsole Mode = iota
	// ModeCodeBlocks writes one file per fenced code block.
	ModeCodeBlocks
	// ModeSingleFile writes the whole response to one file.
	ModeSingleFile
)

// lengthThreshold is the size above which plain text is saved to a file
// instead of only printed.
const lengthThreshold = 5000

// File is a computed output file name with its content.
type File struct {
	Name    string
	Content string
}

// Decision is the deterministic classification of a response.
type Decision struct {
	Mode  Mode
	Files []File
}

// fenceRe matches a fenced code block: optional language tag, newline, body,
// closing fence. Mirrors the lazy-dot-all extraction of the classification
// contract.
var fenceRe = regexp.MustCompile("(?s)```([A-Za-z0-9+#._-]*)[ \t]*\n(.*?)```")

// langExts maps fence language tags to file extensions. Unknown tags fall
// back to .txt.
var langExts = map[string]string{
	"python":     "py",
	"py":         "py",
	"go":         "go",
	"golang":     "go",
	"javascript": "js",
	"js":         "js",
	"typescript": "ts",
	"ts":         "ts",
	"json":       "json",
	"yaml":       "yaml",
	"yml":        "yaml",
	"toml":       "toml",
	"bash":       "sh",
	"sh":         "sh",
	"shell":      "sh",
	"html":       "html",
	"css":        "css",
	"xml":        "xml",
	"sql":        "sql",
	"rust":       "rs",
	"rs":         "rs",
	"java":       "java",
	"kotlin":     "kt",
	"c":          "c",
	"cpp":        "cpp",
	"ruby":       "rb",
	"rb":         "rb",
	"php":        "php",
	"swift":      "swift",
	"markdown":   "md",
	"md":         "md",
	"csv":        "csv",
}

// Classify derives the output decision from response text. Precedence:
// fenced code blocks, then well-formed JSON, then an XML-looking prefix,
// then the plain-text length threshold, else console. The order is part of
// the contract; a response holding both a fence and JSON always resolves to
// the fence branch.
func Classify(text string) Decision {
	if blocks := extractCodeBlocks(text); len(blocks) > 0 {
		return Decision{Mode: ModeCodeBlocks, Files: blocks}
	}

	trimmed := strings.TrimSpace(text)
	if json.Valid([]byte(trimmed)) && trimmed != "" {
		return Decision{Mode: ModeSingleFile, Files: []File{{Name: "output.json", Content: text}}}
	}
	if looksLikeXML(trimmed) {
		return Decision{Mode: ModeSingleFile, Files: []File{{Name: "output.xml", Content: text}}}
	}
	if utf8.RuneCountInString(text) > lengthThreshold {
		return Decision{Mode: ModeSingleFile, Files: []File{{Name: "output.txt", Content: text}}}
	}

	return Decision{Mode: ModeConsole}
}

func extractCodeBlocks(text string) []File {
	matches := fenceRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	files := make([]File, 0, len(matches))
	for i, m := range matches {
		ext := "txt"
		if e, ok := langExts[strings.ToLower(m[1])]; ok {
			ext = e
		}
		content := strings.TrimSuffix(m[2], "\n")
		files = append(files, File{
			Name:    fmt.Sprintf("output_%d.%s", i+1, ext),
			Content: content,
		})
	}
	return files
}

// looksLikeXML reports whether trimmed text starts with a tag-like token:
// an XML declaration or '<' followed by a letter.
func looksLikeXML(trimmed string) bool {
	if strings.HasPrefix(trimmed, "<?xml") {
		return true
	}
	if len(trimmed) < 2 || trimmed[0] != '<' {
		return false
	}
	r, _ := utf8.DecodeRuneInString(trimmed[1:])
	return unicode.IsLetter(r)
}
